package index

import (
	radix "github.com/cwacek/radix-go"
)

// Lexicon assigns dense token ids in first-seen order, backed by a
// radix trie for the term string -> id lookup -- the same structural
// choice the teacher's TrieLexicon makes (indexer/lexicon.go), though
// here the trie holds only an id, not a posting list: postings live
// in the separate InvertedIndex keyed by token_id (see SPEC_FULL.md's
// data model, which splits Lexicon and InvertedIndex into two maps
// rather than the teacher's single term-owns-its-postings structure).
type Lexicon struct {
	radix.Trie
	next uint32
}

// entry implements radix.RadixTreeEntry, matching the teacher's Term
// type (which implements the same interface by exposing its text as
// the radix key).
type entry struct {
	key []byte
	id  uint32
}

func (e *entry) RadixKey() []byte { return e.key }

// NewLexicon returns an empty Lexicon ready for insertion.
func NewLexicon() *Lexicon {
	lex := new(Lexicon)
	lex.Init()
	return lex
}

// Find returns the token id for term if it has been inserted.
func (l *Lexicon) Find(term string) (uint32, bool) {
	if v, ok := l.Trie.Find([]byte(term)); ok && v != nil {
		return v.(*entry).id, true
	}
	return 0, false
}

// InsertOrGet returns term's existing id, or assigns and returns the
// next dense id if term has not been seen before.
func (l *Lexicon) InsertOrGet(term string) uint32 {
	if id, ok := l.Find(term); ok {
		return id
	}

	id := l.next
	l.next++
	l.Trie.Insert(&entry{key: []byte(term), id: id})
	return id
}

// Size is the number of distinct terms in the lexicon -- the range of
// token ids is 0..Size()-1.
func (l *Lexicon) Size() int {
	return int(l.next)
}

// Terms returns every (term, id) pair in the lexicon, in no
// particular order; used only for serialization.
func (l *Lexicon) Terms() map[string]uint32 {
	out := make(map[string]uint32, l.next)
	for _, v := range l.Trie.Walk() {
		e := v.(*entry)
		out[string(e.key)] = e.id
	}
	return out
}

// LoadLexicon reconstructs a Lexicon from a persisted term -> id map,
// restoring the dense-id counter from the maximum id present.
func LoadLexicon(terms map[string]uint32) *Lexicon {
	lex := NewLexicon()
	var max uint32
	for term, id := range terms {
		lex.Trie.Insert(&entry{key: []byte(term), id: id})
		if id+1 > max {
			max = id + 1
		}
	}
	lex.next = max
	return lex
}
