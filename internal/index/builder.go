package index

import (
	log "github.com/cihub/seelog"

	"github.com/ryanhow10/SearchEngine/internal/corpus"
	"github.com/ryanhow10/SearchEngine/internal/docstore"
	"github.com/ryanhow10/SearchEngine/internal/stem"
	"github.com/ryanhow10/SearchEngine/internal/tokenize"
)

// Builder owns all indexing-phase state -- the lexicon, the growing
// inverted index, and the metadata map -- as a single value created at
// phase start and consumed at phase end, rather than as package-level
// mutable state. This replaces the source's global mutable maps, per
// SPEC_FULL.md §9's design note, and mirrors the teacher's own
// per-instance SingleTermIndex (indexer/single_term.go).
type Builder struct {
	dir string

	lexicon  *Lexicon
	inverted InvertedIndex
	meta     MetadataMap

	nextID uint32
}

// NewBuilder starts a fresh indexing pass that will write per-document
// raw files and the three persisted maps under dir.
func NewBuilder(dir string) *Builder {
	return &Builder{
		dir:      dir,
		lexicon:  NewLexicon(),
		inverted: make(InvertedIndex),
		meta:     make(MetadataMap),
	}
}

// Insert assigns rec the next dense internal id, tokenizes and stems
// its raw text, updates the lexicon and postings, and writes its raw
// bytes to the doc store.
func (b *Builder) Insert(rec *corpus.Record) error {
	id := b.nextID
	b.nextID++

	tokens := stem.StemAll(tokenize.Tokenize(rec.RawText()))

	counts := make(map[uint32]uint32)
	for _, tok := range tokens {
		tid := b.lexicon.InsertOrGet(tok)
		counts[tid]++
	}

	for tid, count := range counts {
		b.inverted[tid] = append(b.inverted[tid], Posting{DocID: id, Count: count})
	}

	date := rec.DocNo[2:8]
	b.meta[id] = Metadata{
		DocNo:    rec.DocNo,
		Headline: rec.Headline,
		Date:     date,
		Length:   uint32(len(tokens)),
	}

	if err := docstore.Store(b.dir, date, rec.DocNo, rec.Raw); err != nil {
		return err
	}

	log.Debugf("indexed %s as internal id %d (%d tokens)", rec.DocNo, id, len(tokens))
	return nil
}

// NumDocs is the count of documents inserted so far.
func (b *Builder) NumDocs() int {
	return len(b.meta)
}

// Save serializes the three maps to dir. It must be called exactly
// once, after all documents have been inserted.
func (b *Builder) Save() error {
	return Save(b.dir, b.lexicon, b.inverted, b.meta)
}
