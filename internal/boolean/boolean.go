// Package boolean implements unranked Boolean-AND retrieval: a
// sort-merge intersection over ascending-docid postings lists,
// grounded on original_source/Engine/BooleanAND.java's intersect()
// and getInternalIds().
package boolean

import (
	"github.com/ryanhow10/SearchEngine/internal/index"
	"github.com/ryanhow10/SearchEngine/internal/stem"
	"github.com/ryanhow10/SearchEngine/internal/tokenize"
)

// RunTag is the fixed literal attached to every Boolean-AND result
// line, carried verbatim from the source implementation's evaluation
// harness.
const RunTag = "rykhowteAND"

// Result is one matching document, carrying a descending integer
// pseudo-score derived purely from its rank.
type Result struct {
	DocNo string
	Score int
}

// Query returns, for the given free-text query, the docnos whose
// document contains every stemmed query term known to the lexicon.
// Query terms absent from the lexicon are silently dropped; they do
// not force an empty result.
func Query(ix *index.Index, text string) []Result {
	tokenIDs := queryTermIDs(ix, text)

	var docIDs []uint32
	switch len(tokenIDs) {
	case 0:
		docIDs = nil
	case 1:
		docIDs = ix.Inverted[tokenIDs[0]].DocIDs()
	default:
		docIDs = ix.Inverted[tokenIDs[0]].DocIDs()
		for _, tid := range tokenIDs[1:] {
			docIDs = intersect(docIDs, ix.Inverted[tid].DocIDs())
		}
	}

	results := make([]Result, len(docIDs))
	total := len(docIDs)
	for i, d := range docIDs {
		results[i] = Result{
			DocNo: ix.Meta[d].DocNo,
			Score: total - i,
		}
	}
	return results
}

// queryTermIDs tokenizes and stems text, maps each token to its
// lexicon id (dropping out-of-vocabulary terms), and de-duplicates.
func queryTermIDs(ix *index.Index, text string) []uint32 {
	seen := make(map[uint32]bool)
	var ids []uint32

	for _, tok := range stem.StemAll(tokenize.Tokenize(text)) {
		id, ok := ix.Lexicon.Find(tok)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	return ids
}

// intersect merges two ascending id sequences via a two-pointer march,
// advancing whichever side is smaller.
func intersect(a, b []uint32) []uint32 {
	out := make([]uint32, 0)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}
