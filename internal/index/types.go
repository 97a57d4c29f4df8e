// Package index owns the three persisted maps (lexicon, inverted
// index, metadata) and the per-document raw file store that together
// make up a built retrieval index, plus the builder and loader that
// produce and reconstruct them. All retrieval and evaluation
// components treat a loaded Index as immutable.
package index

// Posting is one (internal document id, term frequency) pair. A
// PostingsList is a strictly ascending-by-DocID sequence of these.
type Posting struct {
	DocID uint32
	Count uint32
}

// PostingsList is an ordered, append-only sequence of Postings for one
// term. Documents are processed in ascending internal id order during
// indexing, so appending preserves the ascending invariant without
// ever needing a sort.
type PostingsList []Posting

// DocIDs returns just the ascending document ids, discarding counts --
// the shape the Boolean-AND engine intersects over.
func (p PostingsList) DocIDs() []uint32 {
	ids := make([]uint32, len(p))
	for i, e := range p {
		ids[i] = e.DocID
	}
	return ids
}

// Metadata is the per-document record kept alongside the inverted
// index: everything needed to render a result line or a SERP entry
// without re-reading the raw document.
type Metadata struct {
	DocNo    string
	Headline string
	Date     string
	Length   uint32
}

// MetadataMap maps internal_id -> Metadata. Keys coincide with
// 0..num_docs-1.
type MetadataMap map[uint32]Metadata

// InvertedIndex maps token_id -> PostingsList. Keys coincide exactly
// with the range of values of the Lexicon.
type InvertedIndex map[uint32]PostingsList

// Index is the fully loaded (or fully built) retrieval index: the
// three persisted maps plus the derived aggregates every engine needs.
type Index struct {
	Lexicon  *Lexicon
	Inverted InvertedIndex
	Meta     MetadataMap

	NumDocs       int
	AverageDocLen float64

	// DocNoToID is derived on load; it is not persisted.
	DocNoToID map[string]uint32

	Dir string
}

func (ix *Index) deriveAggregates() {
	ix.NumDocs = len(ix.Meta)

	var total uint64
	ix.DocNoToID = make(map[string]uint32, len(ix.Meta))
	for id, m := range ix.Meta {
		total += uint64(m.Length)
		ix.DocNoToID[m.DocNo] = id
	}

	if ix.NumDocs > 0 {
		ix.AverageDocLen = float64(total) / float64(ix.NumDocs)
	}
}
