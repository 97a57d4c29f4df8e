// Package bm25 implements term-at-a-time BM25 scoring over a loaded
// index, grounded on query_engine/bm25.go's accumulator structure and
// original_source/Engine/BM25.java's exact constants and float-valued
// length normalization.
package bm25

import (
	"math"
	"sort"

	"github.com/ryanhow10/SearchEngine/internal/index"
	"github.com/ryanhow10/SearchEngine/internal/stem"
	"github.com/ryanhow10/SearchEngine/internal/tokenize"
)

const (
	k1 = 1.2
	b  = 0.75
	k2 = 7.0

	// RunTag is the fixed literal attached to every BM25 result line.
	RunTag = "BM25"

	// MaxResults is the top-N truncation applied to every topic's
	// ranked list.
	MaxResults = 1000
)

// Result is one scored document.
type Result struct {
	DocID uint32
	DocNo string
	Score float64
}

// Query scores every document against text using term-at-a-time BM25
// and returns the top MaxResults documents in descending score order,
// ties broken by ascending internal id for a deterministic output.
func Query(ix *index.Index, text string) []Result {
	queryTerms := stem.StemAll(tokenize.Tokenize(text))

	qf := make(map[uint32]int)
	for _, tok := range queryTerms {
		id, ok := ix.Lexicon.Find(tok)
		if !ok {
			continue
		}
		qf[id]++
	}

	n := float64(ix.NumDocs)
	avgdl := ix.AverageDocLen

	accumulator := make(map[uint32]float64)

	for tid, freq := range qf {
		postings := ix.Inverted[tid]
		nt := float64(len(postings))
		idf := math.Log((n - nt + 0.5) / (nt + 0.5))

		for _, p := range postings {
			fd := float64(p.Count)
			dl := float64(ix.Meta[p.DocID].Length)

			k := k1 * ((1 - b) + b*(dl/avgdl))

			score := ((k1 + 1) * fd) / (k + fd)
			score *= ((k2 + 1) * float64(freq)) / (k2 + float64(freq))
			score *= idf

			accumulator[p.DocID] += score
		}
	}

	results := make([]Result, 0, len(accumulator))
	for docID, score := range accumulator {
		results = append(results, Result{
			DocID: docID,
			DocNo: ix.Meta[docID].DocNo,
			Score: score,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].DocID < results[j].DocID
	})

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}
