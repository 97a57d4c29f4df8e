// Package snippet generates query-biased snippets from a document's
// raw text, grounded on
// original_source/Engine/SearchEngine.java's getQueryBiasedSnippet,
// QuerySnippetSentence, and AccumulatorEntry (the negated-compareTo
// descending-sort idiom, here expressed as sort.SliceStable).
package snippet

import (
	"sort"
	"strings"

	"github.com/ryanhow10/SearchEngine/internal/stem"
	"github.com/ryanhow10/SearchEngine/internal/tokenize"
)

// MinWords is the minimum whitespace-split word count a sentence must
// have to be considered for scoring; shorter sentences are discarded.
const MinWords = 5

type scoredSentence struct {
	original string
	tokens   []string
	score    int
}

// For produces a snippet of up to two sentences from text, biased
// toward sentences containing the given stemmed query terms.
func For(text string, queryTerms []string) string {
	querySet := make(map[string]bool, len(queryTerms))
	for _, t := range queryTerms {
		querySet[t] = true
	}

	sentences := segment(text)

	var kept []scoredSentence
	for _, s := range sentences {
		if len(strings.Fields(s)) < MinWords {
			continue
		}
		kept = append(kept, scoredSentence{
			original: s,
			tokens:   stem.StemAll(tokenize.Tokenize(s)),
		})
	}

	for i := range kept {
		kept[i].score = scoreSentence(i, kept[i].tokens, querySet)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})

	n := len(kept)
	if n > 2 {
		n = 2
	}

	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, strings.TrimSpace(kept[i].original))
	}

	return strings.Join(parts, " ")
}

// scoreSentence computes l + c + d + k for the sentence at kept-index
// i (positional bonus is over the filtered, kept-sentence list, not
// the raw sentence index, per the source).
func scoreSentence(i int, tokens []string, querySet map[string]bool) int {
	l := 0
	switch i {
	case 0:
		l = 2
	case 1:
		l = 1
	}

	c := 0
	distinct := make(map[string]bool)
	for _, t := range tokens {
		if querySet[t] {
			c++
			distinct[t] = true
		}
	}
	d := len(distinct)

	k := 0
	run := 0
	for _, t := range tokens {
		if querySet[t] {
			if run <= 0 {
				run = 1
			} else {
				run++
			}
		} else {
			run = 0
		}
		if run > k {
			k = run
		}
	}

	return l + c + d + k
}

// segment splits text into sentences on '.', '!', or '?', each
// sentence keeping the content up to and not including the boundary
// character.
func segment(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '.', '!', '?':
			sentences = append(sentences, text[start:i])
			start = i + 1
		}
	}
	if start < len(text) {
		if rest := strings.TrimSpace(text[start:]); rest != "" {
			sentences = append(sentences, text[start:])
		}
	}
	return sentences
}
