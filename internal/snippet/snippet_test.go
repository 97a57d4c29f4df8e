package snippet

import (
	"strings"
	"testing"

	"github.com/ryanhow10/SearchEngine/internal/stem"
	"github.com/ryanhow10/SearchEngine/internal/tokenize"
)

func queryTerms(s string) []string {
	return stem.StemAll(tokenize.Tokenize(s))
}

func TestForSingleSentence(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog."
	got := For(text, queryTerms("quick fox"))
	if !strings.Contains(got, "quick brown fox") {
		t.Fatalf("snippet %q missing expected sentence", got)
	}
}

func TestForDiscardsShortSentences(t *testing.T) {
	text := "Too short. This sentence has more than five words and mentions fox fox fox."
	got := For(text, queryTerms("fox"))
	if strings.Contains(got, "Too short") {
		t.Fatalf("short sentence should have been discarded: %q", got)
	}
	if !strings.Contains(got, "mentions fox") {
		t.Fatalf("expected the longer sentence to win: %q", got)
	}
}

func TestForPrefersEarlierSentenceOnTie(t *testing.T) {
	text := "First sentence with the fox word right here. Second sentence with the fox word right there."
	got := For(text, queryTerms("fox"))
	first := strings.Index(got, "First")
	second := strings.Index(got, "Second")
	if first == -1 || second == -1 || first > second {
		t.Fatalf("expected first sentence to precede second: %q", got)
	}
}
