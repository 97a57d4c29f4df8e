package tokenize

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ryanhow10/SearchEngine/internal/logging"
)

func TestMain(m *testing.M) {
	logging.SetupTestLogging()
	m.Run()
}

func TestTokenizeBasic(t *testing.T) {
	got := Tokenize("The Quick, Brown-Fox jumps!")
	want := []string{"the", "quick", "brown", "fox", "jumps"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenizeEmptyAndAllSeparators(t *testing.T) {
	for _, in := range []string{"", "   ", "...---,,,"} {
		if got := Tokenize(in); len(got) != 0 {
			t.Fatalf("Tokenize(%q) = %v, want empty", in, got)
		}
	}
}

func TestTokenizeUnicodeIsSeparator(t *testing.T) {
	got := Tokenize("café")
	want := []string{"caf"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize(café) = %v, want %v", got, want)
	}
}

func TestTokenizeIdempotentUnderJoin(t *testing.T) {
	x := "Several Separate-Words, mixed123 WITH Digits"
	first := Tokenize(x)
	rejoined := strings.Join(first, "|")
	second := Tokenize(rejoined)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("tokenize not idempotent under join: %v != %v", first, second)
	}
}
