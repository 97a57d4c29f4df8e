package index

import (
	"testing"

	"github.com/ryanhow10/SearchEngine/internal/corpus"
	"github.com/ryanhow10/SearchEngine/internal/logging"
)

func TestMain(m *testing.M) {
	logging.SetupTestLogging()
	m.Run()
}

func rec(t *testing.T, docno, text string) *corpus.Record {
	t.Helper()
	raw := []byte("<DOC>\n<DOCNO>" + docno + "</DOCNO>\n<TEXT>\n<P>" + text + "</P>\n</TEXT>\n</DOC>\n")
	r, err := corpus.ParseRecord(raw)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestBuildThenLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	b := NewBuilder(dir)
	docs := []*corpus.Record{
		rec(t, "LA010189-0001", "The quick brown fox"),
		rec(t, "LA010189-0002", "The lazy dog sleeps"),
		rec(t, "LA010289-0001", "A fox and a dog"),
	}
	for _, d := range docs {
		if err := b.Insert(d); err != nil {
			t.Fatal(err)
		}
	}
	if err := b.Save(); err != nil {
		t.Fatal(err)
	}

	ix, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	if ix.NumDocs != 3 {
		t.Fatalf("NumDocs = %d, want 3", ix.NumDocs)
	}

	id, ok := ix.Lexicon.Find("fox")
	if !ok {
		t.Fatal("expected 'fox' in lexicon")
	}

	pl, ok := ix.Inverted[id]
	if !ok || len(pl) != 2 {
		t.Fatalf("postings for 'fox' = %v, want 2 entries", pl)
	}
	if pl[0].DocID > pl[1].DocID {
		t.Fatalf("postings not ascending: %v", pl)
	}

	for tid := range ix.Inverted {
		if _, ok := ix.Lexicon.Terms()[termFor(ix, tid)]; !ok {
			t.Fatalf("inverted index key %d has no lexicon term", tid)
		}
	}
}

func termFor(ix *Index, id uint32) string {
	for term, tid := range ix.Lexicon.Terms() {
		if tid == id {
			return term
		}
	}
	return ""
}

func TestDuplicateDocumentsGetDistinctIDs(t *testing.T) {
	dir := t.TempDir()
	b := NewBuilder(dir)

	d1 := rec(t, "LA010189-0001", "repeat text here")
	d2 := rec(t, "LA010189-0002", "repeat text here")

	if err := b.Insert(d1); err != nil {
		t.Fatal(err)
	}
	sizeAfterFirst := b.lexicon.Size()
	if err := b.Insert(d2); err != nil {
		t.Fatal(err)
	}

	if err := b.Save(); err != nil {
		t.Fatal(err)
	}

	if b.lexicon.Size() != sizeAfterFirst {
		t.Fatalf("lexicon grew on duplicate content: %d -> %d", sizeAfterFirst, b.lexicon.Size())
	}

	id, _ := b.lexicon.Find("repeat")
	pl := b.inverted[id]
	if len(pl) != 2 || pl[0].DocID == pl[1].DocID {
		t.Fatalf("expected two distinct postings, got %v", pl)
	}
}
