package boolean

import (
	"testing"

	"github.com/ryanhow10/SearchEngine/internal/corpus"
	"github.com/ryanhow10/SearchEngine/internal/index"
	"github.com/ryanhow10/SearchEngine/internal/logging"
)

func TestMain(m *testing.M) {
	logging.SetupTestLogging()
	m.Run()
}

func buildIndex(t *testing.T, docs map[string]string) *index.Index {
	t.Helper()
	dir := t.TempDir()
	b := index.NewBuilder(dir)

	for docno, text := range docs {
		raw := []byte("<DOC>\n<DOCNO>" + docno + "</DOCNO>\n<TEXT>\n<P>" + text + "</P>\n</TEXT>\n</DOC>\n")
		rec, err := corpus.ParseRecord(raw)
		if err != nil {
			t.Fatal(err)
		}
		if err := b.Insert(rec); err != nil {
			t.Fatal(err)
		}
	}
	if err := b.Save(); err != nil {
		t.Fatal(err)
	}

	ix, err := index.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	return ix
}

func TestQueryIntersectsAllTerms(t *testing.T) {
	ix := buildIndex(t, map[string]string{
		"LA010189-0001": "the quick brown fox jumps",
		"LA010189-0002": "the lazy dog sleeps",
		"LA010289-0001": "a quick fox and a dog",
	})

	results := Query(ix, "quick fox")
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2: %+v", len(results), results)
	}

	docnos := map[string]bool{}
	for _, r := range results {
		docnos[r.DocNo] = true
	}
	if !docnos["LA010189-0001"] || !docnos["LA010289-0001"] {
		t.Fatalf("unexpected result set: %+v", results)
	}
}

func TestQueryDropsOOVTermsRatherThanFailing(t *testing.T) {
	ix := buildIndex(t, map[string]string{
		"LA010189-0001": "the quick brown fox",
	})

	results := Query(ix, "quick zzxxqq")
	if len(results) != 1 {
		t.Fatalf("expected OOV term dropped, got %+v", results)
	}
}

func TestQueryAllTermsOOVYieldsEmpty(t *testing.T) {
	ix := buildIndex(t, map[string]string{
		"LA010189-0001": "the quick brown fox",
	})

	if results := Query(ix, "zzxxqq wwyyzz"); len(results) != 0 {
		t.Fatalf("expected empty result, got %+v", results)
	}
}
