package docstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	raw := []byte("<DOC>\n<DOCNO>LA010189-0001</DOCNO>\n</DOC>\n")
	if err := Store(dir, "010189", "LA010189-0001", raw); err != nil {
		t.Fatal(err)
	}

	want := filepath.Join(dir, "01", "01", "89", "LA010189-0001.txt")
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected file at %s: %v", want, err)
	}

	got, err := Load(dir, "010189", "LA010189-0001")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(raw) {
		t.Fatalf("Load() = %q, want %q", got, raw)
	}
}
