package resultfile

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteThenReadRoundTrip(t *testing.T) {
	lines := []Line{
		{TopicID: 401, DocNo: "LA010189-0001", Rank: 1, Score: 12.5, RunTag: "BM25"},
		{TopicID: 401, DocNo: "LA010189-0002", Rank: 2, Score: 9.25, RunTag: "BM25"},
	}

	var buf bytes.Buffer
	if err := WriteAll(&buf, lines); err != nil {
		t.Fatal(err)
	}

	got, err := ReadAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].DocNo != "LA010189-0001" || got[1].Rank != 2 {
		t.Fatalf("got %+v", got)
	}
}

func TestReadAllRejectsMalformedLine(t *testing.T) {
	bad := "401 Q0 LA010189-0001 1 BM25\n" // missing score field
	if _, err := ReadAll(strings.NewReader(bad)); err == nil {
		t.Fatal("expected error for malformed line")
	}
}

func TestReadAllRejectsShortDocNo(t *testing.T) {
	bad := "401 Q0 short 1 12.0 BM25\n"
	if _, err := ReadAll(strings.NewReader(bad)); err == nil {
		t.Fatal("expected error for short docno")
	}
}
