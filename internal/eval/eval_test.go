package eval

import (
	"math"
	"testing"
)

func TestAveragePrecisionExampleFromSpec(t *testing.T) {
	relevant := map[string]bool{"A": true, "B": true}
	docnos := []string{"A", "X", "B", "Y"}

	got := averagePrecision(docnos, relevant)
	want := (1.0/1.0 + 2.0/3.0) / 2.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("AP = %v, want %v", got, want)
	}
}

func TestPrecisionAt10ExampleFromSpec(t *testing.T) {
	relevant := map[string]bool{"A": true, "B": true}
	docnos := []string{"A", "X", "B", "Y"}

	got := precisionAtN(docnos, relevant, 10)
	want := 2.0 / 10.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("P@10 = %v, want %v", got, want)
	}
}

func TestNDCGAt10ExampleFromSpec(t *testing.T) {
	relevant := map[string]bool{"A": true, "B": true}
	docnos := []string{"A", "X", "B", "Y"}

	got := ndcgAtN(docnos, relevant, 10)
	want := (1/math.Log2(2) + 1/math.Log2(4)) / (1/math.Log2(2) + 1/math.Log2(3))
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("NDCG@10 = %v, want %v", got, want)
	}
}

func TestMissingTopicScoresZero(t *testing.T) {
	m := Metrics{}
	if m.AP != 0 || m.P10 != 0 || m.NDCG10 != 0 || m.NDCG1000 != 0 || m.TBG != 0 {
		t.Fatalf("zero-value Metrics should be all zero: %+v", m)
	}
}
