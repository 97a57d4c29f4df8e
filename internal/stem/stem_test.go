package stem

import "testing"

func TestStemDeterministic(t *testing.T) {
	inputs := []string{"running", "ponies", "caresses", "feed"}
	for _, in := range inputs {
		a := Stem(in)
		b := Stem(in)
		if a != b {
			t.Fatalf("Stem(%q) not deterministic: %q vs %q", in, a, b)
		}
	}
}

func TestStemKnownCases(t *testing.T) {
	cases := map[string]string{
		"caresses": "caress",
		"ponies":   "poni",
		"feed":     "feed",
	}
	for in, want := range cases {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}
