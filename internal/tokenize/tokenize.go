// Package tokenize implements the system's single tokenization rule:
// lower-case ASCII, split on any byte that is not an ASCII letter or
// digit. It is a pure function, not a filter pipeline, since the
// retrieval system has exactly one fixed rule rather than a
// configurable chain of them.
package tokenize

// Tokenize splits text into lower-cased runs of ASCII letters and
// digits. Separator bytes (including any non-ASCII byte) are
// discarded; no empty tokens are ever produced.
func Tokenize(text string) []string {
	tokens := make([]string, 0)

	buf := make([]byte, 0, 16)
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'A' && c <= 'Z':
			buf = append(buf, c+('a'-'A'))
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			buf = append(buf, c)
		default:
			if len(buf) > 0 {
				tokens = append(tokens, string(buf))
				buf = buf[:0]
			}
		}
	}
	if len(buf) > 0 {
		tokens = append(tokens, string(buf))
	}

	return tokens
}
