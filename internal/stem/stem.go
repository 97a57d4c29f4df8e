// Package stem wraps the Porter stemmer as a pure function,
// following the same defensive call pattern as the teacher's
// PorterFilter: the stemmer library is treated as an opaque external
// collaborator, and any panic it raises falls back to the original
// token rather than propagating.
package stem

import (
	log "github.com/cihub/seelog"
	porter "github.com/reiver/go-porterstemmer"
)

// Stem reduces a single lower-cased token to its Porter stem.
func Stem(token string) (stemmed string) {
	stemmed = token

	defer func() {
		if err := recover(); err != nil {
			log.Warnf("porter stemmer panicked on %q: %v", token, err)
			stemmed = token
		}
	}()

	stemmed = porter.StemString(token)
	return
}

// StemAll stems every token, returning a new slice; tokens itself is
// left unchanged.
func StemAll(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = Stem(tok)
	}
	return out
}
