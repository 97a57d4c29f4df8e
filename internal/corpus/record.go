// Package corpus parses TREC <DOC> records out of the LATimes
// newswire collection. It deliberately avoids a general XML/SGML
// library in favor of a small hand-written tag scanner, following
// the teacher's own BadXMLTokenizer idiom (scanner/filereader) of
// scanning for exactly the tags this corpus actually uses rather than
// pulling in a DOM implementation.
package corpus

import (
	"strings"

	"github.com/ryanhow10/SearchEngine/internal/apperr"
)

// Record is the set of fields extracted from one <DOC> element.
type Record struct {
	Raw      []byte
	DocNo    string
	Headline string
	Text     string
	Graphic  string
}

// RawText is the concatenation TEXT ++ HEADLINE ++ GRAPHIC that the
// index builder tokenizes and the snippet scorer searches over.
func (r *Record) RawText() string {
	return r.Text + r.Headline + r.Graphic
}

// ParseRecord extracts DOCNO, HEADLINE, TEXT, and GRAPHIC from one
// accumulated <DOC>...</DOC> record. DOCNO must be present and exactly
// 13 characters after trimming; any other field defaults to empty.
func ParseRecord(raw []byte) (*Record, error) {
	s := string(raw)

	docno, ok := extractTag(s, "DOCNO")
	docno = strings.TrimSpace(docno)
	if !ok || len(docno) != 13 {
		return nil, apperr.NewMalformedRecord("DOCNO missing or not 13 characters: %q", docno)
	}

	headline := ""
	if h, ok := extractTag(s, "HEADLINE"); ok {
		for _, p := range extractAllTags(h, "P") {
			headline += textContent(p)
		}
	}

	text := ""
	if t, ok := extractTag(s, "TEXT"); ok {
		text = textContent(t)
	}

	graphic := ""
	if g, ok := extractTag(s, "GRAPHIC"); ok {
		graphic = textContent(g)
	}

	return &Record{
		Raw:      raw,
		DocNo:    docno,
		Headline: headline,
		Text:     text,
		Graphic:  graphic,
	}, nil
}

// extractTag returns the inner content of the first <tag>...</tag>
// occurrence in s.
func extractTag(s, tag string) (string, bool) {
	open := "<" + tag + ">"
	close_ := "</" + tag + ">"

	start := strings.Index(s, open)
	if start < 0 {
		return "", false
	}
	start += len(open)

	end := strings.Index(s[start:], close_)
	if end < 0 {
		return "", false
	}

	return s[start : start+end], true
}

// extractAllTags returns the inner content of every non-nested
// <tag>...</tag> occurrence in s, in document order.
func extractAllTags(s, tag string) []string {
	open := "<" + tag + ">"
	close_ := "</" + tag + ">"

	var out []string
	pos := 0
	for {
		start := strings.Index(s[pos:], open)
		if start < 0 {
			break
		}
		start += pos + len(open)

		end := strings.Index(s[start:], close_)
		if end < 0 {
			break
		}

		out = append(out, s[start:start+end])
		pos = start + end + len(close_)
	}
	return out
}

// textContent recursively discards tag markup, concatenating only
// character data -- the same structural effect as the Java DOM's
// getTextContent(), so no further tag-stripping pass is needed
// afterward.
func textContent(s string) string {
	var b strings.Builder
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				b.WriteByte(s[i])
			}
		}
	}
	return b.String()
}
