package eval

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ryanhow10/SearchEngine/internal/apperr"
)

// Qrels maps topicId -> set of relevant docnos (judgment > 0).
type Qrels map[int]map[string]bool

// ReadQrels parses whitespace-separated lines "topicId iter docno
// judgment". The iteration column is unused, matching
// original_source/Evaluation/Evaluation.java's field layout.
func ReadQrels(r io.Reader) (Qrels, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	q := make(Qrels)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		fields := strings.Fields(raw)
		if len(fields) != 4 {
			return nil, apperr.NewMalformedQrel("line %d: expected 4 fields, got %d", lineNo, len(fields))
		}

		topicID, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, apperr.NewMalformedQrel("line %d: bad topic id %q", lineNo, fields[0])
		}

		docno := fields[2]

		judgment, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, apperr.NewMalformedQrel("line %d: bad judgment %q", lineNo, fields[3])
		}

		if judgment > 0 {
			if q[topicID] == nil {
				q[topicID] = make(map[string]bool)
			}
			q[topicID][docno] = true
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return q, nil
}
