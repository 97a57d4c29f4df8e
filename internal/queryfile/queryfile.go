// Package queryfile reads the two-line-per-query format used by the
// bool-and, bm25, and eval-adjacent query programs: an integer topic
// id, then the free-text query, both trimmed. This plays the role the
// teacher's BufferQueriesFromFile (scanner/actions/query.go) plays for
// its TREC <num>/<topic> format, adapted to the simpler two-line shape
// this system's spec requires.
package queryfile

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ryanhow10/SearchEngine/internal/apperr"
)

// Query is one topic id paired with its free-text query string.
type Query struct {
	TopicID int
	Text    string
}

// ReadAll reads every query from r. Malformed topic ids or a trailing
// odd line are reported as usage errors -- this file format is
// considered part of the CLI contract, not corpus data.
func ReadAll(r io.Reader) ([]Query, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var queries []Query
	for scanner.Scan() {
		topicLine := strings.TrimSpace(scanner.Text())
		if topicLine == "" {
			continue
		}

		topicID, err := strconv.Atoi(topicLine)
		if err != nil {
			return nil, apperr.NewUsage("expected integer topic id, got %q", topicLine)
		}

		if !scanner.Scan() {
			return nil, apperr.NewUsage("topic %d has no query text line", topicID)
		}
		text := strings.TrimSpace(scanner.Text())

		queries = append(queries, Query{TopicID: topicID, Text: text})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return queries, nil
}
