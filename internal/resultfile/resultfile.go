// Package resultfile reads and writes TREC-style result lines:
// "topicId Q0 docno rank score runTag", one result per line. Writing
// is used by the Boolean-AND and BM25 engines; strict-validating
// reading is used by the evaluator, grounded on
// original_source/Evaluation/Evaluation.java's line-by-line field
// validation.
package resultfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ryanhow10/SearchEngine/internal/apperr"
)

// Line is one parsed/about-to-be-written result line.
type Line struct {
	TopicID int
	DocNo   string
	Rank    int
	Score   float64
	RunTag  string
}

// Format renders l in the fixed "topicId Q0 docno rank score runTag"
// layout, single-space separated.
func Format(l Line) string {
	return fmt.Sprintf("%d Q0 %s %d %s %s",
		l.TopicID, l.DocNo, l.Rank, strconv.FormatFloat(l.Score, 'f', 6, 64), l.RunTag)
}

// WriteAll writes each line of lines, one per output line.
func WriteAll(w io.Writer, lines []Line) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := bw.WriteString(Format(l) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadAll parses every line of r under the evaluator's strict
// validation: exactly 6 fields, integer topicId and rank, float
// score, literal "Q0", a 13-character docno, and a non-empty run tag.
// Any violation is fatal -- no partial result set is returned.
func ReadAll(r io.Reader) ([]Line, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []Line
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		fields := strings.Fields(raw)
		if len(fields) != 6 {
			return nil, apperr.NewMalformedResultLine("line %d: expected 6 fields, got %d", lineNo, len(fields))
		}

		topicID, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, apperr.NewMalformedResultLine("line %d: bad topic id %q", lineNo, fields[0])
		}

		if fields[1] != "Q0" {
			return nil, apperr.NewMalformedResultLine("line %d: expected literal Q0, got %q", lineNo, fields[1])
		}

		docno := fields[2]
		if len(docno) != 13 {
			return nil, apperr.NewMalformedResultLine("line %d: docno %q is not 13 characters", lineNo, docno)
		}

		rank, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, apperr.NewMalformedResultLine("line %d: bad rank %q", lineNo, fields[3])
		}

		score, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return nil, apperr.NewMalformedResultLine("line %d: bad score %q", lineNo, fields[4])
		}

		runTag := fields[5]
		if runTag == "" {
			return nil, apperr.NewMalformedResultLine("line %d: empty run tag", lineNo)
		}

		lines = append(lines, Line{
			TopicID: topicID,
			DocNo:   docno,
			Rank:    rank,
			Score:   score,
			RunTag:  runTag,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
