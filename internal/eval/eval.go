// Package eval computes retrieval effectiveness metrics over a
// TREC-style result file and qrels, grounded on
// original_source/Evaluation/Evaluation.java's streaming per-topic
// grouping and exact AP/P@10/NDCG/TBG formulas.
package eval

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/ryanhow10/SearchEngine/internal/index"
	"github.com/ryanhow10/SearchEngine/internal/resultfile"
)

const (
	pClickRel    = 0.64
	pClickNonrel = 0.39
	pSaveRel     = 0.77
	tSummary     = 4.4
	halfLife     = 224.0
)

// ExcludedTopics are skipped from the fixed output table; these
// topics carry no qrels in the reference evaluation run.
var ExcludedTopics = map[int]bool{416: true, 423: true, 437: true, 444: true, 447: true}

const (
	firstTopic = 401
	lastTopic  = 450
)

// Metrics is the row of effectiveness scores computed for one topic.
type Metrics struct {
	AP       float64
	P10      float64
	NDCG10   float64
	NDCG1000 float64
	TBG      float64
}

// docLength resolves a docno to its indexed token length, returning 0
// for a docno the index has no record of.
func docLength(ix *index.Index, docno string) uint32 {
	id, ok := ix.DocNoToID[docno]
	if !ok {
		return 0
	}
	return ix.Meta[id].Length
}

func tDoc(dl uint32) float64 {
	return 0.018*float64(dl) + 7.8
}

// Compute scores one topic's already score-sorted list of docnos
// against its relevant set.
func Compute(ix *index.Index, docnos []string, relevant map[string]bool) Metrics {
	return Metrics{
		AP:       averagePrecision(docnos, relevant),
		P10:      precisionAtN(docnos, relevant, 10),
		NDCG10:   ndcgAtN(docnos, relevant, 10),
		NDCG1000: ndcgAtN(docnos, relevant, 1000),
		TBG:      tbg(ix, docnos, relevant),
	}
}

func averagePrecision(docnos []string, relevant map[string]bool) float64 {
	if len(relevant) == 0 {
		return 0
	}
	relCount := 0
	sum := 0.0
	for i, d := range docnos {
		if relevant[d] {
			relCount++
			sum += float64(relCount) / float64(i+1)
		}
	}
	return sum / float64(len(relevant))
}

func precisionAtN(docnos []string, relevant map[string]bool, n int) float64 {
	m := n
	if len(docnos) < m {
		m = len(docnos)
	}
	count := 0
	for i := 0; i < m; i++ {
		if relevant[docnos[i]] {
			count++
		}
	}
	return float64(count) / float64(n)
}

func dcgAtN(docnos []string, relevant map[string]bool, n int) float64 {
	m := n
	if len(docnos) < m {
		m = len(docnos)
	}
	sum := 0.0
	for i := 0; i < m; i++ {
		if relevant[docnos[i]] {
			sum += 1 / math.Log2(float64(i+2))
		}
	}
	return sum
}

func idcgAtN(relevant map[string]bool, n int) float64 {
	m := len(relevant)
	if n < m {
		m = n
	}
	sum := 0.0
	for i := 0; i < m; i++ {
		sum += 1 / math.Log2(float64(i+2))
	}
	return sum
}

func ndcgAtN(docnos []string, relevant map[string]bool, n int) float64 {
	idcg := idcgAtN(relevant, n)
	if idcg == 0 {
		return 0
	}
	return dcgAtN(docnos, relevant, n) / idcg
}

func tbg(ix *index.Index, docnos []string, relevant map[string]bool) float64 {
	total := 0.0
	accumTime := 0.0

	for i, d := range docnos {
		if i > 0 {
			prev := docnos[i-1]
			pclick := pClickNonrel
			if relevant[prev] {
				pclick = pClickRel
			}
			accumTime += tSummary + tDoc(docLength(ix, prev))*pclick
		}

		if relevant[d] {
			gain := pClickRel * pSaveRel
			total += gain * math.Exp(-accumTime*math.Ln2/halfLife)
		}
	}

	return total
}

// Run streams lines (already read from a result file),
// groups them by topic (blocks of consecutive same-topic lines,
// sorted by descending score before scoring), scores every topic
// present in qrels, and prints the fixed-format table over
// firstTopic..lastTopic excluding ExcludedTopics.
func Run(w io.Writer, ix *index.Index, qrels Qrels, lines []resultfile.Line) error {
	scores := make(map[int]Metrics)

	i := 0
	for i < len(lines) {
		topicID := lines[i].TopicID
		j := i
		for j < len(lines) && lines[j].TopicID == topicID {
			j++
		}

		block := lines[i:j]
		sort.SliceStable(block, func(a, b int) bool {
			return block[a].Score > block[b].Score
		})

		if relevant, ok := qrels[topicID]; ok {
			docnos := make([]string, len(block))
			for k, l := range block {
				docnos[k] = l.DocNo
			}
			scores[topicID] = Compute(ix, docnos, relevant)
		}

		i = j
	}

	return printTable(w, scores)
}

func printTable(w io.Writer, scores map[int]Metrics) error {
	if _, err := fmt.Fprintf(w, "%-10s%-20s%-10s%-10s%-15s%-10s\n",
		"Topic ID", "Average Precision", "P@10", "NDCG@10", "NDCG@1000", "TBG"); err != nil {
		return err
	}

	for topic := firstTopic; topic <= lastTopic; topic++ {
		if ExcludedTopics[topic] {
			continue
		}

		m := scores[topic]
		if _, err := fmt.Fprintf(w, "%-10d%-20f%-10f%-10f%-15f%-10f\n",
			topic, m.AP, m.P10, m.NDCG10, m.NDCG1000, m.TBG); err != nil {
			return err
		}
	}

	return nil
}
