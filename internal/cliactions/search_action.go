package cliactions

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ryanhow10/SearchEngine/internal/apperr"
	"github.com/ryanhow10/SearchEngine/internal/bm25"
	"github.com/ryanhow10/SearchEngine/internal/corpus"
	"github.com/ryanhow10/SearchEngine/internal/docstore"
	"github.com/ryanhow10/SearchEngine/internal/index"
	"github.com/ryanhow10/SearchEngine/internal/snippet"
	"github.com/ryanhow10/SearchEngine/internal/stem"
	"github.com/ryanhow10/SearchEngine/internal/tokenize"
)

// SearchAction implements the "search" subcommand: an interactive
// SERP loop, grounded on
// original_source/Engine/SearchEngine.java's prompts and rendering.
func SearchAction() *searchAction {
	return new(searchAction)
}

type searchAction struct {
	Args
}

func (a *searchAction) Name() string { return "search" }

func (a *searchAction) DefineFlags(fs *flag.FlagSet) {
	a.AddDefaultArgs(fs)
}

const serpSize = 10

func (a *searchAction) Run() {
	a.setupLogging()

	if err := requireArgs(a.fs, 1, "<index_dir>"); err != nil {
		die(err)
	}

	ix, err := index.Load(a.fs.Args()[0])
	if err != nil {
		die(apperr.NewIO("loading index", err))
	}

	in := bufio.NewReader(os.Stdin)
	runSearchLoop(os.Stdout, in, ix)
}

func runSearchLoop(out *os.File, in *bufio.Reader, ix *index.Index) {
	for {
		fmt.Fprint(out, "Please enter a query: ")
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		query := strings.TrimSpace(line)

		if query == "" {
			fmt.Fprintln(out, "No results found")
			continue
		}

		tokens := tokenize.Tokenize(query)
		if len(tokens) == 0 {
			fmt.Fprintln(out, "No results found")
			continue
		}

		stemmed := stem.StemAll(tokens)
		anyKnown := false
		for _, t := range stemmed {
			if _, ok := ix.Lexicon.Find(t); ok {
				anyKnown = true
				break
			}
		}
		if !anyKnown {
			fmt.Fprintln(out, "No results found")
			continue
		}

		start := time.Now()
		results := bm25.Query(ix, query)
		elapsed := time.Since(start)

		if len(results) == 0 {
			fmt.Fprintln(out, "No results found")
			continue
		}

		n := serpSize
		if len(results) < n {
			n = len(results)
		}

		for rank := 1; rank <= n; rank++ {
			r := results[rank-1]
			renderResult(out, ix, r.DocID, rank, stemmed)
		}

		fmt.Fprintf(out, "Retrieval took %.1f seconds.\n", elapsed.Seconds())

		innerLoop(out, in, ix, results[:n])
	}
}

func renderResult(out *os.File, ix *index.Index, docID uint32, rank int, queryTerms []string) {
	meta := ix.Meta[docID]

	rawText, err := rawTextFor(ix, meta)
	if err != nil {
		rawText = ""
	}
	snip := snippet.For(rawText, queryTerms)

	headline := meta.Headline
	if headline == "" {
		if len(snip) <= 50 {
			headline = snip
		} else {
			headline = snip[:50] + "..."
		}
	}

	date := formatDate(meta.Date)

	fmt.Fprintf(out, "%d. %s (%s)\n", rank, oneLine(headline), date)
	fmt.Fprintf(out, "%s (%s)\n\n", oneLine(snip), meta.DocNo)
}

func rawTextFor(ix *index.Index, meta index.Metadata) (string, error) {
	raw, err := docstore.Load(ix.Dir, meta.Date, meta.DocNo)
	if err != nil {
		return "", err
	}
	rec, err := corpus.ParseRecord(raw)
	if err != nil {
		return "", err
	}
	return rec.RawText(), nil
}

func oneLine(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", " ")
}

func formatDate(mmddyy string) string {
	if len(mmddyy) != 6 {
		return mmddyy
	}
	return mmddyy[0:2] + "/" + mmddyy[2:4] + "/" + mmddyy[4:6]
}

func innerLoop(out *os.File, in *bufio.Reader, ix *index.Index, page []bm25.Result) {
	for {
		fmt.Fprint(out, "Enter 1-10 to view a ranked document, n/N to execute new query or q/Q to quit: ")
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			os.Exit(0)
		}
		cmd := strings.TrimSpace(line)

		switch cmd {
		case "n", "N":
			return
		case "q", "Q":
			os.Exit(0)
		default:
			rank, err := strconv.Atoi(cmd)
			if err != nil {
				fmt.Fprintln(out, "Invalid input")
				continue
			}
			if rank < 1 || rank > len(page) {
				fmt.Fprintln(out, "Rank must be between 1-10")
				continue
			}

			meta := ix.Meta[page[rank-1].DocID]
			raw, err := docstore.Load(ix.Dir, meta.Date, meta.DocNo)
			if err != nil {
				fmt.Fprintln(out, "No results found")
				continue
			}
			fmt.Fprintln(out, string(raw))
		}
	}
}
