package cliactions

import (
	"flag"

	log "github.com/cihub/seelog"

	"github.com/ryanhow10/SearchEngine/internal/apperr"
	"github.com/ryanhow10/SearchEngine/internal/bm25"
	"github.com/ryanhow10/SearchEngine/internal/index"
	"github.com/ryanhow10/SearchEngine/internal/resultfile"
)

// BM25Action implements the "bm25" subcommand.
func BM25Action() *bm25Action {
	return new(bm25Action)
}

type bm25Action struct {
	Args
}

func (a *bm25Action) Name() string { return "bm25" }

func (a *bm25Action) DefineFlags(fs *flag.FlagSet) {
	a.AddDefaultArgs(fs)
}

func (a *bm25Action) Run() {
	a.setupLogging()

	if err := requireArgs(a.fs, 3, "<index_dir> <queries_file> <output_file>"); err != nil {
		die(err)
	}

	indexDir, queriesPath, outputPath := a.fs.Args()[0], a.fs.Args()[1], a.fs.Args()[2]

	if err := mustNotExist(outputPath); err != nil {
		die(err)
	}

	ix, err := index.Load(indexDir)
	if err != nil {
		die(apperr.NewIO("loading index", err))
	}

	queries, err := loadQueries(queriesPath)
	if err != nil {
		die(err)
	}

	var lines []resultfile.Line
	for _, q := range queries {
		results := bm25.Query(ix, q.Text)
		for rank, r := range results {
			lines = append(lines, resultfile.Line{
				TopicID: q.TopicID,
				DocNo:   r.DocNo,
				Rank:    rank + 1,
				Score:   r.Score,
				RunTag:  bm25.RunTag,
			})
		}
		log.Infof("topic %d: %d BM25 results", q.TopicID, len(results))
	}

	if err := writeResults(outputPath, lines); err != nil {
		die(err)
	}
}
