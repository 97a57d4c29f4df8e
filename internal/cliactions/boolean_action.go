package cliactions

import (
	"flag"
	"os"

	log "github.com/cihub/seelog"

	"github.com/ryanhow10/SearchEngine/internal/apperr"
	"github.com/ryanhow10/SearchEngine/internal/boolean"
	"github.com/ryanhow10/SearchEngine/internal/index"
	"github.com/ryanhow10/SearchEngine/internal/queryfile"
	"github.com/ryanhow10/SearchEngine/internal/resultfile"
)

// BooleanAction implements the "bool-and" subcommand.
func BooleanAction() *booleanAction {
	return new(booleanAction)
}

type booleanAction struct {
	Args
}

func (a *booleanAction) Name() string { return "bool-and" }

func (a *booleanAction) DefineFlags(fs *flag.FlagSet) {
	a.AddDefaultArgs(fs)
}

func (a *booleanAction) Run() {
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
		results := boolean.Query(ix, q.Text)
		for rank, r := range results {
			lines = append(lines, resultfile.Line{
				TopicID: q.TopicID,
				DocNo:   r.DocNo,
				Rank:    rank + 1,
				Score:   float64(r.Score),
				RunTag:  boolean.RunTag,
			})
		}
		log.Infof("topic %d: %d AND matches", q.TopicID, len(results))
	}

	if err := writeResults(outputPath, lines); err != nil {
		die(err)
	}
}

func loadQueries(path string) ([]queryfile.Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.NewIO("opening "+path, err)
	}
	defer f.Close()

	return queryfile.ReadAll(f)
}

func writeResults(path string, lines []resultfile.Line) error {
	f, err := os.Create(path)
	if err != nil {
		return apperr.NewIO("creating "+path, err)
	}
	defer f.Close()

	return resultfile.WriteAll(f, lines)
}
