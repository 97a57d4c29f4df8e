package cliactions

import (
	"flag"
	"io"
	"os"

	log "github.com/cihub/seelog"

	"github.com/ryanhow10/SearchEngine/internal/apperr"
	"github.com/ryanhow10/SearchEngine/internal/corpus"
	"github.com/ryanhow10/SearchEngine/internal/index"
)

// IndexAction implements the "index" subcommand: build a fresh index
// from a gzipped corpus file.
func IndexAction() *indexAction {
	return new(indexAction)
}

type indexAction struct {
	Args
}

func (a *indexAction) Name() string { return "index" }

func (a *indexAction) DefineFlags(fs *flag.FlagSet) {
	a.AddDefaultArgs(fs)
}

func (a *indexAction) Run() {
	a.setupLogging()

	if err := requireArgs(a.fs, 2, "<latimes.gz> <index_dir>"); err != nil {
		die(err)
	}

	gzPath, indexDir := a.fs.Args()[0], a.fs.Args()[1]

	if err := mustNotExist(indexDir); err != nil {
		die(err)
	}

	if err := buildIndex(gzPath, indexDir); err != nil {
		die(err)
	}

	log.Infof("index built at %s", indexDir)
}

func buildIndex(gzPath, indexDir string) error {
	f, err := os.Open(gzPath)
	if err != nil {
		return apperr.NewIO("opening "+gzPath, err)
	}
	defer f.Close()

	r, err := corpus.Open(f)
	if err != nil {
		return apperr.NewIO("reading gzip stream", err)
	}
	defer r.Close()

	if err := os.MkdirAll(indexDir, 0o755); err != nil {
		return apperr.NewIO("creating "+indexDir, err)
	}

	builder := index.NewBuilder(indexDir)

	for {
		raw, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return apperr.NewIO("reading corpus", err)
		}

		rec, err := corpus.ParseRecord(raw)
		if err != nil {
			return err
		}

		if err := builder.Insert(rec); err != nil {
			return apperr.NewIO("storing document "+rec.DocNo, err)
		}
	}

	log.Infof("indexed %d documents", builder.NumDocs())

	return builder.Save()
}
