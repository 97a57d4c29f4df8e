package cliactions

import (
	"flag"
	"os"

	"github.com/ryanhow10/SearchEngine/internal/apperr"
	"github.com/ryanhow10/SearchEngine/internal/eval"
	"github.com/ryanhow10/SearchEngine/internal/index"
	"github.com/ryanhow10/SearchEngine/internal/resultfile"
)

// EvalAction implements the "eval" subcommand.
func EvalAction() *evalAction {
	return new(evalAction)
}

type evalAction struct {
	Args
}

func (a *evalAction) Name() string { return "eval" }

func (a *evalAction) DefineFlags(fs *flag.FlagSet) {
	a.AddDefaultArgs(fs)
}

func (a *evalAction) Run() {
	a.setupLogging()

	if err := requireArgs(a.fs, 3, "<index_dir> <qrels_file> <result_file>"); err != nil {
		die(err)
	}

	indexDir, qrelsPath, resultPath := a.fs.Args()[0], a.fs.Args()[1], a.fs.Args()[2]

	ix, err := index.Load(indexDir)
	if err != nil {
		die(apperr.NewIO("loading index", err))
	}

	qf, err := os.Open(qrelsPath)
	if err != nil {
		die(apperr.NewIO("opening "+qrelsPath, err))
	}
	qrels, err := eval.ReadQrels(qf)
	qf.Close()
	if err != nil {
		die(err)
	}

	rf, err := os.Open(resultPath)
	if err != nil {
		die(apperr.NewIO("opening "+resultPath, err))
	}
	lines, err := resultfile.ReadAll(rf)
	rf.Close()
	if err != nil {
		die(err)
	}

	if err := eval.Run(os.Stdout, ix, qrels, lines); err != nil {
		die(err)
	}
}
