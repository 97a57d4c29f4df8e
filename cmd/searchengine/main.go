package main

import (
	log "github.com/cihub/seelog"
	"github.com/cwacek/subcommand"

	"github.com/ryanhow10/SearchEngine/internal/cliactions"
)

func main() {
	defer log.Flush()

	subcommand.Parse(true,
		cliactions.IndexAction(),
		cliactions.BooleanAction(),
		cliactions.BM25Action(),
		cliactions.SearchAction(),
		cliactions.EvalAction(),
	)
}
