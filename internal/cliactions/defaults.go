// Package cliactions implements the five operations of the CLI
// surface as subcommand.SubCommand values, dispatched from
// cmd/searchengine, mirroring the teacher's scanner/actions package
// structure (one file per action, a shared Args embedding the -v
// verbosity flag).
package cliactions

import (
	"flag"
	"os"

	log "github.com/cihub/seelog"

	"github.com/ryanhow10/SearchEngine/internal/apperr"
	"github.com/ryanhow10/SearchEngine/internal/logging"
)

// Args is embedded by every action to pick up the shared -v
// verbosity flag, matching scanner/actions/defaults.go's Args.
type Args struct {
	verbosity *int
	fs        *flag.FlagSet
}

func (a *Args) AddDefaultArgs(fs *flag.FlagSet) {
	a.verbosity = fs.Int("v", 0, "Be verbose [1, 2, 3]")
	a.fs = fs
}

func (a *Args) setupLogging() {
	logging.SetupLogging(*a.verbosity)
}

// requireArgs validates that fs has exactly n positional arguments
// left after flag parsing, returning a UsageError (with fs.Usage()
// already invoked) otherwise.
func requireArgs(fs *flag.FlagSet, n int, usage string) error {
	if len(fs.Args()) != n {
		fs.Usage()
		log.Criticalf("usage: %s %s", fs.Name(), usage)
		return apperr.NewUsage("%s expects %d arguments, got %d", fs.Name(), n, len(fs.Args()))
	}
	return nil
}

// mustNotExist enforces the "output path must not pre-exist"
// precondition shared by indexer, bool-and, and bm25.
func mustNotExist(path string) error {
	if _, err := os.Stat(path); err == nil {
		return apperr.NewIO(path+" already exists", nil)
	} else if !os.IsNotExist(err) {
		return apperr.NewIO("checking "+path, err)
	}
	return nil
}

// die logs err as a fatal, critical-level message and exits non-zero,
// the CLI boundary's uniform failure path for every action.
func die(err error) {
	log.Criticalf("%v", err)
	log.Flush()
	os.Exit(1)
}
