package logging

import (
	"flag"
	"fmt"
	"testing"

	log "github.com/cihub/seelog"
)

var appConfig = `
  <seelog type="sync" minlevel='%s'>
  <outputs formatid="main">
    <console />
  </outputs>
  <formats>
  <format id="main" format="searchengine: [%%LEV] %%Msg%%n" />
  </formats>
  </seelog>
`

// SetupLogging configures the package-level seelog logger from the
// integer verbosity level given to the -v flag (0 or 1: warn, 2: info,
// 3 and above: trace).
func SetupLogging(verbosity int) {
	var level string

	switch {
	case verbosity <= 1:
		level = "warn"
	case verbosity == 2:
		level = "info"
	default:
		level = "trace"
	}

	logger, err := log.LoggerFromConfigAsBytes([]byte(fmt.Sprintf(appConfig, level)))
	if err != nil {
		fmt.Println(err)
		return
	}

	log.ReplaceLogger(logger)
}

// SetupTestLogging configures logging for use inside _test.go files,
// routing to debug verbosity when the test binary was run with -v.
func SetupTestLogging() {
	var testConfig = `
  <seelog type="sync" minlevel='%s'>
  <outputs formatid="test">
    <console />
  </outputs>
  <formats>
  <format id="test" format="test: [%%LEV] %%Msg%%n" />
  </formats>
  </seelog>
`

	if !flag.Parsed() {
		flag.Parse()
	}

	level := "info"
	if testing.Verbose() {
		level = "debug"
	}

	logger, err := log.LoggerFromConfigAsBytes([]byte(fmt.Sprintf(testConfig, level)))
	if err != nil {
		fmt.Println(err)
		return
	}

	log.ReplaceLogger(logger)
}
