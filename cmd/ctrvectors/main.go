// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Command ctrvectors checks the AES-128 counter mode engine against the
// NIST SP 800-38A vectors through its blocking and asynchronous APIs.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/markkurossi/tabulate"
	"github.com/pion/aesctr"
	"github.com/pion/aesctr/vectors"
	"github.com/pion/logging"
	flag "github.com/spf13/pflag"
)

var logLevels = map[string]logging.LogLevel{ // nolint:gochecknoglobals
	"disabled": logging.LogLevelDisabled,
	"error":    logging.LogLevelError,
	"warn":     logging.LogLevelWarn,
	"info":     logging.LogLevelInfo,
	"debug":    logging.LogLevelDebug,
	"trace":    logging.LogLevelTrace,
}

func main() {
	delay := flag.Duration("delay", time.Second, "maximum wait for each asynchronous completion")
	logLevel := flag.String("log-level", "warn", "engine log level: disabled, error, warn, info, debug or trace")
	table := flag.Bool("table", true, "print a summary table")
	flag.Parse()

	level, ok := logLevels[strings.ToLower(*logLevel)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown log level %q\n", *logLevel)
		os.Exit(2)
	}

	loggerFactory := logging.NewDefaultLoggerFactory()
	loggerFactory.DefaultLogLevel = level
	log := loggerFactory.NewLogger("ctrvectors")

	engine, err := aesctr.NewEngine(aesctr.WithLoggerFactory(loggerFactory))
	if err != nil {
		panic(err)
	}
	defer closeEngine(engine, log)

	fmt.Println("[AES] Test App")

	failed := 0
	var all []vectors.Result
	for _, v := range vectors.SP80038A() {
		results, err := vectors.Run(engine, v, *delay)
		if err != nil {
			log.Errorf("%s: set key error %d: %v", v.Name, aesctr.ReturnCode(err), err)
			failed++
			continue
		}

		for _, r := range results {
			report(os.Stdout, r)
			if !r.Passed() {
				failed++
			}
		}
		all = append(all, results...)
	}

	if *table {
		summarize(os.Stdout, all)
	}

	if failed > 0 {
		// os.Exit skips the deferred close.
		closeEngine(engine, log)
		os.Exit(1)
	}
}

func closeEngine(engine io.Closer, log logging.LeveledLogger) {
	if err := engine.Close(); err != nil {
		log.Errorf("close engine: %v", err)
	}
}

func report(w io.Writer, r vectors.Result) {
	if r.Err != nil {
		fmt.Fprintf(w, "%s error %d: %v\n", r.Name, aesctr.ReturnCode(r.Err), r.Err)
	}
	if r.Passed() {
		fmt.Fprintf(w, "%s: PASSED\n", r.Name)
		return
	}

	fmt.Fprintf(w, "%s: FAILED\n", r.Name)
	fmt.Fprintf(w, "EXPECTED: % x\n", r.Expected)
	fmt.Fprintf(w, "GOT: % x\n", r.Got)
}

func summarize(w io.Writer, results []vectors.Result) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Check").SetAlign(tabulate.ML)
	tab.Header("Result").SetAlign(tabulate.MC)
	tab.Header("Time").SetAlign(tabulate.MR)

	for _, r := range results {
		row := tab.Row()
		row.Column(r.Name)
		if r.Passed() {
			row.Column("PASSED")
		} else {
			row.Column("FAILED").SetFormat(tabulate.FmtBold)
		}
		row.Column(r.Elapsed.String())
	}

	tab.Print(w)
}
