package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/stackoverflowed/judge-harness/harness"
	"github.com/stackoverflowed/judge-harness/logging"
	"github.com/stackoverflowed/judge-harness/vectorfile"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	if params.list {
		for _, p := range catalog {
			fmt.Println(p.name)
		}
		return
	}

	debugLogger := logging.NullLogger()
	var captured *logging.CapturingLogger
	if params.debugAll {
		debugLogger = log.New(os.Stdout, "DEBUG ", log.LstdFlags)
	} else if params.debug {
		captured = &logging.CapturingLogger{}
		debugLogger = captured
	}

	fmt.Println("Running test suites")

	results, failedSuites, aborted := runCatalog(params.dir, params.filters.AsFilter, debugLogger)

	fmt.Println()
	harness.PrintResults(os.Stdout, results)

	if results.OK() && !aborted {
		return
	}
	if captured != nil {
		fmt.Println()
		fmt.Println("Debug output for this run:")
		captured.Output().Dump(os.Stdout, "  ")
	}
	var rerun commandBuilder
	rerun.add(os.Args[0], "-dir", params.dir)
	for _, name := range failedSuites {
		rerun.add("-run", "^"+name+"$")
	}
	fmt.Printf("\nTo rerun the failed suites: %s\n", rerun)
	os.Exit(1)
}

func runCatalog(dir string, filter harness.Filter, debugLogger logging.Logger) (harness.Results, []string, bool) {
	var results harness.Results
	var failedSuites []string
	for _, p := range catalog {
		id := harness.TestID{Path: []string{p.name}}
		if !filter(id) {
			fmt.Printf("SKIPPED: %s (excluded by filter parameters)\n", p.name)
			continue
		}

		file, err := vectorfile.ReadFile(filepath.Join(dir, p.file))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot load vectors for %s: %s\n", p.name, err)
			os.Exit(1)
		}
		h, err := harness.New(p.fn, p.comparator)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot build harness for %s: %s\n", p.name, err)
			os.Exit(1)
		}

		runner := harness.Runner{Handler: h, Logger: &ConsoleTestLogger{}, Debug: debugLogger}
		suiteResults, err := runner.RunFile(file)
		results.Tests = append(results.Tests, suiteResults.Tests...)
		results.Failures = append(results.Failures, suiteResults.Failures...)
		if len(suiteResults.Failures) > 0 || err != nil {
			failedSuites = append(failedSuites, p.name)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Suite aborted: %s: %s\n", p.name, err)
			return results, failedSuites, true
		}
	}
	return results, failedSuites, false
}
