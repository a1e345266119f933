package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/stackoverflowed/judge-harness/harness"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	dir      string
	filters  harness.RegexFilters
	list     bool
	debug    bool
	debugAll bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.dir, "dir", "testdata", "directory containing the test vector files")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select suites to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select suites not to run")
	fs.BoolVar(&c.list, "list", false, "list the available suites and exit")
	fs.BoolVar(&c.debug, "debug", false, "capture debug logging and show it if the run fails")
	fs.BoolVar(&c.debugAll, "debug-all", false, "print debug logging for every row")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
