package main

import (
	"fmt"
	"strings"

	"github.com/stackoverflowed/judge-harness/harness"
)

type ConsoleTestLogger struct{}

func (c *ConsoleTestLogger) TestStarted(id harness.TestID) {
	fmt.Printf("[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id harness.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Printf("  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id harness.TestID, output harness.TestOutput) {
	if output.Passed {
		return
	}
	if output.Failure != "" {
		fmt.Printf("  FAILED: %s (%s)\n", id, output.Failure)
		return
	}
	fmt.Printf("  FAILED: %s (expected %s, got %s)\n",
		id, output.Expected.OrElse("-"), output.Actual.OrElse("-"))
}
