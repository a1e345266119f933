package harness

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrintResults writes a human-readable summary of a run: a one-line verdict,
// plus one line per failed row with the compared values (or the judged
// failure message) and the invocation time.
func PrintResults(w io.Writer, results Results) {
	if results.OK() {
		color.New(color.FgGreen).Fprintf(w, "All %d tests passed\n", len(results.Tests))
		return
	}
	color.New(color.FgRed, color.Bold).Fprintf(w, "FAILED: %d of %d tests\n",
		len(results.Failures), len(results.Tests))
	for _, f := range results.Failures {
		color.New(color.FgRed).Fprintf(w, "  %s%s [%s]\n",
			f.TestID, failureDetail(f.Output), f.Output.Elapsed)
	}
}

func failureDetail(output TestOutput) string {
	if output.Failure != "" {
		return fmt.Sprintf(" (%s)", output.Failure)
	}
	if output.Expected.IsDefined() || output.Actual.IsDefined() {
		return fmt.Sprintf(" (expected %s, got %s)",
			output.Expected.OrElse("-"), output.Actual.OrElse("-"))
	}
	return ""
}
