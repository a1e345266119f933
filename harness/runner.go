package harness

import (
	"errors"
	"fmt"

	"github.com/stackoverflowed/judge-harness/logging"
	"github.com/stackoverflowed/judge-harness/vectorfile"
)

// Runner drives a Handler over a whole vector file, strictly sequentially:
// each row is fully decoded, invoked, evaluated, and recorded before the
// next begins. Logger receives per-row lifecycle events; Debug receives
// timing chatter. Both may be nil.
type Runner struct {
	Handler *Handler
	Logger  TestLogger
	Debug   logging.Logger
}

// RunFile validates the file's header once, then runs every data row. On a
// harness-fatal error it stops immediately and returns the results
// accumulated so far together with a *SuiteError naming the offending row
// and phase. Judged failures do not stop the run; they land in
// Results.Failures.
func (r *Runner) RunFile(f *vectorfile.File) (Results, error) {
	logger := r.Logger
	if logger == nil {
		logger = nullTestLogger{}
	}
	debug := r.Debug
	if debug == nil {
		debug = logging.NullLogger()
	}

	if err := r.Handler.MatchHeader(f.Header); err != nil {
		suiteErr := &SuiteError{Row: 0, Phase: PhaseSignature, Err: err}
		logger.TestError(TestID{Path: []string{f.Name}}, suiteErr)
		return Results{}, suiteErr
	}
	debug.Printf("%s: header matched, %d rows to run", f.Name, len(f.Rows))

	var results Results
	for i, row := range f.Rows {
		id := TestID{Path: []string{f.Name, fmt.Sprintf("row %d", i+1)}}
		logger.TestStarted(id)

		output, err := r.Handler.RunTest(row)
		if err != nil {
			var suiteErr *SuiteError
			if errors.As(err, &suiteErr) {
				suiteErr.Row = i + 1
			} else {
				suiteErr = &SuiteError{Row: i + 1, Phase: PhaseInvoke, Err: err}
			}
			logger.TestError(id, suiteErr)
			return results, suiteErr
		}
		debug.Printf("%s: finished in %s", id, output.Elapsed)

		result := RowResult{TestID: id, Output: output}
		results.Tests = append(results.Tests, result)
		if !output.Passed {
			results.Failures = append(results.Failures, result)
		}
		logger.TestFinished(id, output)
	}
	return results, nil
}
