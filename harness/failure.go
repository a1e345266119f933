package harness

import "fmt"

// TestFailure is the designated signal for a judged failure: a function
// under test panics with it to report that the current input failed,
// without aborting the rest of the suite. Any other panic value is treated
// as a program defect and stops the run.
type TestFailure struct {
	Message string
}

func (f TestFailure) Error() string { return f.Message }

// Fail signals a judged failure for the current test row.
func Fail(message string) {
	panic(TestFailure{Message: message})
}

// Failf is Fail with formatting.
func Failf(format string, args ...interface{}) {
	panic(TestFailure{Message: fmt.Sprintf(format, args...)})
}
