package harness

import "strings"

// TestID identifies one test row, e.g. {"sum", "row 3"}.
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// RowResult pairs a row's identifier with its outcome.
type RowResult struct {
	TestID TestID
	Output TestOutput
}

// Results accumulates the outcomes of a run. Failures is the subset of
// Tests whose rows did not pass.
type Results struct {
	Tests    []RowResult
	Failures []RowResult
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}
