package harness

import "fmt"

// Phase names the pipeline stage a fatal error came from.
type Phase string

const (
	PhaseSignature Phase = "signature"
	PhaseDecode    Phase = "decoding"
	PhaseInvoke    Phase = "invoking"
	PhaseEvaluate  Phase = "evaluating"
)

// SuiteError is a harness-fatal error: it halts the entire suite rather than
// scoring a single row. Row is 1-based over data rows; row 0 is the header.
// Handler.RunTest leaves Row zero, Runner fills it in.
type SuiteError struct {
	Row   int
	Phase Phase
	Err   error
}

func (e *SuiteError) Error() string {
	if e.Phase == PhaseSignature {
		return fmt.Sprintf("%s: %s", e.Phase, e.Err)
	}
	return fmt.Sprintf("row %d: %s: %s", e.Row, e.Phase, e.Err)
}

func (e *SuiteError) Unwrap() error { return e.Err }

// SignatureMismatchError means a vector table's header does not describe the
// function under test. Since vector files are external untyped data, this is
// the only guarantee that a table was authored for this function.
type SignatureMismatchError struct {
	Reason string
}

func (e *SignatureMismatchError) Error() string {
	return "signature mismatch: " + e.Reason
}
