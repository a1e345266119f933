package harness

import (
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// TestOutput is the outcome of one test row. It is created once per row and
// never mutated afterward.
//
// Expected and Actual hold the codec string forms of the two compared
// values, for diagnostic reporting; both are undefined for void-returning
// functions, where only Passed and Elapsed are meaningful. Failure carries
// the message of a judged failure signaled by the function under test, and
// is empty otherwise.
type TestOutput struct {
	Passed   bool
	Elapsed  time.Duration
	Expected ldvalue.OptionalString
	Actual   ldvalue.OptionalString
	Failure  string
}
