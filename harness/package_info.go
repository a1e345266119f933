// Package harness contains the generic test-execution pipeline: it checks a
// vector table's type-tag header against the reflected signature of the
// function under test, decodes each row's string fields into typed
// arguments, invokes the function while timing it, and compares the result
// against the row's expected value with a pluggable comparator.
//
// The general model is:
//
// 1. A Handler is built once per suite from the function under test and an
// optional comparator. Construction fails if the function's shape is not
// supported or the comparator does not fit it.
//
// 2. The header row is validated once with MatchHeader, then each data row
// goes through RunTest, producing one immutable TestOutput.
//
// 3. Errors split into two classes. A comparator returning false, or the
// function under test signaling a judged failure via Fail, produces a
// failed TestOutput and the suite continues. Anything else (bad field
// counts, unparseable fields, unexpected panics) is a *SuiteError that
// aborts the whole run, identifying the offending row and phase.
//
// Callers that want the per-row loop, logger callbacks, and aggregate
// results use Runner rather than driving a Handler directly.
package harness
