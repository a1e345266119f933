package harness

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/stackoverflowed/judge-harness/codec"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Handler runs a table of test vectors against one function under test. It
// holds the signature derived once from the function's reflected type, plus
// the codecs for its parameters, its result, and the comparator's
// expected-value parameter. A Handler is immutable after New.
type Handler struct {
	fn     reflect.Value
	comp   reflect.Value // zero Value when the default comparator is in use
	params []*codec.Codec

	// expected parses the trailing field of each row; result serializes the
	// function's return value for diagnostics. Both are nil exactly when
	// the function returns nothing. They differ when a custom comparator
	// declares an expected-value type other than the return type.
	expected *codec.Codec
	result   *codec.Codec
}

// New builds a Handler for fn, which must be a non-variadic func with at
// most one return value, all of whose parameter and return types have
// codecs.
//
// comp may be nil, selecting structural equality over the return type.
// Otherwise it must be a func(expected, actual) bool; its first parameter
// type decides how the expected field is parsed, and may differ from fn's
// return type. Its second parameter type is intentionally not checked. A
// comparator cannot be combined with a void function: the expected value
// and the return value must be void together or not at all.
func New(fn interface{}, comp interface{}) (*Handler, error) {
	if fn == nil {
		return nil, errors.New("function under test is nil")
	}
	fv := reflect.ValueOf(fn)
	ft := fv.Type()
	if ft.Kind() != reflect.Func {
		return nil, fmt.Errorf("function under test must be a func, got %s", ft)
	}
	if ft.IsVariadic() {
		return nil, errors.New("variadic functions are not supported")
	}
	if ft.NumOut() > 1 {
		return nil, fmt.Errorf("function under test must return at most one value, got %d", ft.NumOut())
	}

	h := &Handler{fn: fv}
	for i := 0; i < ft.NumIn(); i++ {
		c, err := codec.ForType(ft.In(i))
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i, err)
		}
		h.params = append(h.params, c)
	}
	if ft.NumOut() == 1 {
		c, err := codec.ForType(ft.Out(0))
		if err != nil {
			return nil, fmt.Errorf("return value: %w", err)
		}
		h.result = c
		h.expected = c
	}

	if comp != nil {
		cv := reflect.ValueOf(comp)
		ct := cv.Type()
		if ct.Kind() != reflect.Func || ct.IsVariadic() || ct.NumIn() != 2 ||
			ct.NumOut() != 1 || ct.Out(0).Kind() != reflect.Bool {
			return nil, fmt.Errorf("comparator must be a func(expected, actual) bool, got %s", ct)
		}
		if h.result == nil {
			return nil, errors.New("a comparator requires a function with a return value")
		}
		ec, err := codec.ForType(ct.In(0))
		if err != nil {
			return nil, fmt.Errorf("comparator expected-value parameter: %w", err)
		}
		h.expected = ec
		h.comp = cv
	}
	return h, nil
}

// ExpectedIsVoid reports whether rows carry no trailing expected field.
func (h *Handler) ExpectedIsVoid() bool { return h.expected == nil }

// ArgumentCount is the number of argument fields each row must carry.
func (h *Handler) ArgumentCount() int { return len(h.params) }

// MatchHeader validates a vector table's header row of type tags against the
// function's signature. It must be called once, before any data row is run.
func (h *Handler) MatchHeader(tags []string) error {
	want := len(h.params)
	if h.expected != nil {
		want++
	}
	if len(tags) != want {
		return &SignatureMismatchError{
			Reason: fmt.Sprintf("header has %d fields, function needs %d", len(tags), want),
		}
	}
	for i, c := range h.params {
		if tags[i] != c.Tag {
			return &SignatureMismatchError{
				Reason: fmt.Sprintf("parameter %d is %s, header says %s", i, c.Tag, tags[i]),
			}
		}
	}
	if h.expected != nil && tags[len(tags)-1] != h.expected.Tag {
		return &SignatureMismatchError{
			Reason: fmt.Sprintf("expected value is %s, header says %s", h.expected.Tag, tags[len(tags)-1]),
		}
	}
	return nil
}

// RunTest runs one data row: decode, invoke, evaluate. A nil error with
// Passed false means the row was judged and failed; a non-nil error is
// always a *SuiteError (with Row left for the caller to fill in) and means
// the whole suite must stop.
func (h *Handler) RunTest(fields []string) (TestOutput, error) {
	want := len(h.params)
	if h.expected != nil {
		want++
	}
	if len(fields) != want {
		return TestOutput{}, &SuiteError{Phase: PhaseDecode, Err: fmt.Errorf(
			"row has %d fields, signature needs %d", len(fields), want)}
	}

	args, err := h.decodeArgs(fields[:len(h.params)])
	if err != nil {
		return TestOutput{}, &SuiteError{Phase: PhaseDecode, Err: err}
	}

	result, elapsed, failure, err := h.invoke(args)
	if err != nil {
		return TestOutput{}, &SuiteError{Phase: PhaseInvoke, Err: err}
	}
	if failure != nil {
		output := TestOutput{Elapsed: elapsed, Failure: failure.Message}
		if h.expected != nil {
			// Best effort: the row already failed, the expected value is
			// only for diagnostics.
			if expected, perr := h.expected.Parse(fields[len(fields)-1]); perr == nil {
				output.Expected = ldvalue.NewOptionalString(h.expected.Serialize(expected))
			}
		}
		return output, nil
	}

	if h.expected == nil {
		return TestOutput{Passed: true, Elapsed: elapsed}, nil
	}
	output, err := h.evaluate(fields[len(fields)-1], result, elapsed)
	if err != nil {
		return TestOutput{}, &SuiteError{Phase: PhaseEvaluate, Err: err}
	}
	return output, nil
}
