package harness

import (
	"reflect"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// evaluate parses the trailing expected field with the comparator's
// expected-value codec, applies the comparator to (expected, actual), and
// builds the row's output with both values serialized for diagnostics.
func (h *Handler) evaluate(expectedField string, actual reflect.Value, elapsed time.Duration) (TestOutput, error) {
	expected, err := h.expected.Parse(expectedField)
	if err != nil {
		return TestOutput{}, err
	}
	actualValue := actual.Interface()
	return TestOutput{
		Passed:   h.compare(expected, actualValue),
		Elapsed:  elapsed,
		Expected: ldvalue.NewOptionalString(h.expected.Serialize(expected)),
		Actual:   ldvalue.NewOptionalString(h.result.Serialize(actualValue)),
	}, nil
}

func (h *Handler) compare(expected, actual interface{}) bool {
	if !h.comp.IsValid() {
		return reflect.DeepEqual(expected, actual)
	}
	out := h.comp.Call([]reflect.Value{reflect.ValueOf(expected), reflect.ValueOf(actual)})
	return out[0].Bool()
}
