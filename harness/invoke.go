package harness

import (
	"fmt"
	"reflect"
	"runtime/debug"
	"time"
)

// invoke calls the function under test with the decoded arguments. The
// timer brackets exactly the call, and elapsed is captured whether the
// function returns or panics. A panic carrying TestFailure comes back as
// failure; any other panic comes back as err with the stack attached.
func (h *Handler) invoke(args []reflect.Value) (result reflect.Value, elapsed time.Duration, failure *TestFailure, err error) {
	var start time.Time
	defer func() {
		if r := recover(); r != nil {
			elapsed = time.Since(start)
			switch f := r.(type) {
			case TestFailure:
				failure = &f
			case *TestFailure:
				failure = f
			default:
				err = fmt.Errorf("unexpected panic in function under test: %+v\n%s", r, debug.Stack())
			}
		}
	}()

	start = time.Now()
	out := h.fn.Call(args)
	elapsed = time.Since(start)

	if len(out) == 1 {
		result = out[0]
	}
	return result, elapsed, nil, nil
}
