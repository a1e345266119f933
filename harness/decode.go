package harness

import (
	"fmt"
	"reflect"
)

// decodeArgs converts the argument fields of a row into call-ready values,
// positionally aligned with the function's parameters. Decoding is atomic:
// any bad field fails the whole row and nothing partially decoded survives.
func (h *Handler) decodeArgs(fields []string) ([]reflect.Value, error) {
	args := make([]reflect.Value, len(fields))
	for i, field := range fields {
		v, err := h.params[i].Parse(field)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		args[i] = reflect.ValueOf(v)
	}
	return args, nil
}
