package codec

import (
	"fmt"
	"reflect"
)

// DeserializationError means a vector file field could not be parsed as the
// type its column was declared with.
type DeserializationError struct {
	Tag   string
	Field string
	Err   error
}

func (e *DeserializationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse %q as %s: %s", e.Field, e.Tag, e.Err)
	}
	return fmt.Sprintf("cannot parse %q as %s", e.Field, e.Tag)
}

func (e *DeserializationError) Unwrap() error { return e.Err }

// UnsupportedTypeError means a type tag, or the Go type of a function
// parameter or return value, has no registered codec. Exactly one of Tag and
// Type is set, depending on which direction the lookup came from.
type UnsupportedTypeError struct {
	Tag  string
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	if e.Type != nil {
		return fmt.Sprintf("unsupported Go type %s", e.Type)
	}
	return fmt.Sprintf("unsupported type tag %q", e.Tag)
}
