package vec

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates a checked access outside the live range [0, Len()).
// Errors returned by At and SetAt match it with errors.Is.
var ErrOutOfRange = errors.New("vec: index out of range")

// RangeError is the error returned by the checked accessors. It carries the
// offending index and the length it was checked against.
type RangeError struct {
	Index int // the index that was requested
	Len   int // the vector's length at the time of the access
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("vec: index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
