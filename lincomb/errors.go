// Package lincomb error taxonomy.
//
// NOTE ON NAMING & PREFIXING
// Every sentinel carries the "lincomb:" prefix so that a wrapped error
// surfacing far from the call site still identifies its origin. Callers
// match with errors.Is; the prefix is for humans reading logs, not for
// matching.

package lincomb

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix is returned when a nil matrix or frame is supplied.
	ErrNilMatrix = errors.New("lincomb: nil input")

	// ErrEmptyMatrix is returned when the input has no rows or no columns.
	ErrEmptyMatrix = errors.New("lincomb: matrix must have at least one row and one column")
)

// lincombErrorf wraps err with the operation that raised it, preserving
// errors.Is/As matching through the %w verb.
func lincombErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
