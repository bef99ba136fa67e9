// Package frame: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the frame
// package. All operations return these sentinels and tests check them via
// errors.Is. No operation panics on user-triggered error conditions.

package frame

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "frame: ..." for consistency and easy
// grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with frameErrorf at the boundary —
// callers still match via errors.Is.

var (
	// ErrEmptyFrame is returned when a frame would have zero rows or zero
	// columns. Frames always hold at least one of each.
	ErrEmptyFrame = errors.New("frame: at least one row and one column required")

	// ErrNilData indicates a nil backing matrix was supplied to a constructor.
	ErrNilData = errors.New("frame: nil data matrix")

	// ErrEmptyColumnName indicates an empty string was supplied as a column name.
	ErrEmptyColumnName = errors.New("frame: empty column name")

	// ErrDuplicateColumn indicates the same column name was supplied twice.
	ErrDuplicateColumn = errors.New("frame: duplicate column name")

	// ErrUnknownColumn indicates a referenced column name is not present.
	ErrUnknownColumn = errors.New("frame: unknown column")

	// ErrDimensionMismatch indicates incompatible dimensions between names and
	// data, or between columns of unequal length.
	ErrDimensionMismatch = errors.New("frame: dimension mismatch")

	// ErrNonFinite signals a NaN or ±Inf value was encountered where finite
	// values are required.
	ErrNonFinite = errors.New("frame: non-finite value encountered")
)

// frameErrorf wraps an underlying error with operation context, preserving the
// original sentinel via %w so errors.Is keeps matching.
func frameErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
