// Package collinear error taxonomy.
//
// NOTE ON NAMING & PREFIXING
// Sentinels carry the "collinear:" prefix so wrapped errors stay
// attributable; callers match with errors.Is.

package collinear

import (
	"errors"
	"fmt"
)

var (
	// ErrNilCorrelation is returned when no correlation matrix is supplied.
	ErrNilCorrelation = errors.New("collinear: nil correlation matrix")

	// ErrTooFewColumns is returned when the matrix covers fewer than two
	// columns, below the minimum for a pairwise comparison.
	ErrTooFewColumns = errors.New("collinear: at least two columns required")
)

// collinearErrorf wraps err with the operation that raised it.
func collinearErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
