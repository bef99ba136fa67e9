// Package anova error taxonomy.
//
// NOTE ON NAMING & PREFIXING
// Sentinels carry the "anova:" prefix; callers match with errors.Is. All
// validation happens before any statistic is computed.

package anova

import (
	"errors"
	"fmt"
)

var (
	// ErrNilFrame is returned when no frame is supplied.
	ErrNilFrame = errors.New("anova: nil frame")

	// ErrTooFewGroups is returned when fewer than two groups are offered
	// to the F-test.
	ErrTooFewGroups = errors.New("anova: at least two groups required")

	// ErrEmptyGroup is returned when a group carries no observations.
	ErrEmptyGroup = errors.New("anova: every group needs at least one observation")

	// ErrTooFewValues is returned when the pooled sample is not larger
	// than the group count, leaving no within-group degrees of freedom.
	ErrTooFewValues = errors.New("anova: more observations than groups required")

	// ErrBadK rejects a non-positive k in KBest.
	ErrBadK = errors.New("anova: k must be positive")

	// ErrBadPercentile rejects a percentile outside [0, 100].
	ErrBadPercentile = errors.New("anova: percentile must be between 0 and 100")

	// ErrBadFold is returned for an empty fold or a row index outside the
	// frame.
	ErrBadFold = errors.New("anova: invalid fold")

	// ErrLengthMismatch is returned when scores and names disagree in
	// length.
	ErrLengthMismatch = errors.New("anova: scores and names must have equal length")
)

// op* constants centralize operation names used in wrapped errors.
const (
	opFOneway    = "FOneway"
	opFClassif   = "FClassif"
	opScore      = "Score"
	opKBest      = "KBest"
	opPercentile = "Percentile"
)

// anovaErrorf wraps err with the operation that raised it.
func anovaErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
