package featsel

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------
// NOTE ON NAMING & PREFIXING
//
// Sentinel messages carry the "featsel:" prefix so an error that crosses
// package boundaries still names its origin. Operations wrap sentinels
// with the transformer and method that failed, e.g.
// "MulticollinearityFilter.Fit: featsel: threshold out of range".
// Match with errors.Is; never parse the text.
// ---------------------------------------------------------------------

var (
	// ErrNotFitted is returned by Transform before a successful Fit.
	ErrNotFitted = errors.New("featsel: transformer is not fitted")

	// ErrNilFrame is returned when a nil frame is passed to Fit or
	// Transform.
	ErrNilFrame = errors.New("featsel: nil frame")

	// ErrBadThreshold is returned by Fit when the configured threshold
	// lies outside the range the transformer accepts.
	ErrBadThreshold = errors.New("featsel: threshold out of range")

	// ErrBadStrategy is returned by FScoreSelector.Fit when no selection
	// strategy is configured.
	ErrBadStrategy = errors.New("featsel: nil selection strategy")

	// ErrTooFewColumns is returned when a transformer needs at least two
	// columns in scope and got fewer.
	ErrTooFewColumns = errors.New("featsel: at least two columns required")
)

// Operation names used in wrapped errors.
const (
	opLCFit     = "LinearCombinationFilter.Fit"
	opLCTrans   = "LinearCombinationFilter.Transform"
	opMCFit     = "MulticollinearityFilter.Fit"
	opMCTrans   = "MulticollinearityFilter.Transform"
	opSparseFit = "SparseFeatureDropper.Fit"
	opSparseTr  = "SparseFeatureDropper.Transform"
	opNZVFit    = "NearZeroVarianceFilter.Fit"
	opNZVTrans  = "NearZeroVarianceFilter.Transform"
	opDropFit   = "FeatureDropper.Fit"
	opDropTrans = "FeatureDropper.Transform"
	opKeepFit   = "FeatureRetainer.Fit"
	opKeepTrans = "FeatureRetainer.Transform"
	opScoreFit  = "FScoreSelector.Fit"
	opScoreTr   = "FScoreSelector.Transform"
)

// featselErrorf wraps err with the operation that produced it.
func featselErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
