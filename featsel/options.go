package featsel

import (
	"github.com/winnowdata/winnow/anova"
	"github.com/winnowdata/winnow/frame"
)

// Default thresholds and sizes applied when the corresponding option is
// not set.
const (
	// DefaultCorrThreshold is the absolute-correlation cutoff used by
	// MulticollinearityFilter.
	DefaultCorrThreshold = 0.85

	// DefaultSparsityThreshold is the NaN-share cutoff used by
	// SparseFeatureDropper.
	DefaultSparsityThreshold = 0.5

	// DefaultVarianceThreshold is the sample-variance cutoff used by
	// NearZeroVarianceFilter in variance mode.
	DefaultVarianceThreshold = 1e-6

	// DefaultKBest is the number of columns kept by FScoreSelector when
	// no strategy is configured.
	DefaultKBest = 10
)

// Options collects the tunables shared by the transformers. Each
// transformer reads only the fields that concern it and validates them
// during Fit.
type Options struct {
	// Columns limits the transformer to the named columns. Nil means
	// every column of the fitted frame; explicit names must exist.
	Columns []string

	// Threshold is the transformer-specific cutoff: absolute correlation
	// for MulticollinearityFilter (0 < t <= 1), NaN share for
	// SparseFeatureDropper (0 <= t < 1), sample variance (t > 0) or
	// frequency ratio (t > 1) for NearZeroVarianceFilter.
	Threshold float64

	// Method selects the correlation estimator used by
	// MulticollinearityFilter.
	Method frame.Method

	// FrequencyRatio switches NearZeroVarianceFilter from variance mode
	// to frequency-ratio mode.
	FrequencyRatio bool

	// Strategy picks the surviving columns in FScoreSelector from the
	// per-column F-scores.
	Strategy anova.Strategy

	// Folds are the row-index groups FScoreSelector averages F-scores
	// over. Nil means a single pass over every row.
	Folds [][]int

	// IID weights each fold's scores by its row count before averaging.
	IID bool
}

// Option mutates Options before a transformer is constructed.
type Option func(*Options)

// WithColumns restricts the transformer to the named columns.
func WithColumns(cols ...string) Option {
	return func(o *Options) { o.Columns = append([]string(nil), cols...) }
}

// WithThreshold overrides the transformer's cutoff.
func WithThreshold(t float64) Option {
	return func(o *Options) { o.Threshold = t }
}

// WithMethod selects the correlation estimator for
// MulticollinearityFilter.
func WithMethod(m frame.Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithFrequencyRatio puts NearZeroVarianceFilter in frequency-ratio
// mode. The threshold then bounds count(mode)/count(runner-up) and must
// exceed 1.
func WithFrequencyRatio() Option {
	return func(o *Options) { o.FrequencyRatio = true }
}

// WithStrategy sets the selection strategy for FScoreSelector.
func WithStrategy(s anova.Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithFolds sets the row-index folds FScoreSelector scores over.
func WithFolds(folds [][]int) Option {
	return func(o *Options) { o.Folds = folds }
}

// WithIID toggles fold-size weighting in FScoreSelector.
func WithIID(iid bool) Option {
	return func(o *Options) { o.IID = iid }
}

// gatherOptions applies opts over the transformer's defaults.
func gatherOptions(defaults Options, opts ...Option) Options {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}
