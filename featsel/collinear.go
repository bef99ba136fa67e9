package featsel

import (
	"github.com/winnowdata/winnow/collinear"
	"github.com/winnowdata/winnow/frame"
)

// MulticollinearityFilter removes columns whose pairwise absolute
// correlation reaches the configured threshold, keeping from each
// correlated pair the column with the lower mean absolute correlation
// against the rest (collinear.Filter).
type MulticollinearityFilter struct {
	base
	opts    Options
	macs    []float64
	details []collinear.Detail
}

// NewMulticollinearityFilter builds the filter. Accepted options:
// WithColumns, WithThreshold (0 < t <= 1, default DefaultCorrThreshold)
// and WithMethod (default Pearson).
func NewMulticollinearityFilter(opts ...Option) *MulticollinearityFilter {
	return &MulticollinearityFilter{opts: gatherOptions(Options{
		Threshold: DefaultCorrThreshold,
		Method:    frame.Pearson,
	}, opts...)}
}

// Fit computes the absolute correlation matrix of the scoped columns
// and records the drops chosen by the pairwise filter. The scope needs
// at least two columns and every scoped value must be finite.
func (t *MulticollinearityFilter) Fit(f *frame.Frame) error {
	if f == nil {
		return featselErrorf(opMCFit, ErrNilFrame)
	}
	if t.opts.Threshold <= 0 || t.opts.Threshold > 1 {
		return featselErrorf(opMCFit, ErrBadThreshold)
	}
	scope, err := scopeOf(f, t.opts.Columns)
	if err != nil {
		return featselErrorf(opMCFit, err)
	}
	if len(scope) < 2 {
		return featselErrorf(opMCFit, ErrTooFewColumns)
	}
	sub := f
	if t.opts.Columns != nil {
		if sub, err = f.Select(scope...); err != nil {
			return featselErrorf(opMCFit, err)
		}
	}
	if err = sub.CheckFinite(); err != nil {
		return featselErrorf(opMCFit, err)
	}
	corr, err := sub.Correlation(t.opts.Method)
	if err != nil {
		return featselErrorf(opMCFit, err)
	}
	drops, macs, details, err := collinear.Filter(corr.Abs(), t.opts.Threshold)
	if err != nil {
		return featselErrorf(opMCFit, err)
	}
	t.macs = macs
	t.details = details
	t.setFitted(drops)

	return nil
}

// Transform removes the fitted drops from f.
func (t *MulticollinearityFilter) Transform(f *frame.Frame) (*frame.Frame, error) {
	return t.transform(opMCTrans, f)
}

// FitTransform fits on f and immediately transforms it.
func (t *MulticollinearityFilter) FitTransform(f *frame.Frame) (*frame.Frame, error) {
	if err := t.Fit(f); err != nil {
		return nil, err
	}

	return t.Transform(f)
}

// MACs returns the mean absolute correlation recorded for each drop,
// parallel to Drops.
func (t *MulticollinearityFilter) MACs() []float64 {
	return append([]float64(nil), t.macs...)
}

// Details returns the per-drop diagnostic records, parallel to Drops.
func (t *MulticollinearityFilter) Details() []collinear.Detail {
	return append([]collinear.Detail(nil), t.details...)
}
