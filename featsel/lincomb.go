package featsel

import (
	"github.com/winnowdata/winnow/frame"
	"github.com/winnowdata/winnow/lincomb"
)

// LinearCombinationFilter removes columns that are exact linear
// combinations of other columns in scope, using lincomb.Resolve. A
// frame with a single column in scope has nothing to combine and fits
// to an empty drop list.
type LinearCombinationFilter struct {
	base
	opts Options
}

// NewLinearCombinationFilter builds the filter. Accepted options:
// WithColumns.
func NewLinearCombinationFilter(opts ...Option) *LinearCombinationFilter {
	return &LinearCombinationFilter{opts: gatherOptions(Options{}, opts...)}
}

// Fit resolves the linear dependencies among the scoped columns and
// records the dropped names. An explicit scope must name at least two
// existing columns; all scoped values must be finite.
func (t *LinearCombinationFilter) Fit(f *frame.Frame) error {
	if f == nil {
		return featselErrorf(opLCFit, ErrNilFrame)
	}
	sub := f
	if t.opts.Columns != nil {
		if len(t.opts.Columns) < 2 {
			return featselErrorf(opLCFit, ErrTooFewColumns)
		}
		var err error
		if sub, err = f.Select(t.opts.Columns...); err != nil {
			return featselErrorf(opLCFit, err)
		}
	}
	_, dropped, err := lincomb.Resolve(sub)
	if err != nil {
		return featselErrorf(opLCFit, err)
	}
	t.setFitted(dropped)

	return nil
}

// Transform removes the fitted drops from f.
func (t *LinearCombinationFilter) Transform(f *frame.Frame) (*frame.Frame, error) {
	return t.transform(opLCTrans, f)
}

// FitTransform fits on f and immediately transforms it.
func (t *LinearCombinationFilter) FitTransform(f *frame.Frame) (*frame.Frame, error) {
	if err := t.Fit(f); err != nil {
		return nil, err
	}

	return t.Transform(f)
}
