package featsel

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/winnowdata/winnow/frame"
)

// NearZeroVarianceFilter removes near-constant columns. In variance
// mode (the default) a column is dropped when its sample variance falls
// below the threshold. In frequency-ratio mode (Kuhn & Johnson) a
// column is dropped when the count of its most common value is at least
// threshold times the count of the runner-up; a column with fewer than
// two distinct values has no runner-up and is always dropped, with NaN
// recorded as its ratio.
type NearZeroVarianceFilter struct {
	base
	opts   Options
	ratios []float64
}

// NewNearZeroVarianceFilter builds the filter. Accepted options:
// WithColumns, WithThreshold (variance mode: t > 0, default
// DefaultVarianceThreshold; ratio mode: t > 1) and WithFrequencyRatio.
func NewNearZeroVarianceFilter(opts ...Option) *NearZeroVarianceFilter {
	return &NearZeroVarianceFilter{opts: gatherOptions(Options{
		Threshold: DefaultVarianceThreshold,
	}, opts...)}
}

// Fit evaluates every scoped column under the configured mode and
// records the drops together with their variances or ratios. All
// scoped values must be finite.
func (t *NearZeroVarianceFilter) Fit(f *frame.Frame) error {
	if f == nil {
		return featselErrorf(opNZVFit, ErrNilFrame)
	}
	if t.opts.FrequencyRatio {
		if t.opts.Threshold <= 1 {
			return featselErrorf(opNZVFit, ErrBadThreshold)
		}
	} else if t.opts.Threshold <= 0 {
		return featselErrorf(opNZVFit, ErrBadThreshold)
	}
	scope, err := scopeOf(f, t.opts.Columns)
	if err != nil {
		return featselErrorf(opNZVFit, err)
	}
	sub := f
	if t.opts.Columns != nil {
		if sub, err = f.Select(scope...); err != nil {
			return featselErrorf(opNZVFit, err)
		}
	}
	if err = sub.CheckFinite(); err != nil {
		return featselErrorf(opNZVFit, err)
	}

	drops := make([]string, 0)
	ratios := make([]float64, 0)
	var col []float64
	for _, nm := range scope {
		if col, err = f.Column(nm); err != nil {
			return featselErrorf(opNZVFit, err)
		}
		if t.opts.FrequencyRatio {
			ratio, drop := frequencyRatio(col, t.opts.Threshold)
			if drop {
				drops = append(drops, nm)
				ratios = append(ratios, ratio)
			}
			continue
		}
		if v := stat.Variance(col, nil); v < t.opts.Threshold {
			drops = append(drops, nm)
			ratios = append(ratios, v)
		}
	}
	t.ratios = ratios
	t.setFitted(drops)

	return nil
}

// frequencyRatio computes count(mode)/count(runner-up) for one column
// and whether that ratio reaches the drop threshold. A column with a
// single distinct value yields (NaN, true).
func frequencyRatio(col []float64, threshold float64) (float64, bool) {
	counts := make(map[float64]int, len(col))
	for _, v := range col {
		counts[v]++
	}
	if len(counts) < 2 {
		return math.NaN(), true
	}
	first, second := 0, 0
	for _, c := range counts {
		switch {
		case c > first:
			first, second = c, first
		case c > second:
			second = c
		}
	}
	ratio := float64(first) / float64(second)

	return ratio, ratio >= threshold
}

// Transform removes the fitted drops from f.
func (t *NearZeroVarianceFilter) Transform(f *frame.Frame) (*frame.Frame, error) {
	return t.transform(opNZVTrans, f)
}

// FitTransform fits on f and immediately transforms it.
func (t *NearZeroVarianceFilter) FitTransform(f *frame.Frame) (*frame.Frame, error) {
	if err := t.Fit(f); err != nil {
		return nil, err
	}

	return t.Transform(f)
}

// Ratios returns the sample variance (variance mode) or frequency
// ratio (ratio mode) recorded for each drop, parallel to Drops.
func (t *NearZeroVarianceFilter) Ratios() []float64 {
	return append([]float64(nil), t.ratios...)
}
