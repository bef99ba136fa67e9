package featsel

import (
	"math"

	"github.com/winnowdata/winnow/frame"
)

// SparseFeatureDropper removes columns whose share of NaN values
// exceeds a threshold. It is the one transformer that accepts NaN in
// its input; Inf values count as present, not missing.
type SparseFeatureDropper struct {
	base
	opts     Options
	sparsity []float64
}

// NewSparseFeatureDropper builds the dropper. Accepted options:
// WithColumns and WithThreshold (0 <= t < 1, default
// DefaultSparsityThreshold).
func NewSparseFeatureDropper(opts ...Option) *SparseFeatureDropper {
	return &SparseFeatureDropper{opts: gatherOptions(Options{
		Threshold: DefaultSparsityThreshold,
	}, opts...)}
}

// Fit measures the NaN share of each scoped column and records the
// columns strictly above the threshold.
func (t *SparseFeatureDropper) Fit(f *frame.Frame) error {
	if f == nil {
		return featselErrorf(opSparseFit, ErrNilFrame)
	}
	if t.opts.Threshold < 0 || t.opts.Threshold >= 1 {
		return featselErrorf(opSparseFit, ErrBadThreshold)
	}
	scope, err := scopeOf(f, t.opts.Columns)
	if err != nil {
		return featselErrorf(opSparseFit, err)
	}

	rows := float64(f.Rows())
	sparsity := make([]float64, len(scope))
	drops := make([]string, 0)
	var col []float64
	for i, nm := range scope {
		if col, err = f.Column(nm); err != nil {
			return featselErrorf(opSparseFit, err)
		}
		missing := 0
		for _, v := range col {
			if math.IsNaN(v) {
				missing++
			}
		}
		sparsity[i] = float64(missing) / rows
		if sparsity[i] > t.opts.Threshold {
			drops = append(drops, nm)
		}
	}
	t.sparsity = sparsity
	t.setFitted(drops)

	return nil
}

// Transform removes the fitted drops from f.
func (t *SparseFeatureDropper) Transform(f *frame.Frame) (*frame.Frame, error) {
	return t.transform(opSparseTr, f)
}

// FitTransform fits on f and immediately transforms it.
func (t *SparseFeatureDropper) FitTransform(f *frame.Frame) (*frame.Frame, error) {
	if err := t.Fit(f); err != nil {
		return nil, err
	}

	return t.Transform(f)
}

// Sparsity returns the NaN share measured for each examined column,
// parallel to the fitted scope (the configured columns, or every
// column of the fitted frame).
func (t *SparseFeatureDropper) Sparsity() []float64 {
	return append([]float64(nil), t.sparsity...)
}
