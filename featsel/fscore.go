package featsel

import (
	"github.com/winnowdata/winnow/anova"
	"github.com/winnowdata/winnow/frame"
)

// FScoreSelector scores every feature column against a class target
// with the one-way ANOVA F-test (anova.Score) and keeps the columns the
// configured strategy selects. Everything else in scope becomes a drop.
type FScoreSelector struct {
	base
	target  string
	opts    Options
	scores  []float64
	pvalues []float64
	feats   []string
}

// NewFScoreSelector builds a selector scoring against the named target
// column. Accepted options: WithColumns (default: every column except
// the target), WithStrategy (default anova.KBest(DefaultKBest)),
// WithFolds and WithIID (default true).
func NewFScoreSelector(target string, opts ...Option) *FScoreSelector {
	return &FScoreSelector{target: target, opts: gatherOptions(Options{
		Strategy: anova.KBest(DefaultKBest),
		IID:      true,
	}, opts...)}
}

// Fit scores the feature columns and records as drops every scoped
// column the strategy did not keep, in scope order.
func (t *FScoreSelector) Fit(f *frame.Frame) error {
	if f == nil {
		return featselErrorf(opScoreFit, ErrNilFrame)
	}
	if t.opts.Strategy == nil {
		return featselErrorf(opScoreFit, ErrBadStrategy)
	}
	// The target never scores itself; an empty scope falls back to every
	// other column, the same default Score applies.
	feats := make([]string, 0, f.Cols())
	src := t.opts.Columns
	if len(src) == 0 {
		src = f.Names()
	}
	for _, nm := range src {
		if nm != t.target {
			feats = append(feats, nm)
		}
	}
	scores, pvalues, err := anova.Score(f, feats, t.target, t.opts.Folds, t.opts.IID)
	if err != nil {
		return featselErrorf(opScoreFit, err)
	}
	kept, err := t.opts.Strategy(scores, feats)
	if err != nil {
		return featselErrorf(opScoreFit, err)
	}
	keep := make(map[string]struct{}, len(kept))
	for _, nm := range kept {
		keep[nm] = struct{}{}
	}
	drops := make([]string, 0, len(feats)-len(kept))
	for _, nm := range feats {
		if _, ok := keep[nm]; !ok {
			drops = append(drops, nm)
		}
	}
	t.scores = scores
	t.pvalues = pvalues
	t.feats = feats
	t.setFitted(drops)

	return nil
}

// Transform removes the fitted drops from f.
func (t *FScoreSelector) Transform(f *frame.Frame) (*frame.Frame, error) {
	return t.transform(opScoreTr, f)
}

// FitTransform fits on f and immediately transforms it.
func (t *FScoreSelector) FitTransform(f *frame.Frame) (*frame.Frame, error) {
	if err := t.Fit(f); err != nil {
		return nil, err
	}

	return t.Transform(f)
}

// Features returns the scored columns in scoring order. Scores and
// PValues are parallel to it.
func (t *FScoreSelector) Features() []string {
	return append([]string(nil), t.feats...)
}

// Scores returns the F-scores recorded at Fit.
func (t *FScoreSelector) Scores() []float64 {
	return append([]float64(nil), t.scores...)
}

// PValues returns the p-values recorded at Fit.
func (t *FScoreSelector) PValues() []float64 {
	return append([]float64(nil), t.pvalues...)
}
