// SPDX-License-Identifier: MIT

package anova

import (
	"github.com/winnowdata/winnow/frame"
)

// Score computes fold-averaged F scores: FClassif runs once per fold on
// that fold's training rows and the per-feature results are averaged
// across folds. With iid set, every fold's scores are weighted by its row
// count and the sum is divided by the frame's total row count; otherwise
// the plain mean over folds is taken.
//
// folds carries training-row index sets supplied by the caller; none
// means a single pass over all rows. Every fold must be non-empty, stay
// within the frame, and span at least two target classes.
func Score(f *frame.Frame, features []string, target string, folds [][]int, iid bool) ([]float64, []float64, error) {
	if f == nil {
		return nil, nil, anovaErrorf(opScore, ErrNilFrame)
	}
	rows := f.Rows()
	if len(folds) == 0 {
		all := make([]int, rows)
		for i := range all {
			all[i] = i
		}
		folds = [][]int{all}
	}
	for _, fold := range folds {
		if len(fold) == 0 {
			return nil, nil, anovaErrorf(opScore, ErrBadFold)
		}
		for _, r := range fold {
			if r < 0 || r >= rows {
				return nil, nil, anovaErrorf(opScore, ErrBadFold)
			}
		}
	}

	feats := resolveFeatures(f, features, target)
	scores := make([]float64, len(feats))
	pvalues := make([]float64, len(feats))
	for _, fold := range folds {
		fs, ps, err := classifRows(opScore, f, feats, target, fold)
		if err != nil {
			return nil, nil, err
		}
		w := 1.0
		if iid {
			w = float64(len(fold))
		}
		for i := range fs {
			scores[i] += fs[i] * w
			pvalues[i] += ps[i] * w
		}
	}

	div := float64(len(folds))
	if iid {
		div = float64(rows)
	}
	for i := range scores {
		scores[i] /= div
		pvalues[i] /= div
	}
	return scores, pvalues, nil
}
