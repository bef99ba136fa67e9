// SPDX-License-Identifier: MIT

package anova

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/winnowdata/winnow/frame"
)

// FOneway performs a one-way ANOVA over two or more groups of
// observations, testing the null hypothesis that all groups share the
// same population mean. It returns the F statistic and the p-value from
// the F(k−1, n−k) distribution, k groups over n pooled observations.
//
// Groups that are constant everywhere make the within-group mean square
// zero; the statistic then degrades to +Inf (means differ) or NaN (they
// do not), and the p-value follows. That is defined behavior, not an
// error.
func FOneway(groups ...[]float64) (float64, float64, error) {
	k := len(groups)
	if k < 2 {
		return 0, 0, anovaErrorf(opFOneway, ErrTooFewGroups)
	}
	n := 0
	for _, g := range groups {
		if len(g) == 0 {
			return 0, 0, anovaErrorf(opFOneway, ErrEmptyGroup)
		}
		n += len(g)
	}
	if n <= k {
		return 0, 0, anovaErrorf(opFOneway, ErrTooFewValues)
	}

	// Sums of squares, Heiman's decomposition: total = between + within.
	ssAll, sumAll, ssbn := 0.0, 0.0, 0.0
	for _, g := range groups {
		s := floats.Sum(g)
		ssAll += floats.Dot(g, g)
		sumAll += s
		ssbn += s * s / float64(len(g))
	}
	sq := sumAll * sumAll / float64(n)
	sstot := ssAll - sq
	ssbn -= sq
	sswn := sstot - ssbn

	dfbn := k - 1
	dfwn := n - k
	msb := ssbn / float64(dfbn)
	msw := sswn / float64(dfwn)
	f := msb / msw

	if math.IsNaN(f) {
		return f, math.NaN(), nil
	}
	dist := distuv.F{D1: float64(dfbn), D2: float64(dfwn)}
	return f, dist.Survival(f), nil
}

// FClassif computes the ANOVA F score of every feature against a label
// column: rows are grouped by the distinct values of target (compared
// exactly) and each feature's groups go through FOneway.
//
// A nil or empty feature list defaults to every column except the target.
// Returned slices are parallel to the feature list.
func FClassif(f *frame.Frame, features []string, target string) ([]float64, []float64, error) {
	if f == nil {
		return nil, nil, anovaErrorf(opFClassif, ErrNilFrame)
	}
	rows := make([]int, f.Rows())
	for i := range rows {
		rows[i] = i
	}
	return classifRows(opFClassif, f, resolveFeatures(f, features, target), target, rows)
}

// resolveFeatures substitutes the default feature set, all columns minus
// the target, when none is given.
func resolveFeatures(f *frame.Frame, features []string, target string) []string {
	if len(features) > 0 {
		return features
	}
	out := make([]string, 0, f.Cols())
	for _, nm := range f.Names() {
		if nm != target {
			out = append(out, nm)
		}
	}
	return out
}

// classifRows is the shared kernel behind FClassif and Score: it groups
// the given rows by target value, in first-encounter order, and runs the
// F-test per feature on those groups.
func classifRows(op string, f *frame.Frame, features []string, target string, rows []int) ([]float64, []float64, error) {
	y, err := f.Column(target)
	if err != nil {
		return nil, nil, anovaErrorf(op, err)
	}

	classOf := make(map[float64]int)
	var classRows [][]int
	for _, r := range rows {
		ci, ok := classOf[y[r]]
		if !ok {
			ci = len(classRows)
			classOf[y[r]] = ci
			classRows = append(classRows, nil)
		}
		classRows[ci] = append(classRows[ci], r)
	}

	scores := make([]float64, len(features))
	pvalues := make([]float64, len(features))
	groups := make([][]float64, len(classRows))
	for fi, nm := range features {
		col, err := f.Column(nm)
		if err != nil {
			return nil, nil, anovaErrorf(op, err)
		}
		for ci, rws := range classRows {
			g := make([]float64, len(rws))
			for gi, r := range rws {
				g[gi] = col[r]
			}
			groups[ci] = g
		}
		fv, pv, err := FOneway(groups...)
		if err != nil {
			return nil, nil, anovaErrorf(op, err)
		}
		scores[fi], pvalues[fi] = fv, pv
	}
	return scores, pvalues, nil
}
