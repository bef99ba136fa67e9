// SPDX-License-Identifier: MIT
// Package frame: pairwise correlation matrices over Frame columns.
//
// Purpose:
//   - Provide the correlation-computation utility the collinearity resolver
//     consumes: a symmetric table of pairwise column correlations with the
//     column names on both axes.
//   - Support the three standard methods (Pearson, Kendall, Spearman) behind
//     one entry point, Frame.Correlation.
//
// Determinism & numeric policy:
//   - Fixed column-pair iteration order; no randomness.
//   - Zero-variance columns yield NaN entries (0/0), never errors; downstream
//     max-searches treat NaN as "no usable correlation".

package frame

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Method selects how pairwise correlations are computed.
//
//   - Pearson  — linear correlation of raw values (moment-based).
//   - Kendall  — rank concordance (tau); robust to monotone transforms.
//   - Spearman — Pearson over average-ranked values; robust to outliers.
type Method int

const (
	// Pearson mode: moment correlation of raw values. The default everywhere.
	Pearson Method = iota

	// Kendall mode: tau rank-concordance correlation.
	Kendall

	// Spearman mode: Pearson correlation of average ranks.
	Spearman
)

// String implements fmt.Stringer for diagnostics and option reporting.
func (m Method) String() string {
	switch m {
	case Pearson:
		return "pearson"
	case Kendall:
		return "kendall"
	case Spearman:
		return "spearman"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// opCorrelation tags correlation errors.
const opCorrelation = "Correlation"

// CorrMatrix is a symmetric matrix of pairwise correlations with column
// names attached to both axes. It is the working currency of the
// collinearity resolver.
type CorrMatrix struct {
	names []string
	m     *mat.SymDense
}

// NewCorrMatrix wraps a symmetric matrix with its column names.
// Squareness is guaranteed by the SymDense type itself; the name count must
// match its order. Ownership of m passes to the CorrMatrix.
// Errors: ErrNilData, ErrDimensionMismatch, ErrEmptyColumnName, ErrDuplicateColumn.
func NewCorrMatrix(names []string, m *mat.SymDense) (*CorrMatrix, error) {
	const op = "NewCorrMatrix"
	if m == nil {
		return nil, frameErrorf(op, ErrNilData)
	}
	n, _ := m.Dims()
	if n != len(names) || n == 0 {
		return nil, frameErrorf(op, ErrDimensionMismatch)
	}
	if _, err := buildIndex(names); err != nil {
		return nil, frameErrorf(op, err)
	}
	held := make([]string, len(names))
	copy(held, names)

	return &CorrMatrix{names: held, m: m}, nil
}

// Len returns the number of columns (matrix order).
func (c *CorrMatrix) Len() int {
	n, _ := c.m.Dims()

	return n
}

// Names returns a copy of the column names in axis order.
func (c *CorrMatrix) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)

	return out
}

// At returns the correlation between columns i and j.
// Out-of-range indices panic, the same as the underlying gonum storage.
func (c *CorrMatrix) At(i, j int) float64 {
	return c.m.At(i, j)
}

// Abs returns a fresh CorrMatrix holding absolute values. NaN entries stay NaN.
func (c *CorrMatrix) Abs() *CorrMatrix {
	n := c.Len()
	out := mat.NewSymDense(n, nil)
	var v float64
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v = c.m.At(i, j)
			if v < 0 {
				v = -v
			}
			out.SetSym(i, j, v)
		}
	}

	return &CorrMatrix{names: c.Names(), m: out}
}

// Clone returns a deep copy of the CorrMatrix.
func (c *CorrMatrix) Clone() *CorrMatrix {
	n := c.Len()
	out := mat.NewSymDense(n, nil)
	out.CopySym(c.m)

	return &CorrMatrix{names: c.Names(), m: out}
}

// Sym exposes the backing symmetric matrix for read access.
// Treat the result as read-only; mutating it corrupts the CorrMatrix.
func (c *CorrMatrix) Sym() *mat.SymDense {
	return c.m
}

// Correlation computes the pairwise correlation matrix of all columns.
// Implementation:
//   - Stage 1 (Dispatch): pick the kernel for the requested Method.
//   - Stage 2 (Execute): Pearson delegates to gonum's two-pass
//     stat.CorrelationMatrix; Spearman rank-transforms every column (average
//     ranks for ties) and reuses the Pearson kernel; Kendall fills the upper
//     triangle pair by pair via stat.Kendall.
//
// Behavior highlights:
//   - Deterministic i→j pair order for Kendall; stable rank assignment for
//     Spearman (ties share the average of their 1-based positions).
//   - Zero-variance columns produce NaN rows/columns, by construction of the
//     underlying estimators. NaN is defined downstream behavior, not an error.
//
// Returns:
//   - *CorrMatrix: symmetric c×c correlations named like the frame columns.
//
// Errors:
//   - An explicit error for an unrecognized Method value.
//
// Complexity:
//   - Pearson/Spearman: O(r*c + c²) time, O(c²) space.
//   - Kendall: O(c² * r²) time with gonum's pairwise kernel.
func (f *Frame) Correlation(method Method) (*CorrMatrix, error) {
	switch method {
	case Pearson:
		return f.pearson(f.data)
	case Spearman:
		return f.pearson(f.ranked())
	case Kendall:
		return f.kendall()
	default:
		return nil, frameErrorf(opCorrelation, fmt.Errorf("unrecognized method %d", int(method)))
	}
}

// pearson runs gonum's two-pass correlation over the given storage.
func (f *Frame) pearson(x *mat.Dense) (*CorrMatrix, error) {
	var sym mat.SymDense
	stat.CorrelationMatrix(&sym, x, nil)

	return &CorrMatrix{names: f.Names(), m: &sym}, nil
}

// kendall fills tau correlations pair by pair.
func (f *Frame) kendall() (*CorrMatrix, error) {
	cols := f.Cols()
	rows := f.Rows()
	out := mat.NewSymDense(cols, nil)
	ci := make([]float64, rows)
	cj := make([]float64, rows)
	for i := 0; i < cols; i++ {
		out.SetSym(i, i, 1)
		mat.Col(ci, i, f.data)
		for j := i + 1; j < cols; j++ {
			mat.Col(cj, j, f.data)
			out.SetSym(i, j, stat.Kendall(ci, cj, nil))
		}
	}

	return &CorrMatrix{names: f.Names(), m: out}, nil
}

// ranked returns a fresh matrix whose columns are the average ranks of the
// frame's columns. Tied values share the mean of their 1-based positions.
func (f *Frame) ranked() *mat.Dense {
	rows, cols := f.data.Dims()
	out := mat.NewDense(rows, cols, nil)
	buf := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(buf, j, f.data)
		out.SetCol(j, rankAverage(buf))
	}

	return out
}

// rankAverage assigns 1-based ranks with ties resolved to their group mean.
// Complexity: O(n log n) for the stable sort plus one linear pass.
func rankAverage(x []float64) []float64 {
	n := len(x)
	ord := make([]int, n)
	for i := range ord {
		ord[i] = i
	}
	sort.SliceStable(ord, func(a, b int) bool { return x[ord[a]] < x[ord[b]] })

	ranks := make([]float64, n)
	for s := 0; s < n; {
		// Extend the tied run [s, e).
		e := s + 1
		for e < n && x[ord[e]] == x[ord[s]] {
			e++
		}
		avg := float64(s+1+e) / 2 // mean of 1-based ranks s+1..e
		for k := s; k < e; k++ {
			ranks[ord[k]] = avg
		}
		s = e
	}

	return ranks
}
