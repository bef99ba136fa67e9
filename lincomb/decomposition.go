// SPDX-License-Identifier: MIT

package lincomb

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Tolerances governing rank detection and coefficient pruning.
//
// RankTolerance scales the leading diagonal of R: a diagonal entry whose
// magnitude falls to RankTolerance·|R[0,0]| or below ends the independent
// block. CoefficientTolerance is the noise floor for reconstruction
// coefficients: anything at or below it is treated as exactly zero.
const (
	RankTolerance        = 1e-7
	CoefficientTolerance = 1e-6
)

// op* constants centralize operation names used in wrapped errors.
const (
	opDecompose = "Decompose"
	opResolve   = "Resolve"
)

// Decomposition is the result of a column-pivoted Householder QR
// factorization A·P = Q·R. Only the triangular factor, the pivot
// permutation and the numerical rank survive; the orthogonal factor is
// applied on the fly and discarded.
//
// The pivot is ordered so that its first Rank() entries index the
// independent columns of the original matrix and the remainder index the
// dependent ones.
type Decomposition struct {
	rows, cols int
	kmax       int       // reflection steps available: min(rows, cols)
	fac        []float64 // column-major working storage, R in the upper triangle
	pivot      []int
	rank       int
}

// Decompose factorizes x with greedy column pivoting: at every step the
// column with the largest residual norm moves to the front, ties broken
// toward the smaller index. The sweep stops early once every remaining
// residual is exactly zero.
//
// Complexity: O(rows·cols·min(rows,cols)) time, O(rows·cols) extra space.
func Decompose(x mat.Matrix) (*Decomposition, error) {
	if x == nil {
		return nil, lincombErrorf(opDecompose, ErrNilMatrix)
	}
	rows, cols := x.Dims()
	if rows < 1 || cols < 1 {
		return nil, lincombErrorf(opDecompose, ErrEmptyMatrix)
	}

	// Stage 1: copy into column-major working storage.
	d := &Decomposition{
		rows:  rows,
		cols:  cols,
		kmax:  min(rows, cols),
		fac:   make([]float64, rows*cols),
		pivot: make([]int, cols),
	}
	for j := 0; j < cols; j++ {
		off := j * rows
		for i := 0; i < rows; i++ {
			d.fac[off+i] = x.At(i, j)
		}
		d.pivot[j] = j
	}

	// Stage 2: pivoted Householder sweep.
	v := make([]float64, rows)
	for k := 0; k < d.kmax; k++ {
		sel, selNorm2 := k, d.residualNorm2(k, k)
		for j := k + 1; j < cols; j++ {
			if n2 := d.residualNorm2(j, k); n2 > selNorm2 {
				sel, selNorm2 = j, n2
			}
		}
		if selNorm2 == 0 {
			// The remaining block is identically zero; R below row k is
			// already stored as zeros and the diagonal cutoff lands here.
			break
		}
		if sel != k {
			d.swapColumns(sel, k)
		}

		// Householder reflector for column k, rows k..rows-1. The sign of
		// alpha opposes A[k,k] so the pivot element never cancels.
		off := k * rows
		norm := math.Sqrt(selNorm2)
		akk := d.fac[off+k]
		alpha := -math.Copysign(norm, akk)
		v[k] = akk - alpha
		beta := v[k] * v[k]
		for i := k + 1; i < rows; i++ {
			v[i] = d.fac[off+i]
			beta += v[i] * v[i]
		}
		if beta == 0 {
			continue
		}
		tau := 2 / beta

		// Stage 3: apply (I - tau·v·vᵀ) to the trailing columns, then
		// write column k in closed form: alpha on the diagonal, exact
		// zeros below it.
		for j := k + 1; j < cols; j++ {
			joff := j * rows
			s := 0.0
			for i := k; i < rows; i++ {
				s += v[i] * d.fac[joff+i]
			}
			s *= tau
			for i := k; i < rows; i++ {
				d.fac[joff+i] -= s * v[i]
			}
		}
		d.fac[off+k] = alpha
		for i := k + 1; i < rows; i++ {
			d.fac[off+i] = 0
		}
	}

	// Stage 4: numerical rank from consecutive diagonal magnitudes.
	head := math.Abs(d.fac[0])
	limit := RankTolerance * head
	for j := 0; j < d.kmax; j++ {
		if math.Abs(d.fac[j*rows+j]) <= limit {
			break
		}
		d.rank++
	}
	return d, nil
}

// residualNorm2 returns the squared norm of column j restricted to rows
// k..rows-1, the part not yet consumed by earlier reflectors.
func (d *Decomposition) residualNorm2(j, k int) float64 {
	off := j * d.rows
	s := 0.0
	for i := k; i < d.rows; i++ {
		s += d.fac[off+i] * d.fac[off+i]
	}
	return s
}

// swapColumns exchanges full columns a and b together with their pivot
// entries.
func (d *Decomposition) swapColumns(a, b int) {
	ao, bo := a*d.rows, b*d.rows
	for i := 0; i < d.rows; i++ {
		d.fac[ao+i], d.fac[bo+i] = d.fac[bo+i], d.fac[ao+i]
	}
	d.pivot[a], d.pivot[b] = d.pivot[b], d.pivot[a]
}

// Rows returns the row count of the factorized matrix.
func (d *Decomposition) Rows() int { return d.rows }

// Cols returns the column count of the factorized matrix.
func (d *Decomposition) Cols() int { return d.cols }

// Rank returns the numerical rank: the length of the leading run of
// diagonal entries of R exceeding RankTolerance·|R[0,0]|.
func (d *Decomposition) Rank() int { return d.rank }

// Pivot returns a copy of the column permutation. Entry i names the
// original column standing at position i of R; positions below Rank()
// are the independent columns, the rest are dependent.
func (d *Decomposition) Pivot() []int {
	out := make([]int, len(d.pivot))
	copy(out, d.pivot)
	return out
}

// R materializes the triangular factor as a dense min(rows,cols)×cols
// matrix. Entries below the diagonal are zero.
func (d *Decomposition) R() *mat.Dense {
	out := mat.NewDense(d.kmax, d.cols, nil)
	for i := 0; i < d.kmax; i++ {
		for j := i; j < d.cols; j++ {
			out.Set(i, j, d.fac[j*d.rows+i])
		}
	}
	return out
}
