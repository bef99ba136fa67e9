// SPDX-License-Identifier: MIT

package lincomb

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/winnowdata/winnow/frame"
)

// Dependency records one dependent column together with the columns that
// reconstruct it. Contributors[0] is always the dependent column itself;
// the remainder are the independent columns whose least-squares
// coefficients stay above CoefficientTolerance, in pivot order.
type Dependency struct {
	Column       int
	Contributors []int
}

// negligible reports whether a reconstruction coefficient sits at or
// below the noise floor.
func negligible(v float64) bool {
	return math.Abs(v) <= CoefficientTolerance
}

// Dependencies enumerates the dependent columns of the factorization.
//
// Writing R = [R1 | R2] with R1 the leading rank×rank block, each
// dependent column satisfies R1·B = R2 for a coefficient matrix B; the
// nonzero rows of a column of B name the contributors. A full-rank or
// rank-zero factorization has nothing to report and returns nil. If the
// triangular system cannot be solved at all the method also returns nil,
// leaving the caller to stop gracefully; an ill-conditioned but usable
// solution is kept.
func (d *Decomposition) Dependencies() []Dependency {
	if d.rank == 0 || d.rank == d.cols {
		return nil
	}
	r := d.R()
	r1 := r.Slice(0, d.rank, 0, d.rank)
	r2 := r.Slice(0, d.rank, d.rank, d.cols)

	var qr mat.QR
	qr.Factorize(r1)
	var coef mat.Dense
	if err := qr.SolveTo(&coef, false, r2); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil
		}
	}

	ndep := d.cols - d.rank
	deps := make([]Dependency, 0, ndep)
	for j := 0; j < ndep; j++ {
		contrib := make([]int, 1, d.rank+1)
		contrib[0] = d.pivot[d.rank+j]
		for i := 0; i < d.rank; i++ {
			if !negligible(coef.At(i, j)) {
				contrib = append(contrib, d.pivot[i])
			}
		}
		deps = append(deps, Dependency{Column: d.pivot[d.rank+j], Contributors: contrib})
	}
	return deps
}

// Resolve iteratively removes linearly dependent columns from f until the
// survivors are full column rank. Each pass factorizes the currently
// alive columns, drops the lead column of every reported dependency, and
// repeats; the loop is bounded by the column count, so it always
// terminates. Passes run on a shrinking alive set while f itself is never
// mutated.
//
// It returns the reduced frame (f itself when nothing was dropped) and
// the dropped column names in removal order. Non-finite values reject
// the whole input up front.
func Resolve(f *frame.Frame) (*frame.Frame, []string, error) {
	if f == nil {
		return nil, nil, lincombErrorf(opResolve, ErrNilMatrix)
	}
	if err := f.CheckFinite(); err != nil {
		return nil, nil, lincombErrorf(opResolve, err)
	}

	names := f.Names()
	alive := make([]bool, len(names))
	for i := range alive {
		alive[i] = true
	}
	aliveCount := len(names)

	index := make(map[string]int, len(names))
	for i, nm := range names {
		index[nm] = i
	}

	var drops []string
	for pass := 0; pass < len(names) && aliveCount >= 2; pass++ {
		live := make([]string, 0, aliveCount)
		for i, nm := range names {
			if alive[i] {
				live = append(live, nm)
			}
		}
		sub, err := f.Select(live...)
		if err != nil {
			return nil, nil, lincombErrorf(opResolve, err)
		}
		d, err := Decompose(sub.Mat())
		if err != nil {
			return nil, nil, lincombErrorf(opResolve, err)
		}
		deps := d.Dependencies()
		if len(deps) == 0 {
			break
		}
		for _, dep := range deps {
			nm := live[dep.Contributors[0]]
			drops = append(drops, nm)
			alive[index[nm]] = false
			aliveCount--
		}
	}

	if len(drops) == 0 {
		return f, nil, nil
	}
	out, err := f.Drop(drops...)
	if err != nil {
		return nil, nil, lincombErrorf(opResolve, err)
	}
	return out, drops, nil
}
