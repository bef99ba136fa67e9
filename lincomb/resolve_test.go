package lincomb_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winnowdata/winnow/frame"
	"github.com/winnowdata/winnow/lincomb"
)

// TestResolve_FullRankUnchanged verifies the fast path: a frame whose
// columns are already independent comes back untouched, same object.
func TestResolve_FullRankUnchanged(t *testing.T) {
	f, err := frame.FromColumns(
		[]string{"a", "b", "c"},
		[][]float64{
			{1, 0, 0, 1},
			{0, 1, 0, 1},
			{0, 0, 1, 1},
		},
	)
	require.NoError(t, err)

	out, drops, err := lincomb.Resolve(f)
	require.NoError(t, err)
	assert.Same(t, f, out, "a full-rank frame is returned as-is")
	assert.Empty(t, drops, "nothing to drop")
}

// TestResolve_DropsExactCombination builds c = 2a + 3b and expects
// exactly one column to go, leaving an independent pair.
func TestResolve_DropsExactCombination(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6}
	b := []float64{3, 1, 4, 1, 5, 9}
	c := make([]float64, len(a))
	for i := range a {
		c[i] = 2*a[i] + 3*b[i]
	}
	f, err := frame.FromColumns([]string{"a", "b", "c"}, [][]float64{a, b, c})
	require.NoError(t, err)

	out, drops, err := lincomb.Resolve(f)
	require.NoError(t, err)
	require.Len(t, drops, 1, "one exact combination means one drop")
	assert.Equal(t, 2, out.Cols())

	d, err := lincomb.Decompose(out.Mat())
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rank(), "survivors must be independent")
}

// TestResolve_DuplicateColumn: an exact copy is the simplest dependency.
func TestResolve_DuplicateColumn(t *testing.T) {
	x := []float64{5, 3, 8, 1}
	f, err := frame.FromColumns([]string{"x", "copy"}, [][]float64{x, x})
	require.NoError(t, err)

	out, drops, err := lincomb.Resolve(f)
	require.NoError(t, err)
	require.Len(t, drops, 1)
	assert.Equal(t, 1, out.Cols())
}

// TestResolve_CascadingDependencies stacks three combinations on a rank-2
// basis and checks they are all eliminated, in at most as many passes as
// there are columns.
func TestResolve_CascadingDependencies(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6, 7}
	b := []float64{2, 9, 4, 4, 3, 5, 1}
	cols := [][]float64{a, b, nil, nil, nil}
	names := []string{"a", "b", "sum", "diff", "double"}
	for i, mk := range []func(int) float64{
		func(i int) float64 { return a[i] + b[i] },
		func(i int) float64 { return a[i] - b[i] },
		func(i int) float64 { return 2 * a[i] },
	} {
		col := make([]float64, len(a))
		for r := range col {
			col[r] = mk(r)
		}
		cols[2+i] = col
	}
	f, err := frame.FromColumns(names, cols)
	require.NoError(t, err)

	out, drops, err := lincomb.Resolve(f)
	require.NoError(t, err)
	assert.Len(t, drops, 3, "rank is 2, so three of five columns must go")
	assert.Equal(t, 2, out.Cols())

	d, err := lincomb.Decompose(out.Mat())
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rank())
}

// TestResolve_SurvivorsKeepFrameOrder confirms dropped names are removed
// in place while survivors preserve their original relative order.
func TestResolve_SurvivorsKeepFrameOrder(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{4, 1, 1, 2}
	twiceA := []float64{2, 4, 6, 8}
	f, err := frame.FromColumns([]string{"a", "twice", "b"}, [][]float64{a, twiceA, b})
	require.NoError(t, err)

	out, drops, err := lincomb.Resolve(f)
	require.NoError(t, err)
	require.Len(t, drops, 1)

	survivors := out.Names()
	require.Len(t, survivors, 2)
	prev := -1
	orig := f.Names()
	for _, nm := range survivors {
		idx := -1
		for i, o := range orig {
			if o == nm {
				idx = i
			}
		}
		assert.Greater(t, idx, prev, "survivor order must follow the input frame")
		prev = idx
	}
}

// TestResolve_AllZeroColumns: rank 0 makes a regression impossible, so
// the loop halts gracefully with nothing dropped.
func TestResolve_AllZeroColumns(t *testing.T) {
	f, err := frame.FromColumns(
		[]string{"z1", "z2"},
		[][]float64{{0, 0, 0}, {0, 0, 0}},
	)
	require.NoError(t, err)

	out, drops, err := lincomb.Resolve(f)
	require.NoError(t, err)
	assert.Same(t, f, out)
	assert.Empty(t, drops, "no independent set means no drops")
}

// TestResolve_SingleColumn is the trivial boundary: one column is always
// independent.
func TestResolve_SingleColumn(t *testing.T) {
	f, err := frame.FromColumns([]string{"only"}, [][]float64{{1, 2, 3}})
	require.NoError(t, err)

	out, drops, err := lincomb.Resolve(f)
	require.NoError(t, err)
	assert.Same(t, f, out)
	assert.Empty(t, drops)
}

// TestResolve_RejectsNonFinite: any NaN or infinity poisons the whole
// computation and must be rejected up front.
func TestResolve_RejectsNonFinite(t *testing.T) {
	f, err := frame.FromColumns(
		[]string{"ok", "bad"},
		[][]float64{{1, 2, 3}, {4, math.NaN(), 6}},
	)
	require.NoError(t, err)

	_, _, err = lincomb.Resolve(f)
	require.ErrorIs(t, err, frame.ErrNonFinite)
	assert.Contains(t, err.Error(), "bad", "the offending column is named")
}

// TestResolve_NilFrame guards the API entry point.
func TestResolve_NilFrame(t *testing.T) {
	_, _, err := lincomb.Resolve(nil)
	require.ErrorIs(t, err, lincomb.ErrNilMatrix)
}

// TestResolve_Idempotent: resolving an already resolved frame changes
// nothing, column for column.
func TestResolve_Idempotent(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{2, 2, 4, 4, 6}
	c := make([]float64, len(a))
	for i := range a {
		c[i] = a[i] + b[i]
	}
	f, err := frame.FromColumns([]string{"a", "b", "c"}, [][]float64{a, b, c})
	require.NoError(t, err)

	once, drops, err := lincomb.Resolve(f)
	require.NoError(t, err)
	require.NotEmpty(t, drops)

	twice, again, err := lincomb.Resolve(once)
	require.NoError(t, err)
	assert.Empty(t, again, "second application must find nothing")
	assert.Equal(t, once.Names(), twice.Names())
}
