package frame_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/winnowdata/winnow/frame"
)

// TestCorrelation_PearsonPerfect verifies exact ±1 for exact linear columns
// and that Abs folds the sign away.
func TestCorrelation_PearsonPerfect(t *testing.T) {
	f, err := frame.FromColumns(
		[]string{"x", "twice", "neg"},
		[][]float64{{1, 2, 3, 4}, {2, 4, 6, 8}, {-1, -2, -3, -4}},
	)
	require.NoError(t, err)

	c, err := f.Correlation(frame.Pearson)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len(), "3×3 correlation expected")
	assert.InDelta(t, 1.0, c.At(0, 1), 1e-12, "x vs 2x correlates to +1")
	assert.InDelta(t, -1.0, c.At(0, 2), 1e-12, "x vs -x correlates to -1")
	assert.InDelta(t, 1.0, c.At(0, 0), 1e-12, "diagonal is 1")

	a := c.Abs()
	assert.InDelta(t, 1.0, a.At(0, 2), 1e-12, "Abs folds -1 to 1")
	assert.InDelta(t, -1.0, c.At(0, 2), 1e-12, "Abs must not mutate the source")
}

// TestCorrelation_ZeroVarianceIsNaN verifies constant columns propagate NaN
// rather than erroring.
func TestCorrelation_ZeroVarianceIsNaN(t *testing.T) {
	f, err := frame.FromColumns(
		[]string{"x", "flat"},
		[][]float64{{1, 2, 3}, {5, 5, 5}},
	)
	require.NoError(t, err)

	c, err := f.Correlation(frame.Pearson)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(c.At(0, 1)), "correlation against a constant column is NaN")
}

// TestCorrelation_SpearmanMonotone verifies rank correlation saturates at 1
// for a monotone but nonlinear relation while Pearson stays below 1.
func TestCorrelation_SpearmanMonotone(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	cubes := make([]float64, len(xs))
	for i, v := range xs {
		cubes[i] = v * v * v
	}
	f, err := frame.FromColumns([]string{"x", "x3"}, [][]float64{xs, cubes})
	require.NoError(t, err)

	sp, err := f.Correlation(frame.Spearman)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sp.At(0, 1), 1e-12, "monotone relation ranks to +1")

	pe, err := f.Correlation(frame.Pearson)
	require.NoError(t, err)
	assert.Less(t, pe.At(0, 1), 1.0, "Pearson of a curved relation stays below 1")
}

// TestCorrelation_KendallKnown pins tau on a tiny fixture with one discordant
// pair: tau = (2-1)/3.
func TestCorrelation_KendallKnown(t *testing.T) {
	f, err := frame.FromColumns(
		[]string{"x", "y"},
		[][]float64{{1, 2, 3}, {1, 3, 2}},
	)
	require.NoError(t, err)

	c, err := f.Correlation(frame.Kendall)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, c.At(0, 1), 1e-12, "2 concordant vs 1 discordant gives 1/3")
	assert.Equal(t, 1.0, c.At(1, 1), "Kendall diagonal is exactly 1")
}

// TestCorrelation_UnknownMethod ensures an out-of-range Method value errors.
func TestCorrelation_UnknownMethod(t *testing.T) {
	f, err := frame.FromColumns([]string{"a", "b"}, [][]float64{{1, 2}, {2, 1}})
	require.NoError(t, err)

	_, err = f.Correlation(frame.Method(97))
	assert.Error(t, err, "unrecognized method must error")
}

// TestNewCorrMatrix_Validation covers wrapper preconditions.
func TestNewCorrMatrix_Validation(t *testing.T) {
	_, err := frame.NewCorrMatrix([]string{"a"}, nil)
	assert.ErrorIs(t, err, frame.ErrNilData, "nil symmetric matrix must error")

	_, err = frame.NewCorrMatrix([]string{"a"}, mat.NewSymDense(2, nil))
	assert.ErrorIs(t, err, frame.ErrDimensionMismatch, "1 name for order-2 matrix must error")

	_, err = frame.NewCorrMatrix([]string{"a", "a"}, mat.NewSymDense(2, nil))
	assert.ErrorIs(t, err, frame.ErrDuplicateColumn, "duplicate axis names must error")
}

// TestCorrMatrix_CloneIndependence verifies deep copies.
func TestCorrMatrix_CloneIndependence(t *testing.T) {
	m := mat.NewSymDense(2, []float64{1, 0.5, 0.5, 1})
	c, err := frame.NewCorrMatrix([]string{"a", "b"}, m)
	require.NoError(t, err)

	cl := c.Clone()
	cl.Sym().SetSym(0, 1, -0.9)
	assert.Equal(t, 0.5, c.At(0, 1), "clone storage must be independent")
	assert.Equal(t, []string{"a", "b"}, cl.Names(), "clone keeps axis names")
}
