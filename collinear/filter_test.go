package collinear_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/winnowdata/winnow/collinear"
	"github.com/winnowdata/winnow/frame"
)

// corrFixture builds a CorrMatrix from a row-major upper-triangle listing;
// vals[i][j] is mirrored and the diagonal forced to 1.
func corrFixture(t *testing.T, names []string, vals [][]float64) *frame.CorrMatrix {
	t.Helper()
	n := len(names)
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		sym.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			sym.SetSym(i, j, vals[i][j])
		}
	}
	c, err := frame.NewCorrMatrix(names, sym)
	require.NoError(t, err)
	return c
}

// TestFilter_Validation covers the nil and too-small guards.
func TestFilter_Validation(t *testing.T) {
	_, _, _, err := collinear.Filter(nil, 0.85)
	require.ErrorIs(t, err, collinear.ErrNilCorrelation)

	single, err := frame.NewCorrMatrix([]string{"only"}, mat.NewSymDense(1, []float64{1}))
	require.NoError(t, err)
	_, _, _, err = collinear.Filter(single, 0.85)
	require.ErrorIs(t, err, collinear.ErrTooFewColumns)
}

// TestFilter_BelowThresholdUntouched: nothing reaches the threshold, so
// nothing is dropped.
func TestFilter_BelowThresholdUntouched(t *testing.T) {
	c := corrFixture(t, []string{"a", "b", "c", "d"}, [][]float64{
		{0, 0.3, 0.1, 0.4},
		{0, 0, 0.2, 0.5},
		{0, 0, 0, 0.6},
		{0, 0, 0, 0},
	})
	drops, macs, details, err := collinear.Filter(c, 0.85)
	require.NoError(t, err)
	assert.Empty(t, drops)
	assert.Empty(t, macs)
	assert.Empty(t, details)
}

// TestFilter_ThresholdEqualityTriggers pins the boundary: a pair sitting
// exactly at the threshold is a collision, not a pass.
func TestFilter_ThresholdEqualityTriggers(t *testing.T) {
	c := corrFixture(t, []string{"x", "y", "z"}, [][]float64{
		{0, 0.85, 0.10},
		{0, 0, 0.20},
		{0, 0, 0},
	})
	drops, _, _, err := collinear.Filter(c, 0.85)
	require.NoError(t, err)
	require.Len(t, drops, 1, "equality to the threshold must trigger a drop")
}

// TestFilter_MACTieDropsFirstEncountered: equal MACs must remove the
// column encountered first in scan order.
func TestFilter_MACTieDropsFirstEncountered(t *testing.T) {
	// x-y collide at 0.9; both see 0.2 elsewhere, so their MACs tie.
	c := corrFixture(t, []string{"x", "y", "z"}, [][]float64{
		{0, 0.9, 0.2},
		{0, 0, 0.2},
		{0, 0, 0},
	})
	drops, macs, details, err := collinear.Filter(c, 0.85)
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, drops, "tie must fall on the first-encountered column")
	require.Len(t, macs, 1)
	assert.InDelta(t, 0.55, macs[0], 1e-12)
	require.Len(t, details, 1)
	assert.Equal(t, "x", details[0].Dropped)
	assert.Equal(t, "y", details[0].Against)
	assert.InDelta(t, 0.9, details[0].AbsCorr, 1e-12)
}

// TestFilter_HigherMACLoses runs the x-y 0.95, y-z 0.90, x-z 0.30 layout:
// y carries the larger mean correlation and must be the one removed, and
// no surviving pair may reach the threshold afterwards.
func TestFilter_HigherMACLoses(t *testing.T) {
	names := []string{"x", "y", "z"}
	c := corrFixture(t, names, [][]float64{
		{0, 0.95, 0.30},
		{0, 0, 0.90},
		{0, 0, 0},
	})
	drops, macs, details, err := collinear.Filter(c, 0.85)
	require.NoError(t, err)
	require.Equal(t, []string{"y"}, drops)
	require.Len(t, macs, 1)
	assert.InDelta(t, 0.925, macs[0], 1e-12, "MAC reported is the larger of the pair")
	require.Len(t, details, 1)
	assert.Equal(t, "y", details[0].Dropped)
	assert.Equal(t, "x", details[0].Against)
	assert.InDelta(t, 0.95, details[0].AbsCorr, 1e-12)

	// survivors x, z stay below the threshold
	assert.Less(t, c.At(0, 2), 0.85)
}

// TestFilter_CascadeOrder drives two successive removals and checks the
// parallel outputs keep removal order.
func TestFilter_CascadeOrder(t *testing.T) {
	c := corrFixture(t, []string{"a", "b", "c", "d"}, [][]float64{
		{0, 0.90, 0.88, 0.10},
		{0, 0, 0.87, 0.10},
		{0, 0, 0, 0.10},
		{0, 0, 0, 0},
	})
	drops, macs, details, err := collinear.Filter(c, 0.85)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, drops)

	require.Len(t, macs, 2)
	assert.InDelta(t, (0.90+0.88+0.10)/3, macs[0], 1e-12)
	assert.InDelta(t, (0.87+0.10)/2, macs[1], 1e-12)

	require.Len(t, details, 2)
	assert.Equal(t, "b", details[0].Against)
	assert.Equal(t, "c", details[1].Against)
}

// TestFilter_TwoColumnsNeverDrop pins the pair quirk: with only one other
// column in play no action is taken, however strong the correlation.
func TestFilter_TwoColumnsNeverDrop(t *testing.T) {
	c := corrFixture(t, []string{"p", "q"}, [][]float64{
		{0, 0.99},
		{0, 0},
	})
	drops, _, _, err := collinear.Filter(c, 0.85)
	require.NoError(t, err)
	assert.Empty(t, drops, "a lone pair is never resolved")
}

// TestFilter_NaNColumnIgnored: an all-NaN column (zero variance upstream)
// can never collide, and NaN entries stay out of every mean.
func TestFilter_NaNColumnIgnored(t *testing.T) {
	nan := math.NaN()
	c := corrFixture(t, []string{"x", "y", "dead"}, [][]float64{
		{0, 0.9, nan},
		{0, 0, nan},
		{0, 0, 0},
	})
	drops, macs, _, err := collinear.Filter(c, 0.85)
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, drops, "tie between x and y falls on x")
	require.Len(t, macs, 1)
	assert.InDelta(t, 0.9, macs[0], 1e-12, "NaN entries are excluded from the mean")
}

// TestFilter_InputNotMutated: the matrix handed in must read back intact
// after filtering.
func TestFilter_InputNotMutated(t *testing.T) {
	c := corrFixture(t, []string{"x", "y", "z"}, [][]float64{
		{0, 0.95, 0.30},
		{0, 0, 0.90},
		{0, 0, 0},
	})
	_, _, _, err := collinear.Filter(c, 0.85)
	require.NoError(t, err)
	assert.Equal(t, 0.95, c.At(0, 1))
	assert.Equal(t, 0.90, c.At(1, 2))
	assert.Equal(t, 0.30, c.At(0, 2))
}

// TestDetail_String pins the human-readable record format.
func TestDetail_String(t *testing.T) {
	d := collinear.Detail{Dropped: "a", Against: "b", AbsCorr: 0.95, MAC: 0.91}
	assert.Equal(t, "Dropped: a, Against: b, abs_corr: 0.95000, MAC: 0.91000", d.String())
}
