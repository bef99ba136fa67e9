// SPDX-License-Identifier: MIT

package collinear

import (
	"fmt"
	"math"

	"github.com/winnowdata/winnow/frame"
)

const opFilter = "Filter"

// Detail records one removal decision: the dropped column, the surviving
// counterpart it collided with, the absolute correlation that triggered
// the collision, and the mean absolute correlation used to settle it.
type Detail struct {
	Dropped string
	Against string
	AbsCorr float64
	MAC     float64
}

// String renders the record in a fixed five-decimal format.
func (d Detail) String() string {
	return fmt.Sprintf("Dropped: %s, Against: %s, abs_corr: %.5f, MAC: %.5f",
		d.Dropped, d.Against, d.AbsCorr, d.MAC)
}

// Filter removes columns from the correlation matrix c until no surviving
// pair's correlation reaches threshold, and reports every removal in
// order. The matrix is expected to hold absolute correlations, typically
// CorrMatrix.Abs(); it is read, never modified — eliminated columns are
// tracked in a local alive set.
//
// Scan rules, applied to surviving columns left to right:
//
//   - A column's strongest correlation is taken over the other surviving
//     columns, ignoring NaN entries; among equal maxima the rightmost
//     column wins.
//   - No action when the maximum is NaN, sits below threshold (equality
//     triggers), or only one other column survives.
//   - Otherwise the column's MAC and its partner's MAC decide: an
//     undefined (all-NaN) MAC loses immediately; ties drop the
//     first-encountered column; the partner goes only when its MAC is
//     strictly greater.
//   - Each removal restarts the scan from the first surviving column.
//
// Finished means one full scan over the survivors with no action.
// Complexity: O(p) removal rounds × O(p²) scan cost worst case.
func Filter(c *frame.CorrMatrix, threshold float64) ([]string, []float64, []Detail, error) {
	if c == nil {
		return nil, nil, nil, collinearErrorf(opFilter, ErrNilCorrelation)
	}
	n := c.Len()
	if n < 2 {
		return nil, nil, nil, collinearErrorf(opFilter, ErrTooFewColumns)
	}
	names := c.Names()

	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}
	live := make([]int, 0, n)

	var (
		drops   []string
		macs    []float64
		details []Detail
	)
	for finished := false; !finished; {
		live = live[:0]
		for i := 0; i < n; i++ {
			if alive[i] {
				live = append(live, i)
			}
		}

		acted := false
		for _, i := range live {
			maxIdx := -1
			maxVal := math.NaN()
			for _, j := range live {
				if j == i {
					continue
				}
				if v := c.At(i, j); !math.IsNaN(v) && (maxIdx < 0 || v >= maxVal) {
					maxIdx, maxVal = j, v
				}
			}
			if maxIdx < 0 || maxVal < threshold || len(live) == 2 {
				continue
			}

			other := maxIdx
			mn1 := nanMean(c, i, live)
			mn2 := nanMean(c, other, live)

			drop, keep := i, other
			switch {
			case math.IsNaN(mn1):
				drop, keep = other, i
			case math.IsNaN(mn2):
				// drop stays on the scanned column
			case mn2 > mn1:
				drop, keep = other, i
			}

			mac := math.Max(mn1, mn2)
			drops = append(drops, names[drop])
			macs = append(macs, mac)
			details = append(details, Detail{
				Dropped: names[drop],
				Against: names[keep],
				AbsCorr: maxVal,
				MAC:     mac,
			})
			alive[drop] = false
			acted = true

			break
		}
		finished = !acted
	}
	return drops, macs, details, nil
}

// nanMean averages column col's correlations over the surviving columns,
// self excluded and NaN entries ignored. All-NaN rows yield NaN.
func nanMean(c *frame.CorrMatrix, col int, live []int) float64 {
	sum, cnt := 0.0, 0
	for _, j := range live {
		if j == col {
			continue
		}
		if v := c.At(col, j); !math.IsNaN(v) {
			sum += v
			cnt++
		}
	}
	if cnt == 0 {
		return math.NaN()
	}
	return sum / float64(cnt)
}
