// SPDX-License-Identifier: MIT

package anova

import (
	"math"
	"sort"
)

// Strategy reduces parallel score and name slices to the kept names, in
// the order they appear in names. Strategies are plain function values;
// KBest and Percentile build the two standard ones.
type Strategy func(scores []float64, names []string) ([]string, error)

// KBest keeps the k highest-scoring features. Scores are NaN-cleaned,
// stably argsorted ascending and the last k taken, so equal scores favor
// the later column. k of at least the feature count keeps everything;
// k below one is rejected.
func KBest(k int) Strategy {
	return func(scores []float64, names []string) ([]string, error) {
		if k < 1 {
			return nil, anovaErrorf(opKBest, ErrBadK)
		}
		if len(scores) != len(names) {
			return nil, anovaErrorf(opKBest, ErrLengthMismatch)
		}
		if k >= len(names) {
			return append([]string(nil), names...), nil
		}
		cleaned := cleanNaNs(scores)
		order := make([]int, len(cleaned))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return cleaned[order[a]] < cleaned[order[b]]
		})

		mask := make([]bool, len(names))
		for _, idx := range order[len(order)-k:] {
			mask[idx] = true
		}
		return maskedNames(names, mask), nil
	}
}

// Percentile keeps the features scoring in the top p percent: everything
// strictly above the (100−p)-th percentile of the NaN-cleaned scores,
// then boundary ties admitted in column order while the kept count stays
// under floor(len·p/100). p=100 keeps all, p=0 keeps none; anything
// outside [0, 100] is rejected.
func Percentile(p int) Strategy {
	return func(scores []float64, names []string) ([]string, error) {
		if p < 0 || p > 100 {
			return nil, anovaErrorf(opPercentile, ErrBadPercentile)
		}
		if len(scores) != len(names) {
			return nil, anovaErrorf(opPercentile, ErrLengthMismatch)
		}
		if p == 100 {
			return append([]string(nil), names...), nil
		}
		if p == 0 || len(names) == 0 {
			return []string{}, nil
		}

		cleaned := cleanNaNs(scores)
		thresh := percentileOf(cleaned, float64(100-p))

		n := len(cleaned)
		mask := make([]bool, n)
		kept := 0
		for i, v := range cleaned {
			if v > thresh {
				mask[i] = true
				kept++
			}
		}
		maxFeats := n * p / 100
		for i := 0; i < n && kept < maxFeats; i++ {
			if !mask[i] && cleaned[i] == thresh {
				mask[i] = true
				kept++
			}
		}
		return maskedNames(names, mask), nil
	}
}

// cleanNaNs copies scores with every NaN replaced by the lowest finite
// float64, so undefined scores lose every comparison.
func cleanNaNs(scores []float64) []float64 {
	out := append([]float64(nil), scores...)
	for i, v := range out {
		if math.IsNaN(v) {
			out[i] = -math.MaxFloat64
		}
	}
	return out
}

// percentileOf returns the pct-th percentile of values under linear
// interpolation between order statistics: index pct/100·(n−1) into the
// sorted copy, fractional positions interpolated.
func percentileOf(values []float64, pct float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	idx := pct / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (idx-float64(lo))*(sorted[hi]-sorted[lo])
}

// maskedNames collects the names whose mask entry is set, preserving
// order.
func maskedNames(names []string, mask []bool) []string {
	out := make([]string, 0, len(names))
	for i, keep := range mask {
		if keep {
			out = append(out, names[i])
		}
	}
	return out
}
