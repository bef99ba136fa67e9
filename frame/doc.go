// Package frame offers the named-column numeric table the selection
// algorithms operate on.
//
// The frame package provides:
//
//   - Frame, a 2-D float64 table with ordered, named columns backed by a
//     gonum mat.Dense, plus column selection, dropping and cloning.
//   - Strict finite validation (CheckFinite) surfacing ErrNonFinite before
//     any algorithmic work begins.
//   - Pairwise correlation matrices (Pearson, Kendall, Spearman) as
//     CorrMatrix values, with absolute-value views for collinearity
//     analysis.
//
// Frames are best for in-memory, fully materialized numeric data where
// column identity matters more than row identity; rows are unnamed.
//
// See the examples in this package and featsel for usage patterns.
package frame
