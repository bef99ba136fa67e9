// Package lincomb removes columns that are exact linear combinations of
// other columns, using a column-pivoted QR decomposition as the
// rank-revealing engine.
//
// The package provides:
//
//   - Decompose: Businger–Golub column-pivoted Householder QR of any
//     numeric matrix, exposing the triangular factor R, the numerical
//     rank, and the pivot permutation separating independent from
//     dependent columns.
//   - Dependencies: for each dependent column, the set of independent
//     columns that reconstruct it (ordinary least squares through the
//     triangular factor, with a documented coefficient noise floor).
//   - Resolve: the fixed-point loop — decompose, mark one column per
//     detected dependency, remove, repeat — until the surviving columns
//     have full column rank.
//
// Determinism: pivoting breaks residual-norm ties toward the smaller
// column index, and every loop runs in a fixed order, so identical input
// always yields the identical drop list.
//
// See the examples in this package and featsel for usage patterns.
package lincomb
