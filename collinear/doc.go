// Package collinear prunes highly correlated columns from a named
// correlation matrix.
//
// Filter repeatedly locates a column whose strongest absolute correlation
// to another surviving column reaches the threshold, compares the two
// columns' mean absolute correlation (MAC) and removes the worse one,
// then restarts the scan from the first surviving column. It stops once a
// full scan completes without a removal.
//
// The algorithm is eagerly greedy and order dependent: which member of a
// tied or overlapping cluster survives depends on the left-to-right
// column order of the input, and the result is not invariant under column
// permutation. That is a documented property of the method, kept for
// reproducibility against reference outputs.
//
// Every removal is reported three ways in parallel: the dropped name, the
// MAC at decision time, and a Detail record naming the counterpart and
// the triggering correlation.
package collinear
