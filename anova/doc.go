// Package anova scores features against a label column with the one-way
// ANOVA F-test and selects the strongest ones.
//
// The building blocks:
//
//   - FOneway: the classic F statistic and p-value for two or more groups
//     of observations.
//   - FClassif: per-feature F scores for a frame, grouping rows by the
//     distinct values of a target column.
//   - Score: fold-averaged FClassif over caller-supplied row folds, with
//     optional per-fold weighting by fold size.
//   - Strategy: a selection function over the averaged scores. KBest
//     keeps the top k features, Percentile keeps the top p percent.
//
// Fold construction is the caller's business; this package only consumes
// row-index sets. Scores may be NaN or infinite for degenerate features
// (constant within every group); selection strategies demote NaN scores
// below every finite score before ranking.
package anova
