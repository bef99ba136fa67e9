// Package featsel wraps the numeric resolvers and univariate filters in
// a uniform fit/transform interface for feature-selection pipelines.
//
// Every transformer follows the same lifecycle:
//
//   - Fit examines a training frame and records which columns to drop.
//   - Transform replays the recorded drops by name on any frame; columns
//     the new frame no longer has are skipped silently.
//   - FitTransform chains the two.
//
// The transformers:
//
//   - LinearCombinationFilter — removes columns that are exact linear
//     combinations of others (lincomb.Resolve).
//   - MulticollinearityFilter — removes columns whose pairwise absolute
//     correlation reaches a threshold (collinear.Filter).
//   - SparseFeatureDropper — removes columns too dense in NaN.
//   - NearZeroVarianceFilter — removes near-constant columns, by sample
//     variance or by frequency ratio of the two most common values.
//   - FeatureDropper / FeatureRetainer — drop or keep fixed column sets.
//   - FScoreSelector — keeps the columns favored by an ANOVA F-score
//     selection strategy (anova.Score plus anova.KBest or
//     anova.Percentile).
//
// Configuration goes through functional options (WithColumns,
// WithThreshold, ...) validated during Fit; a failed Fit leaves any
// previously fitted state untouched. Instances are not safe for
// concurrent use; give each goroutine its own.
package featsel
