// Package winnow is a toolbox of feature-selection transformers for tabular
// numeric data — it finds the columns worth keeping and tells you exactly
// why the rest had to go.
//
// 🚀 What is winnow?
//
//	A focused, deterministic library that brings together:
//		• Frames: named-column numeric tables with strict finite validation
//		• Linear-dependency resolution: column-pivoted QR rank analysis that
//		  removes exact linear combinations one column at a time
//		• Collinearity resolution: iterative pairwise-correlation pruning
//		  with mean-absolute-correlation tie-breaking
//		• Univariate filters: one-way ANOVA F scores with KBest and
//		  Percentile selection strategies
//		• Housekeeping filters: sparsity, near-zero variance, manual
//		  drop/retain lists
//
// ✨ Why choose winnow?
//
//   - Deterministic – fixed iteration orders, documented tie-breaks,
//     reproducible drop lists
//   - Transparent – every removal carries its trigger value and the metric
//     that decided it
//   - Composable – every filter is a Fit/Transform/FitTransform transformer
//     replaying its fitted drops on new data
//
// Under the hood, everything is organized into small subpackages:
//
//	frame/     — Frame and CorrMatrix types, finite validation, correlation
//	lincomb/   — pivoted QR decomposition + linear-combination resolver
//	collinear/ — pairwise-collinearity resolver
//	anova/     — F scores, p-values, fold averaging, selection strategies
//	featsel/   — the transformer layer tying it all together
//
// Quick sketch:
//
//	    a  b  c          a  b
//	    ─  ─  ─    ⇒     ─  ─      (c = 2a + 3b was dropped)
//	    .  .  .          .  .
//
//	go get github.com/winnowdata/winnow
package winnow
