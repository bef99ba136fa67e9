// SPDX-License-Identifier: MIT
// Package featsel: the fit/transform contract and the replay machinery
// shared by every transformer.

package featsel

import (
	"fmt"

	"github.com/winnowdata/winnow/frame"
)

// Transformer is the common lifecycle of all column filters. Fit learns
// the drop list from a training frame; Transform replays it on any
// frame by column name; FitTransform chains the two on one frame.
type Transformer interface {
	Fit(f *frame.Frame) error
	Transform(f *frame.Frame) (*frame.Frame, error)
	FitTransform(f *frame.Frame) (*frame.Frame, error)
}

// Lifecycle conformance of every transformer in the package.
var (
	_ Transformer = (*LinearCombinationFilter)(nil)
	_ Transformer = (*MulticollinearityFilter)(nil)
	_ Transformer = (*SparseFeatureDropper)(nil)
	_ Transformer = (*NearZeroVarianceFilter)(nil)
	_ Transformer = (*FeatureDropper)(nil)
	_ Transformer = (*FeatureRetainer)(nil)
	_ Transformer = (*FScoreSelector)(nil)
)

// base carries the fitted drop list and implements the shared replay.
// Concrete transformers embed it and call setFitted at the end of a
// successful Fit, so a failed refit leaves the previous state intact.
type base struct {
	fitted bool
	drops  []string
}

// Drops returns the columns Fit marked for removal, in the order they
// were marked. Empty until fitted.
func (b *base) Drops() []string {
	return append([]string(nil), b.drops...)
}

// setFitted installs the drop list and flips the fitted flag.
func (b *base) setFitted(drops []string) {
	b.drops = drops
	b.fitted = true
}

// transform replays the fitted drops on f. Drop names f does not carry
// are skipped, so a transformer fitted on a wide frame still applies to
// a narrower one. With nothing to drop the input frame itself is
// returned.
func (b *base) transform(op string, f *frame.Frame) (*frame.Frame, error) {
	if !b.fitted {
		return nil, featselErrorf(op, ErrNotFitted)
	}
	if f == nil {
		return nil, featselErrorf(op, ErrNilFrame)
	}
	present := make([]string, 0, len(b.drops))
	for _, nm := range b.drops {
		if f.Has(nm) {
			present = append(present, nm)
		}
	}
	if len(present) == 0 {
		return f, nil
	}
	out, err := f.Drop(present...)
	if err != nil {
		return nil, featselErrorf(op, err)
	}

	return out, nil
}

// scopeOf resolves the columns a transformer examines: the explicit
// scope when one was configured, every column of f otherwise. Explicit
// names must exist in f.
func scopeOf(f *frame.Frame, cols []string) ([]string, error) {
	if cols == nil {
		return f.Names(), nil
	}
	for _, nm := range cols {
		if !f.Has(nm) {
			return nil, fmt.Errorf("column %q: %w", nm, frame.ErrUnknownColumn)
		}
	}

	return append([]string(nil), cols...), nil
}
