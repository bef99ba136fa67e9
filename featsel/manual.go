package featsel

import (
	"github.com/winnowdata/winnow/frame"
)

// FeatureDropper removes a fixed set of columns by name. Names absent
// from a frame are tolerated, at Fit and at Transform alike, which
// makes it a convenient head or tail for pipelines over frames of
// varying width.
type FeatureDropper struct {
	base
	names []string
}

// NewFeatureDropper builds a dropper for the given column names. With
// no names it drops nothing.
func NewFeatureDropper(names ...string) *FeatureDropper {
	return &FeatureDropper{names: append([]string(nil), names...)}
}

// Fit records the configured names as the drop list.
func (t *FeatureDropper) Fit(f *frame.Frame) error {
	if f == nil {
		return featselErrorf(opDropFit, ErrNilFrame)
	}
	t.setFitted(append([]string(nil), t.names...))

	return nil
}

// Transform removes the fitted drops from f.
func (t *FeatureDropper) Transform(f *frame.Frame) (*frame.Frame, error) {
	return t.transform(opDropTrans, f)
}

// FitTransform fits on f and immediately transforms it.
func (t *FeatureDropper) FitTransform(f *frame.Frame) (*frame.Frame, error) {
	if err := t.Fit(f); err != nil {
		return nil, err
	}

	return t.Transform(f)
}

// FeatureRetainer keeps a fixed set of columns and drops the rest.
// Survivors stay in frame order; retained names the fitted frame does
// not carry are ignored. Retaining none of the frame's columns leaves
// nothing, so Transform then fails with the frame's empty-frame error.
type FeatureRetainer struct {
	base
	names []string
}

// NewFeatureRetainer builds a retainer for the given column names.
// With no names it keeps everything.
func NewFeatureRetainer(names ...string) *FeatureRetainer {
	return &FeatureRetainer{names: append([]string(nil), names...)}
}

// Fit records every column of f outside the retained set as a drop.
func (t *FeatureRetainer) Fit(f *frame.Frame) error {
	if f == nil {
		return featselErrorf(opKeepFit, ErrNilFrame)
	}
	if len(t.names) == 0 {
		t.setFitted(nil)

		return nil
	}
	keep := make(map[string]struct{}, len(t.names))
	for _, nm := range t.names {
		keep[nm] = struct{}{}
	}
	drops := make([]string, 0)
	for _, nm := range f.Names() {
		if _, ok := keep[nm]; !ok {
			drops = append(drops, nm)
		}
	}
	t.setFitted(drops)

	return nil
}

// Transform removes the fitted drops from f.
func (t *FeatureRetainer) Transform(f *frame.Frame) (*frame.Frame, error) {
	return t.transform(opKeepTrans, f)
}

// FitTransform fits on f and immediately transforms it.
func (t *FeatureRetainer) FitTransform(f *frame.Frame) (*frame.Frame, error) {
	if err := t.Fit(f); err != nil {
		return nil, err
	}

	return t.Transform(f)
}
