// Package frame: the Frame type and its structural operations.
// Frame is a rectangular float64 table with ordered, named columns. Rows are
// unnamed. The backing storage is a gonum mat.Dense in row-major order.

package frame

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew         = "New"
	opFromColumns = "FromColumns"
	opColumn      = "Column"
	opSelect      = "Select"
	opDrop        = "Drop"
	opCheckFinite = "CheckFinite"
)

// Frame is an ordered collection of named float64 columns.
// The zero value is not usable; construct via New or FromColumns.
type Frame struct {
	names []string       // column names in insertion order
	index map[string]int // name → position in names
	data  *mat.Dense     // r×c backing storage, column j ↔ names[j]
}

// buildIndex validates names (non-empty, unique) and returns the name→position map.
func buildIndex(names []string) (map[string]int, error) {
	idx := make(map[string]int, len(names))
	for i, nm := range names {
		if nm == "" {
			return nil, ErrEmptyColumnName
		}
		if _, dup := idx[nm]; dup {
			return nil, fmt.Errorf("%q: %w", nm, ErrDuplicateColumn)
		}
		idx[nm] = i
	}

	return idx, nil
}

// New builds a Frame over an existing matrix.
// Implementation:
//   - Stage 1 (Validate): data non-nil, at least 1×1, one name per column,
//     names non-empty and unique.
//   - Stage 2 (Finalize): adopt the matrix and index the names.
//
// The frame takes ownership of data; callers must not mutate it afterwards.
// Complexity: O(c) time, O(c) space for the index.
func New(names []string, data *mat.Dense) (*Frame, error) {
	// Validate data presence before touching dimensions.
	if data == nil {
		return nil, frameErrorf(opNew, ErrNilData)
	}
	r, c := data.Dims()
	if r < 1 || c < 1 {
		return nil, frameErrorf(opNew, ErrEmptyFrame)
	}
	if len(names) != c {
		return nil, frameErrorf(opNew, ErrDimensionMismatch)
	}
	idx, err := buildIndex(names)
	if err != nil {
		return nil, frameErrorf(opNew, err)
	}

	// Adopt storage; copy the name slice so later caller edits cannot alias.
	held := make([]string, len(names))
	copy(held, names)

	return &Frame{names: held, index: idx, data: data}, nil
}

// FromColumns builds a Frame from per-column value slices.
// All columns must share one positive length; names follow the same rules as New.
// Complexity: O(r*c) time and space.
func FromColumns(names []string, cols [][]float64) (*Frame, error) {
	if len(cols) != len(names) {
		return nil, frameErrorf(opFromColumns, ErrDimensionMismatch)
	}
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, frameErrorf(opFromColumns, ErrEmptyFrame)
	}
	rows := len(cols[0])
	for _, col := range cols {
		if len(col) != rows {
			return nil, frameErrorf(opFromColumns, ErrDimensionMismatch)
		}
	}
	idx, err := buildIndex(names)
	if err != nil {
		return nil, frameErrorf(opFromColumns, err)
	}

	// Materialize row-major storage column by column.
	data := mat.NewDense(rows, len(cols), nil)
	for j, col := range cols {
		data.SetCol(j, col)
	}
	held := make([]string, len(names))
	copy(held, names)

	return &Frame{names: held, index: idx, data: data}, nil
}

// Rows returns the number of rows.
func (f *Frame) Rows() int {
	r, _ := f.data.Dims()

	return r
}

// Cols returns the number of columns.
func (f *Frame) Cols() int {
	_, c := f.data.Dims()

	return c
}

// Names returns a copy of the column names in order.
func (f *Frame) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)

	return out
}

// Has reports whether a column with the given name exists.
func (f *Frame) Has(name string) bool {
	_, ok := f.index[name]

	return ok
}

// At returns the value at (row i, column j). Out-of-range indices panic, the
// same as the underlying gonum storage.
func (f *Frame) At(i, j int) float64 {
	return f.data.At(i, j)
}

// Mat exposes the backing matrix for read access by numeric kernels.
// Treat the result as read-only; mutating it corrupts the frame.
func (f *Frame) Mat() *mat.Dense {
	return f.data
}

// Column returns a copy of the named column's values.
// Errors: ErrUnknownColumn. Complexity: O(r).
func (f *Frame) Column(name string) ([]float64, error) {
	j, ok := f.index[name]
	if !ok {
		return nil, frameErrorf(opColumn, fmt.Errorf("%q: %w", name, ErrUnknownColumn))
	}
	out := make([]float64, f.Rows())
	mat.Col(out, j, f.data)

	return out, nil
}

// Select returns a fresh Frame holding the requested columns, in the
// requested order. Nothing is shared with the receiver.
// Errors: ErrUnknownColumn, ErrDuplicateColumn, ErrEmptyFrame (no names given).
// Complexity: O(r*k) for k selected columns.
func (f *Frame) Select(names ...string) (*Frame, error) {
	if len(names) == 0 {
		return nil, frameErrorf(opSelect, ErrEmptyFrame)
	}
	// Verify every requested name and reject duplicates in the selection.
	seen := make(map[string]struct{}, len(names))
	for _, nm := range names {
		if _, ok := f.index[nm]; !ok {
			return nil, frameErrorf(opSelect, fmt.Errorf("%q: %w", nm, ErrUnknownColumn))
		}
		if _, dup := seen[nm]; dup {
			return nil, frameErrorf(opSelect, fmt.Errorf("%q: %w", nm, ErrDuplicateColumn))
		}
		seen[nm] = struct{}{}
	}

	// Copy the chosen columns into new storage in the requested order.
	rows := f.Rows()
	data := mat.NewDense(rows, len(names), nil)
	buf := make([]float64, rows)
	for t, nm := range names {
		mat.Col(buf, f.index[nm], f.data)
		data.SetCol(t, buf)
	}

	out, err := New(names, data)
	if err != nil {
		return nil, frameErrorf(opSelect, err)
	}

	return out, nil
}

// Drop returns a fresh Frame with the given columns removed, survivors
// keeping their original order. Every requested name must exist; dropping
// every column is refused.
// Errors: ErrUnknownColumn, ErrEmptyFrame.
// Complexity: O(r*(c-k)) for k dropped columns.
func (f *Frame) Drop(names ...string) (*Frame, error) {
	doomed := make(map[string]struct{}, len(names))
	for _, nm := range names {
		if _, ok := f.index[nm]; !ok {
			return nil, frameErrorf(opDrop, fmt.Errorf("%q: %w", nm, ErrUnknownColumn))
		}
		doomed[nm] = struct{}{}
	}
	keep := make([]string, 0, len(f.names)-len(doomed))
	for _, nm := range f.names {
		if _, dead := doomed[nm]; !dead {
			keep = append(keep, nm)
		}
	}
	if len(keep) == 0 {
		return nil, frameErrorf(opDrop, ErrEmptyFrame)
	}

	out, err := f.Select(keep...)
	if err != nil {
		return nil, frameErrorf(opDrop, err)
	}

	return out, nil
}

// Clone returns a deep copy of the Frame.
// Complexity: O(r*c) time and memory.
func (f *Frame) Clone() *Frame {
	held := make([]string, len(f.names))
	copy(held, f.names)
	idx := make(map[string]int, len(f.index))
	for nm, j := range f.index {
		idx[nm] = j
	}

	return &Frame{names: held, index: idx, data: mat.DenseCopyOf(f.data)}
}

// CheckFinite verifies every value is finite (no NaN, no ±Inf).
// The first offending cell is reported with its column name and row.
// Errors: ErrNonFinite. Complexity: O(r*c), fixed i→j scan order.
func (f *Frame) CheckFinite() error {
	rows, cols := f.data.Dims()
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v = f.data.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return frameErrorf(opCheckFinite,
					fmt.Errorf("column %q row %d: %w", f.names[j], i, ErrNonFinite))
			}
		}
	}

	return nil
}
