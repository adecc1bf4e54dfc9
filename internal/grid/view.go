// Package grid is the external bootstrap collaborator described by
// hashlife's spec: a rectangular boolean state buffer, a read-only
// sliceable view over it, and a plain-text parser. None of this is part
// of the HashLife core; it exists only to turn a flat pattern into the
// hashlife.GridView the core's FromSquare consumes.
package grid

import (
	"fmt"

	"github.com/agausmann/hashlife"
)

// Buffer owns a flat rectangular boolean grid in row-major order.
type Buffer struct {
	rows, cols int
	state      []bool
}

// NewBuffer wraps state (row-major, length rows*cols) as a Buffer.
// Panics if the length does not match rows*cols: a mismatched buffer is
// a programming bug in the caller, not a recoverable condition.
func NewBuffer(state []bool, rows, cols int) *Buffer {
	if len(state) != rows*cols {
		panic(fmt.Sprintf("grid: buffer length %d does not match %dx%d", len(state), rows, cols))
	}
	return &Buffer{rows: rows, cols: cols, state: state}
}

// FromArray builds a Buffer from a fixed-size 2D boolean array, the Go
// analogue of the original source's StateBufferView::from<[[bool; N]; M]>
// constructor, for callers who hardcode a pattern inline.
func FromArray(rows [][]bool) *Buffer {
	if len(rows) == 0 {
		return NewBuffer(nil, 0, 0)
	}
	cols := len(rows[0])
	state := make([]bool, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols {
			panic("grid: FromArray: ragged rows")
		}
		state = append(state, row...)
	}
	return NewBuffer(state, len(rows), cols)
}

// View returns a View over the whole buffer, as a hashlife.GridView.
func (b *Buffer) View() hashlife.GridView {
	return &View{rows: b.rows, cols: b.cols, rowStride: b.cols, state: b.state}
}

// View is an immutable, cheaply-copyable rectangular sub-region of a
// Buffer's backing array. It satisfies hashlife.GridView.
type View struct {
	rows, cols int
	rowStride  int
	state      []bool
}

// Rows reports the view's row extent.
func (v *View) Rows() int { return v.rows }

// Cols reports the view's column extent.
func (v *View) Cols() int { return v.cols }

// At reports the cell state at (row, col), 0-indexed from the view's
// own top-left corner. Out-of-bounds access panics per spec 7.
func (v *View) At(row, col int) bool {
	if row < 0 || row >= v.rows || col < 0 || col >= v.cols {
		panic(fmt.Sprintf("grid: index (%d,%d) out of bounds for %dx%d view", row, col, v.rows, v.cols))
	}
	return v.state[row*v.rowStride+col]
}

// SubRectangle returns the half-open [rowStart,rowEnd) x
// [colStart,colEnd) sub-view of v, satisfying hashlife.GridView.
func (v *View) SubRectangle(rowStart, rowEnd, colStart, colEnd int) hashlife.GridView {
	b := Bounds{Start: rowStart, End: rowEnd}.normalize(v.rows)
	c := Bounds{Start: colStart, End: colEnd}.normalize(v.cols)
	return &View{
		rows:      b.End - b.Start,
		cols:      c.End - c.Start,
		rowStride: v.rowStride,
		state:     v.state[b.Start*v.rowStride+c.Start:],
	}
}

// Bounds is a half-open [Start, End) range, the Go stand-in for the
// original source's generic RangeBounds parameter (Go has no range-bound
// sum type to match Rust's Range/RangeFrom/RangeTo/RangeFull).
type Bounds struct {
	Start, End int
}

// Full is the sentinel meaning "the entire axis", equivalent to Rust's
// RangeFull (`..`).
var Full = Bounds{Start: -1, End: -1}

func (b Bounds) normalize(extent int) Bounds {
	if b == Full {
		return Bounds{Start: 0, End: extent}
	}
	if b.Start < 0 || b.End > extent || b.Start > b.End {
		panic(fmt.Sprintf("grid: bounds [%d,%d) out of range for extent %d", b.Start, b.End, extent))
	}
	return b
}
