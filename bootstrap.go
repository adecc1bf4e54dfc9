// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package hashlife

// GridView is the read-only rectangular boolean region that an external
// bootstrap collaborator (see internal/grid) feeds into FromSquare. The
// core never parses text or owns a backing buffer; it only ever
// addresses one of these views.
type GridView interface {
	// Rows and Cols report the current view's extent.
	Rows() int
	Cols() int

	// At reports the cell state at (row, col), 0-indexed, row 0 = top,
	// col 0 = left. Out-of-bounds access is a programming bug.
	At(row, col int) bool

	// SubRectangle returns the half-open [rowStart,rowEnd) x
	// [colStart,colEnd) sub-view of the receiver.
	SubRectangle(rowStart, rowEnd, colStart, colEnd int) GridView
}

// FromSquare recursively decomposes a square GridView into a canonical
// MacroCell, interning every internal Branch it builds along the way.
//
// Preconditions: square.Rows() == square.Cols(), and that side is a
// power of two >= 2. Violating either is a programming bug and panics
// with a diagnostic, per spec 4.2/6/7.
func FromSquare(square GridView, cache *Cache) MacroCell {
	rows, cols := square.Rows(), square.Cols()
	if rows != cols {
		panic("hashlife: FromSquare: non-square input")
	}
	if rows < 2 || rows&(rows-1) != 0 {
		panic("hashlife: FromSquare: side must be a power of two >= 2")
	}

	if rows == 2 {
		return Leaf{States: [2][2]bool{
			{square.At(0, 0), square.At(0, 1)},
			{square.At(1, 0), square.At(1, 1)},
		}}
	}

	cut := rows / 2
	tl := FromSquare(square.SubRectangle(0, cut, 0, cut), cache)
	tr := FromSquare(square.SubRectangle(0, cut, cut, rows), cache)
	bl := FromSquare(square.SubRectangle(cut, rows, 0, cut), cache)
	br := FromSquare(square.SubRectangle(cut, rows, cut, rows), cache)

	return cache.Intern(tl, tr, bl, br)
}
