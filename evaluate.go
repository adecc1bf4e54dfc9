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

// neighborOffsets enumerates the 8 cells surrounding the center of a
// 3x3 window, i.e. every (di, dj) in {0,1,2}^2 except (1,1).
var neighborOffsets = [8][2]int{
	{0, 0}, {1, 0}, {0, 1}, {2, 0},
	{0, 2}, {2, 1}, {1, 2}, {2, 2},
}

// interner is the subset of Cache's contract that the evaluator needs:
// any Cache variant (the plain Cache, ConcurrentCache's base, or
// BoundedCache) can drive compute_result through this interface.
type interner interface {
	Intern(tl, tr, bl, br MacroCell) Branch
	ResultOf(b Branch) MacroCell
}

// computeResult dispatches on the homogeneity of node's children and
// returns its memoized future state: one generation for a branch of
// leaves (side 4), or 2^(n-2) generations for a branch of branches of
// side 2^n,
// via the nine-intermediate / four-composed construction of spec 4.3.2.
func computeResult(node *branchNode, cache interner) MacroCell {
	switch node.children[0][0].(type) {
	case Leaf:
		return computeLeafResult(node)
	case Branch:
		return computeBranchResult(node, cache)
	default:
		panic("hashlife: unreachable macrocell variant")
	}
}

// computeLeafResult is the base case: node is a branch of four Leaves
// (side 4). It concatenates them into a 4x4 bitmap and advances the
// Life rule (B3/S23) by exactly one generation, returning the centered
// 2x2 Leaf.
func computeLeafResult(node *branchNode) MacroCell {
	leaves := [2][2]Leaf{
		{node.children[0][0].(Leaf), node.children[0][1].(Leaf)},
		{node.children[1][0].(Leaf), node.children[1][1].(Leaf)},
	}

	var s [4][4]bool
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			s[i][j] = leaves[i>>1][j>>1].States[i&1][j&1]
		}
	}

	var result [2][2]bool
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			aliveNeighbors := 0
			for _, off := range neighborOffsets {
				if s[i+off[0]][j+off[1]] {
					aliveNeighbors++
				}
			}
			self := s[i+1][j+1]
			result[i][j] = (!self && aliveNeighbors == 3) || (self && (aliveNeighbors == 2 || aliveNeighbors == 3))
		}
	}
	return Leaf{States: result}
}

// computeBranchResult is the recursive case: node is a branch of four
// Branches (side 2^n, n >= 3). It composes nine overlapping squares
// from the children's grandchildren, takes each one's result to obtain
// a 3x3 grid of MacroCells, then takes the result of each of the four
// overlapping 2x2 windows of that grid and composes those four results
// into the final branch — which is itself the evolved center, returned
// without a further result lookup.
func computeBranchResult(node *branchNode, cache interner) MacroCell {
	c := node.children // [row][col] of Branch, side 2^(n-1)
	tl := c[0][0].(Branch).Children()
	tr := c[0][1].(Branch).Children()
	bl := c[1][0].(Branch).Children()
	br := c[1][1].(Branch).Children()

	resultOf := func(tl2, tr2, bl2, br2 MacroCell) MacroCell {
		b := cache.Intern(tl2, tr2, bl2, br2)
		return cache.ResultOf(b)
	}

	var r [3][3]MacroCell
	// Row 0: top edge of the 3x3 grid.
	r[0][0] = resultOf(tl[0][0], tl[0][1], tl[1][0], tl[1][1]) // C[0][0] itself
	r[0][1] = resultOf(tl[0][1], tr[0][0], tl[1][1], tr[1][0]) // horizontal seam, top
	r[0][2] = resultOf(tr[0][0], tr[0][1], tr[1][0], tr[1][1]) // C[0][1] itself
	// Row 1: middle of the 3x3 grid.
	r[1][0] = resultOf(tl[1][0], tl[1][1], bl[0][0], bl[0][1]) // vertical seam, left
	r[1][1] = resultOf(tl[1][1], tr[1][0], bl[0][1], br[0][0]) // center
	r[1][2] = resultOf(tr[1][0], tr[1][1], br[0][0], br[0][1]) // vertical seam, right
	// Row 2: bottom edge of the 3x3 grid.
	r[2][0] = resultOf(bl[0][0], bl[0][1], bl[1][0], bl[1][1]) // C[1][0] itself
	r[2][1] = resultOf(bl[0][1], br[0][0], bl[1][1], br[1][0]) // horizontal seam, bottom
	r[2][2] = resultOf(br[0][0], br[0][1], br[1][0], br[1][1]) // C[1][1] itself

	overlap := func(i, j int) MacroCell {
		b := cache.Intern(r[i][j], r[i][j+1], r[i+1][j], r[i+1][j+1])
		return cache.ResultOf(b)
	}

	f00 := overlap(0, 0)
	f01 := overlap(0, 1)
	f10 := overlap(1, 0)
	f11 := overlap(1, 1)

	return cache.Intern(f00, f01, f10, f11)
}
