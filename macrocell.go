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

// Package hashlife implements the core of Gosper's HashLife algorithm: a
// hash-consed, memoized evaluator for square regions of Conway's Game of
// Life. The Life rule (B3/S23) is hard-wired.
package hashlife

// MacroCell is a square region of the automaton: either a Leaf (a 2x2
// region, the recursion base) or a Branch (a 2^n x 2^n region, n >= 2,
// represented as a canonical handle to a Branch record). It is a sum
// type; callers switch on the concrete type rather than calling virtual
// methods, since the base and recursive cases of the evaluator have
// materially different shapes.
type MacroCell interface {
	// Side returns the side length of the region, always a power of two
	// greater than or equal to 2.
	Side() int

	macroCell()
}

// Leaf is a 2x2 boolean square, the recursion base. It is a plain value:
// freely copyable, comparable, and never registered with a Cache.
type Leaf struct {
	// States is indexed [row][col]; row 0 is top, col 0 is left.
	States [2][2]bool
}

func (Leaf) Side() int  { return 2 }
func (Leaf) macroCell() {}

// Branch is a canonical handle to an interned Branch record, produced
// only by a Cache. Two Branch values compare equal (via ==) iff they
// refer to the same interned record: identity equality coincides with
// structural equality because the Cache interns by structural value.
type Branch struct {
	node *branchNode
}

func (b Branch) Side() int { return b.node.side }
func (Branch) macroCell()  {}

// Children returns the four sub-regions of b, indexed [row][col].
func (b Branch) Children() [2][2]MacroCell { return b.node.children }

// IsZero reports whether b is the zero Branch (no underlying node). A
// zero Branch is never produced by Cache.Intern; it exists only as the
// zero value of the type.
func (b Branch) IsZero() bool { return b.node == nil }

// branchNode is the interned record: the four canonical children plus
// the memoized result. Every branchNode built through a Cache or
// ConcurrentCache is canonical — it was produced by exactly one call to
// Intern for its particular child tuple. A BoundedCache may build a
// second node for the same child tuple once its index has evicted the
// first.
type branchNode struct {
	children [2][2]MacroCell
	side     int
	result   MacroCell
}

// Result returns the evolved center of the region, per spec: half the
// side, evolved forward by 2^(depth-1) generations, where depth counts
// the Branch levels above the leaves (a branch of Leaves, depth 1,
// advances one generation; a Leaf has no result at all). Leaf returns ok=false; Branch
// returns ok=true together with the cached MacroCell.
func Result(c MacroCell) (MacroCell, bool) {
	switch v := c.(type) {
	case Leaf:
		return nil, false
	case Branch:
		return v.node.result, true
	default:
		panic("hashlife: unreachable macrocell variant")
	}
}
