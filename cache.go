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

// branchRecord is the structural key a Cache interns by: the four
// children of a prospective Branch. Two branchRecords compare equal
// (Go's built-in ==, since the array of interface values is comparable)
// iff each of the four children is equal: a Leaf by its four bits, a
// Branch by the identity of its canonical handle. Because children are
// always already canonical by the time a parent is interned, this
// reduces to comparing four small values — constant time.
type branchRecord struct {
	children [2][2]MacroCell
}

// Cache is the hash-consing and memoization table at the center of the
// algorithm: it maps a branchRecord (by structural value) to its
// canonical Branch handle and to that handle's precomputed result. A
// Cache is singly owned; it is not safe for concurrent use by multiple
// goroutines. Use NewConcurrentCache for a thread-safe variant.
type Cache struct {
	interned map[branchRecord]*branchNode
}

// NewCache returns an empty Cache. Two independent computations must
// use two independent Caches — there is no global/ambient cache.
func NewCache() *Cache {
	return &Cache{
		interned: make(map[branchRecord]*branchNode),
	}
}

// Intern returns the canonical handle for a branch whose children are
// tl, tr, bl, br (top-left, top-right, bottom-left, bottom-right), along
// with its result. If an equal record is already interned, the existing
// handle and its cached result are returned; otherwise the result is
// computed (recursively, via compute_result) exactly once, the new
// record is interned, and (record -> result) is stored.
//
// Preconditions: tl, tr, bl, br either are all Leaf or all Branch
// (homogeneity), and all four have equal Side(). Violating either is a
// programming bug and panics.
func (c *Cache) Intern(tl, tr, bl, br MacroCell) Branch {
	rec := branchRecord{children: [2][2]MacroCell{{tl, tr}, {bl, br}}}
	return c.intern(rec)
}

func (c *Cache) intern(rec branchRecord) Branch {
	if node, ok := c.interned[rec]; ok {
		return Branch{node: node}
	}

	childSide := validateHomogeneous(rec.children)
	node := &branchNode{
		children: rec.children,
		side:     2 * childSide,
	}
	// compute_result only ever recurses into records built from this
	// node's grandchildren, strictly smaller than node itself, so it
	// cannot observe node back through c.interned. Compute first, then
	// intern, exactly as the reference implementation does.
	node.result = computeResult(node, c)
	c.interned[rec] = node
	return Branch{node: node}
}

// ResultOf returns the memoized result of a canonical handle. O(1): the
// result is stored directly on the interned node, not re-looked-up.
func (c *Cache) ResultOf(b Branch) MacroCell {
	return b.node.result
}

// Len reports the number of distinct branch records currently interned.
// Exposed for tests and diagnostics; not part of the algorithm.
func (c *Cache) Len() int {
	return len(c.interned)
}

// validateHomogeneous panics unless all four children are the same
// variant (all Leaf or all Branch) and the same side length, and
// returns that common side length.
func validateHomogeneous(children [2][2]MacroCell) int {
	allLeaf := true
	allBranch := true
	for _, row := range children {
		for _, c := range row {
			switch c.(type) {
			case Leaf:
				allBranch = false
			case Branch:
				allLeaf = false
			default:
				panic("hashlife: unreachable macrocell variant")
			}
		}
	}
	if allLeaf == allBranch {
		// Both false means the children mix Leaf and Branch. Both true
		// cannot happen: there are always four children, and the switch
		// above already panics on any other variant (including nil).
		panic("hashlife: mixed-variant branch: children must be all Leaf or all Branch")
	}

	s := children[0][0].Side()
	for _, row := range children {
		for _, c := range row {
			if c.Side() != s {
				panic("hashlife: branch children have mismatched side length")
			}
		}
	}
	return s
}
