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

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// BoundedCache is the eviction-enabled Cache variant invited by spec 5
// ("An implementation MAY add eviction, but must preserve the property
// that a live canonical handle's underlying record and cached result
// remain available for result_of without recomputation"). It bounds
// only the *intern index* (the branchRecord -> *branchNode lookup used
// to deduplicate freshly-built records), never the nodes themselves: a
// Branch handle keeps its branchNode (and that node's result) alive via
// ordinary Go garbage collection regardless of what the index evicts.
// Evicting an index entry only means a future structurally-equal
// pattern is re-interned as a distinct node instead of deduplicated —
// correctness is unaffected, only the hit rate of hash-consing.
type BoundedCache struct {
	index *lru.Cache[branchRecord, *branchNode]
}

// NewBoundedCache returns an empty BoundedCache whose intern index holds
// at most size records.
func NewBoundedCache(size int) (*BoundedCache, error) {
	index, err := lru.New[branchRecord, *branchNode](size)
	if err != nil {
		return nil, err
	}
	return &BoundedCache{index: index}, nil
}

// Intern mirrors Cache.Intern, but its dedup index is bounded: an
// eviction under memory pressure costs a cache hit, never correctness.
func (c *BoundedCache) Intern(tl, tr, bl, br MacroCell) Branch {
	rec := branchRecord{children: [2][2]MacroCell{{tl, tr}, {bl, br}}}

	if node, ok := c.index.Get(rec); ok {
		return Branch{node: node}
	}

	childSide := validateHomogeneous(rec.children)
	node := &branchNode{
		children: rec.children,
		side:     2 * childSide,
	}
	node.result = computeResult(node, c)
	c.index.Add(rec, node)
	return Branch{node: node}
}

// ResultOf mirrors Cache.ResultOf.
func (c *BoundedCache) ResultOf(b Branch) MacroCell {
	return b.node.result
}

// Len reports the number of records currently held in the bounded
// intern index (not the number of live nodes, which is unbounded).
func (c *BoundedCache) Len() int {
	return c.index.Len()
}
