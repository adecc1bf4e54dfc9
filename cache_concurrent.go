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
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ConcurrentCache is the thread-safe Cache variant invited by spec 5: it
// promotes the Cache to a mutex-guarded map and uses a singleflight.Group
// to guarantee per-key at-most-one-compute even when two goroutines race
// to intern the same branch record. The core itself never needs this —
// a single caller is always synchronous — but a client evaluating many
// independent sub-patterns concurrently can share one.
type ConcurrentCache struct {
	mu    sync.Mutex
	base  *Cache
	group singleflight.Group
}

// NewConcurrentCache returns an empty ConcurrentCache.
func NewConcurrentCache() *ConcurrentCache {
	return &ConcurrentCache{base: NewCache()}
}

// Intern is Cache.Intern's thread-safe counterpart. Two goroutines
// interning structurally-equal records concurrently block on the same
// singleflight key; only one of them actually calls compute_result.
func (c *ConcurrentCache) Intern(tl, tr, bl, br MacroCell) Branch {
	rec := branchRecord{children: [2][2]MacroCell{{tl, tr}, {bl, br}}}

	c.mu.Lock()
	if node, ok := c.base.interned[rec]; ok {
		c.mu.Unlock()
		return Branch{node: node}
	}
	c.mu.Unlock()

	v, _, _ := c.group.Do(recordKey(rec), func() (interface{}, error) {
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.base.intern(rec), nil
	})
	return v.(Branch)
}

// ResultOf is Cache.ResultOf's thread-safe counterpart.
func (c *ConcurrentCache) ResultOf(b Branch) MacroCell {
	return b.node.result
}

// Len reports the number of distinct branch records currently interned.
func (c *ConcurrentCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.base.Len()
}

// recordKey derives a singleflight key from a branchRecord's structural
// identity: a Leaf contributes its four bits, a Branch contributes the
// address of its canonical node (stable for the node's lifetime, and
// equal iff the handles are the same canonical Branch).
func recordKey(rec branchRecord) string {
	var sb strings.Builder
	for _, row := range rec.children {
		for _, child := range row {
			switch v := child.(type) {
			case Leaf:
				fmt.Fprintf(&sb, "L%v|", v.States)
			case Branch:
				fmt.Fprintf(&sb, "B%p|", v.node)
			default:
				panic("hashlife: unreachable macrocell variant")
			}
		}
	}
	return sb.String()
}
