// Package tree implements the recursive insert, search, delete and
// traversal algorithms over node.Node[T] slots. Insert and Delete take the
// slot holding the current node (a *node.Node[T]) rather than the node
// itself, so they can rewrite that slot in place when a node grows,
// shrinks, or splits; the read-only Search, Walk, WalkPrefix and NodeCount
// take the node itself.
package tree

import "github.com/adaptiveart/art/node"

func commonPrefix(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// matchPrefix is the optimistic check used by Search and Delete: it only
// compares the physically stored prefix bytes (at most node.MaxPrefixLen)
// against key, and if they all match, trusts the node's logical prefix
// length without confirming the bytes beyond the stored window. A
// mismatched key is only ever discovered here or at the leaf it eventually
// reaches — never silently accepted.
func matchPrefix[T any](n node.Node[T], key []byte, depth int) (newDepth int, ok bool) {
	stored := n.Prefix()
	avail := len(key) - depth
	if avail < 0 {
		return depth, false
	}
	cmp := len(stored)
	if avail < cmp {
		cmp = avail
	}
	for i := 0; i < cmp; i++ {
		if stored[i] != key[depth+i] {
			return depth, false
		}
	}
	newDepth = depth + n.PrefixLen()
	if newDepth > len(key) {
		return depth, false
	}
	return newDepth, true
}

// prefixMismatch finds the true mismatch point between n's logical prefix
// and key[depth:], recovering bytes beyond the stored window from n's
// minimum leaf. Unlike matchPrefix, this is exact even when the prefix
// exceeds node.MaxPrefixLen, which insertion needs to decide exactly where
// to split.
func prefixMismatch[T any](n node.Node[T], key []byte, depth int) int {
	limit := n.PrefixLen()
	if avail := len(key) - depth; avail < limit {
		limit = avail
	}
	i := 0
	for i < limit && node.PrefixByte[T](n, depth, i) == key[depth+i] {
		i++
	}
	return i
}
