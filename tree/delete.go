package tree

import "github.com/adaptiveart/art/node"

// Delete removes key from the subtree rooted at *ref, shrinking or merging
// nodes left undersized by the removal. It returns the removed value, if
// key was present.
func Delete[T any](ref *node.Node[T], key []byte, depth int) (old T, deleted bool) {
	n := *ref
	if n == nil {
		return old, false
	}

	if leaf, ok := n.(*node.Leaf[T]); ok {
		if !leaf.Matches(key) {
			return old, false
		}
		*ref = nil
		return leaf.Value, true
	}

	// nodeDepth is where n's own prefix begins; Shrink needs this to recover
	// prefix bytes beyond the physically stored window, via n's minimum leaf.
	nodeDepth := depth

	if n.PrefixLen() > 0 {
		next, ok := matchPrefix(n, key, depth)
		if !ok {
			return old, false
		}
		depth = next
	}

	b := -1
	if depth < len(key) {
		b = int(key[depth])
	}

	childSlot := n.FindChild(b)
	if childSlot == nil || *childSlot == nil {
		return old, false
	}

	if leaf, ok := (*childSlot).(*node.Leaf[T]); ok {
		if !leaf.Matches(key) {
			return old, false
		}
		n.RemoveChild(b)
		if replacement, shrank := n.Shrink(nodeDepth); shrank {
			*ref = replacement
		}
		return leaf.Value, true
	}

	next := depth
	if b >= 0 {
		next = depth + 1
	}
	return Delete(childSlot, key, next)
}
