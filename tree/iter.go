package tree

import "github.com/adaptiveart/art/node"

// Walk visits every key/value pair reachable from n in lexicographic
// order, stopping early if fn returns true. It returns true if the walk
// was stopped early.
func Walk[T any](n node.Node[T], fn func(key []byte, value T) bool) bool {
	if n == nil {
		return false
	}

	if leaf, ok := n.(*node.Leaf[T]); ok {
		return fn(leaf.Key, leaf.Value)
	}

	switch v := n.(type) {
	case *node.Node4[T]:
		if v.Terminator != nil && Walk(v.Terminator, fn) {
			return true
		}
		for i := 0; i < v.NumChildren(); i++ {
			if Walk(v.Children[i], fn) {
				return true
			}
		}
	case *node.Node16[T]:
		if v.Terminator != nil && Walk(v.Terminator, fn) {
			return true
		}
		for i := 0; i < v.NumChildren(); i++ {
			if Walk(v.Children[i], fn) {
				return true
			}
		}
	case *node.Node48[T]:
		if v.Terminator != nil && Walk(v.Terminator, fn) {
			return true
		}
		for b := 0; b < 256; b++ {
			if idx := v.Keys[b]; idx != 0 {
				if Walk(v.Children[idx-1], fn) {
					return true
				}
			}
		}
	case *node.Node256[T]:
		if v.Terminator != nil && Walk(v.Terminator, fn) {
			return true
		}
		for b := 0; b < 256; b++ {
			if v.Children[b] != nil && Walk(v.Children[b], fn) {
				return true
			}
		}
	}
	return false
}

// WalkPrefix visits every key/value pair whose key starts with prefix, in
// lexicographic order, stopping early if fn returns true. Unlike Search,
// it checks each node's full logical prefix exactly (via node.PrefixByte),
// not only the stored window.
func WalkPrefix[T any](n node.Node[T], prefix []byte, depth int, fn func(key []byte, value T) bool) bool {
	if n == nil {
		return false
	}

	if leaf, ok := n.(*node.Leaf[T]); ok {
		if len(leaf.Key) < len(prefix) || !hasPrefix(leaf.Key, prefix) {
			return false
		}
		return fn(leaf.Key, leaf.Value)
	}

	if n.PrefixLen() > 0 {
		// Compare only up to however much of prefix remains; a node whose
		// prefix runs past the end of prefix still qualifies; everything
		// under it shares prefix by construction.
		avail := len(prefix) - depth
		if avail < 0 {
			avail = 0
		}
		limit := n.PrefixLen()
		if avail < limit {
			limit = avail
		}
		for i := 0; i < limit; i++ {
			if node.PrefixByte[T](n, depth, i) != prefix[depth+i] {
				return false
			}
		}
		depth += n.PrefixLen()
		if depth > len(prefix) {
			// The node's prefix runs past prefix: every key below is a match.
			return Walk(n, fn)
		}
	}

	if depth >= len(prefix) {
		return Walk(n, fn)
	}

	b := int(prefix[depth])
	child := n.FindChild(b)
	if child == nil || *child == nil {
		return false
	}
	return WalkPrefix(*child, prefix, depth+1, fn)
}

func hasPrefix(key, prefix []byte) bool {
	if len(key) < len(prefix) {
		return false
	}
	for i, b := range prefix {
		if key[i] != b {
			return false
		}
	}
	return true
}
