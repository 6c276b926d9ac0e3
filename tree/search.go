package tree

import "github.com/adaptiveart/art/node"

// Search walks from n looking for key, starting at depth bytes already
// consumed. It returns the value stored at key and whether key was found.
func Search[T any](n node.Node[T], key []byte, depth int) (value T, found bool) {
	for {
		if n == nil {
			return value, false
		}

		if leaf, ok := n.(*node.Leaf[T]); ok {
			if leaf.Matches(key) {
				return leaf.Value, true
			}
			return value, false
		}

		if n.PrefixLen() > 0 {
			next, ok := matchPrefix(n, key, depth)
			if !ok {
				return value, false
			}
			depth = next
		}

		b := -1
		if depth < len(key) {
			b = int(key[depth])
		}

		child := n.FindChild(b)
		if child == nil || *child == nil {
			return value, false
		}

		n = *child
		if b >= 0 {
			depth++
		}
	}
}
