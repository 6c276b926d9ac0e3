package tree

import "github.com/adaptiveart/art/node"

// Insert places value under key in the subtree rooted at *ref, growing or
// splitting nodes as needed. It returns the previous value at key, if any.
func Insert[T any](ref *node.Node[T], key []byte, value T, depth int) (old T, replaced bool) {
	if *ref == nil {
		*ref = node.NewLeaf(key, value)
		return old, false
	}

	if leaf, ok := (*ref).(*node.Leaf[T]); ok {
		return insertIntoLeaf(ref, leaf, key, value, depth)
	}

	return insertIntoNode(ref, key, value, depth)
}

func insertIntoLeaf[T any](ref *node.Node[T], leaf *node.Leaf[T], key []byte, value T, depth int) (old T, replaced bool) {
	if leaf.Matches(key) {
		old = leaf.Value
		leaf.Value = value
		return old, true
	}

	cm := depth + commonPrefix(leaf.Key[depth:], key[depth:])

	n4 := node.NewNode4[T](key[depth:cm])
	newLeaf := node.NewLeaf(key, value)

	leafByte := -1
	if cm < len(leaf.Key) {
		leafByte = int(leaf.Key[cm])
	}
	n4.AddChild(leafByte, leaf)

	newByte := -1
	if cm < len(key) {
		newByte = int(key[cm])
	}
	n4.AddChild(newByte, newLeaf)

	*ref = n4
	return old, false
}

func insertIntoNode[T any](ref *node.Node[T], key []byte, value T, depth int) (old T, replaced bool) {
	n := *ref

	if n.PrefixLen() > 0 {
		cm := prefixMismatch(n, key, depth)
		if cm < n.PrefixLen() {
			splitPrefix := make([]byte, cm)
			for i := 0; i < cm; i++ {
				splitPrefix[i] = node.PrefixByte[T](n, depth, i)
			}
			split := node.NewNode4[T](splitPrefix)

			discriminator := int(node.PrefixByte[T](n, depth, cm))

			remLen := n.PrefixLen() - (cm + 1)
			remaining := make([]byte, remLen)
			for i := 0; i < remLen; i++ {
				remaining[i] = node.PrefixByte[T](n, depth, cm+1+i)
			}
			n.SetPrefix(remaining)
			split.AddChild(discriminator, n)

			newLeaf := node.NewLeaf(key, value)
			newByte := -1
			if depth+cm < len(key) {
				newByte = int(key[depth+cm])
			}
			split.AddChild(newByte, newLeaf)

			*ref = split
			return old, false
		}
		depth += n.PrefixLen()
	}

	b := -1
	if depth < len(key) {
		b = int(key[depth])
	}

	if child := n.FindChild(b); child != nil && *child != nil {
		next := depth
		if b >= 0 {
			next = depth + 1
		}
		return Insert(child, key, value, next)
	}

	newLeaf := node.NewLeaf(key, value)
	if b >= 0 && n.Full() {
		grown := n.Grow()
		grown.AddChild(b, newLeaf)
		*ref = grown
	} else {
		n.AddChild(b, newLeaf)
	}
	return old, false
}
