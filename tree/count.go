package tree

import "github.com/adaptiveart/art/node"

// NodeCount returns the number of node.Node[T] objects (leaves and inner
// nodes alike) reachable from n, including its terminator chains. It is a
// plain traversal, not a maintained counter: the tree carries no running
// total, so tests can use it as an independent check on insert/delete
// bookkeeping.
func NodeCount[T any](n node.Node[T]) int {
	if n == nil {
		return 0
	}

	if _, ok := n.(*node.Leaf[T]); ok {
		return 1
	}

	count := 1

	switch v := n.(type) {
	case *node.Node4[T]:
		if v.Terminator != nil {
			count += NodeCount[T](v.Terminator)
		}
		for i := 0; i < v.NumChildren(); i++ {
			count += NodeCount[T](v.Children[i])
		}
	case *node.Node16[T]:
		if v.Terminator != nil {
			count += NodeCount[T](v.Terminator)
		}
		for i := 0; i < v.NumChildren(); i++ {
			count += NodeCount[T](v.Children[i])
		}
	case *node.Node48[T]:
		if v.Terminator != nil {
			count += NodeCount[T](v.Terminator)
		}
		for b := 0; b < 256; b++ {
			if idx := v.Keys[b]; idx != 0 {
				count += NodeCount[T](v.Children[idx-1])
			}
		}
	case *node.Node256[T]:
		if v.Terminator != nil {
			count += NodeCount[T](v.Terminator)
		}
		for b := 0; b < 256; b++ {
			if v.Children[b] != nil {
				count += NodeCount[T](v.Children[b])
			}
		}
	}

	return count
}
