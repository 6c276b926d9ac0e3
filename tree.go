package art

import (
	"github.com/adaptiveart/art/internal/assert"
	"github.com/adaptiveart/art/node"
	"github.com/adaptiveart/art/tree"
)

// Tree is an ordered associative index from byte-slice keys to values of
// type T. The zero value is an empty tree ready for use; New returns a
// pointer to one.
type Tree[T any] struct {
	root node.Node[T]
}

// New returns an empty Tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// Insert associates value with key, returning the previous value and true
// if key was already present.
func (t *Tree[T]) Insert(key []byte, value T) (old T, replaced bool) {
	assert.Assert(len(key) > 0, "art: key must not be empty")
	return tree.Insert(&t.root, key, value, 0)
}

// Find returns the value associated with key, and whether key was present.
func (t *Tree[T]) Find(key []byte) (value T, found bool) {
	return tree.Search(t.root, key, 0)
}

// Delete removes key, returning its value and whether it was present.
func (t *Tree[T]) Delete(key []byte) (old T, deleted bool) {
	return tree.Delete(&t.root, key, 0)
}

// NodeCount returns the number of internal node objects (leaves and inner
// nodes alike) currently reachable from the root. It walks the tree each
// call; it is meant for tests and diagnostics, not a hot path.
func (t *Tree[T]) NodeCount() int {
	return tree.NodeCount(t.root)
}

// Min returns the key/value pair with the lexicographically smallest key.
func (t *Tree[T]) Min() (key []byte, value T, found bool) {
	if t.root == nil {
		return nil, value, false
	}
	leaf := t.root.Minimum()
	if leaf == nil {
		return nil, value, false
	}
	return leaf.Key, leaf.Value, true
}

// Max returns the key/value pair with the lexicographically largest key.
func (t *Tree[T]) Max() (key []byte, value T, found bool) {
	if t.root == nil {
		return nil, value, false
	}
	leaf := t.root.Maximum()
	if leaf == nil {
		return nil, value, false
	}
	return leaf.Key, leaf.Value, true
}

// Walk visits every key/value pair in lexicographic order, stopping early
// if fn returns true. It reports whether the walk was stopped early.
func (t *Tree[T]) Walk(fn func(key []byte, value T) bool) bool {
	return tree.Walk(t.root, fn)
}

// WalkPrefix visits every key/value pair whose key starts with prefix, in
// lexicographic order, stopping early if fn returns true.
func (t *Tree[T]) WalkPrefix(prefix []byte, fn func(key []byte, value T) bool) bool {
	return tree.WalkPrefix(t.root, prefix, 0, fn)
}
