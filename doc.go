// Package art provides an in-memory, ordered associative index backed by
// an Adaptive Radix Tree (ART): a trie whose inner nodes pick their own
// fan-out representation (Node4, Node16, Node48, Node256) based on how
// many children they actually hold, and whose single-child chains are
// collapsed via prefix compression.
//
// # Overview
//
// Keys are byte slices; Tree[T] never interprets them, so callers with
// non-byte-slice keys (integers, strings, composite keys) convert with one
// of the providers in keybytes.go before calling Insert, Find, or Delete.
// Correct ordering for multi-byte integer keys requires a fixed-width,
// big-endian encoding — UintNKey/IntNKey in keybytes.go do this, with a sign-bit
// flip for the signed variants so negative values sort before positive
// ones under plain byte-string comparison.
//
// # Node Types
//
//   - Node4: up to 4 children in sorted parallel arrays; the common case
//     for freshly split nodes.
//   - Node16: up to 16 children, same layout as Node4, grown into once
//     Node4 fills up.
//   - Node48: up to 48 children behind a 256-entry byte-to-index table.
//   - Node256: a direct 256-entry array; no indirection left to remove.
//
// Insertion grows a node into the next layout when it's full and a new
// child needs a home; deletion shrinks a node back down once too few
// children remain to justify the wider layout, and replaces a Node4 with
// its remaining child once it is left holding a single child.
//
// # Usage
//
//	t := art.New[string]()
//	t.Insert(art.StringKey("user:42"), "alice")
//
//	if v, ok := t.Find(art.StringKey("user:42")); ok {
//		fmt.Println(v)
//	}
//
//	t.WalkPrefix(art.StringKey("user:"), func(key []byte, v string) bool {
//		fmt.Printf("%s -> %s\n", key, v)
//		return false // keep walking
//	})
//
// # Thread Safety
//
// Tree[T] is not safe for concurrent use. Callers that share a tree across
// goroutines must serialize access themselves.
package art
