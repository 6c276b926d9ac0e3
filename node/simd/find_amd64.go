//go:build amd64

// Package simd exposes the byte-array search primitives Node16 and Node48
// use for key lookup and sorted insertion. This file is the amd64 build of
// that surface; find_fallback.go carries the identical signatures for every
// other architecture.
//
// A vectorized (AVX2) implementation would live here, behind the same
// FindKeyIndex/FindInsertPosition/FindNonZeroKeyIndex/FindLastNonZeroKeyIndex
// names, with no change required in the node package. For now every path
// below is the scalar implementation; see find_scalar.go.
package simd

// FindKeyIndex searches for key among keys[:n], returning its index or -1.
func FindKeyIndex(keys *[16]byte, n int, key byte) int {
	return findKeyIndexScalar(keys, n, key)
}

// FindInsertPosition returns where key belongs in the sorted keys[:n].
func FindInsertPosition(keys *[16]byte, n int, key byte) int {
	return findInsertPositionScalar(keys, n, key)
}

// FindNonZeroKeyIndex returns the first non-zero entry in keys, or -1.
func FindNonZeroKeyIndex(keys *[256]byte) int {
	for i, b := range keys {
		if b != 0 {
			return i
		}
	}
	return -1
}

// FindLastNonZeroKeyIndex returns the last non-zero entry in keys, or -1.
func FindLastNonZeroKeyIndex(keys *[256]byte) int {
	for i := 255; i >= 0; i-- {
		if keys[i] != 0 {
			return i
		}
	}
	return -1
}
