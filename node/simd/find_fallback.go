//go:build !amd64

// See find_amd64.go: this is the non-amd64 build of the same surface, and
// it is scalar for the same reason amd64's is — there is no vector path
// wired up yet on any architecture.
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
