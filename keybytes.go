package art

// BytesKey returns key unchanged: the identity provider, for callers that
// already work in byte slices.
func BytesKey(key []byte) []byte { return key }

// StringKey returns the UTF-8 bytes of s. String byte-order already agrees
// with Go's string comparison operators, so no transformation is needed.
func StringKey(s string) []byte { return []byte(s) }

// Uint8Key, Uint16Key, Uint32Key, and Uint64Key encode unsigned integers
// big-endian, so lexicographic byte-string order matches numeric order.

func Uint8Key(v uint8) []byte { return []byte{v} }

func Uint16Key(v uint16) []byte {
	return []byte{byte(v >> 8), byte(v)}
}

func Uint32Key(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func Uint64Key(v uint64) []byte {
	return []byte{
		byte(v >> 56), byte(v >> 48), byte(v >> 40), byte(v >> 32),
		byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v),
	}
}

// Int8Key, Int16Key, Int32Key, and Int64Key encode signed integers
// big-endian with the sign bit flipped first. Two's-complement negative
// numbers have their sign bit set, which would otherwise sort them after
// positive numbers under plain byte comparison; flipping the sign bit
// before encoding restores numeric order.

func Int8Key(v int8) []byte {
	return Uint8Key(uint8(v) ^ 0x80)
}

func Int16Key(v int16) []byte {
	return Uint16Key(uint16(v) ^ 0x8000)
}

func Int32Key(v int32) []byte {
	return Uint32Key(uint32(v) ^ 0x80000000)
}

func Int64Key(v int64) []byte {
	return Uint64Key(uint64(v) ^ 0x8000000000000000)
}
