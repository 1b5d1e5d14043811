package kdf

// RotateKey returns key rotated left by bits, treating the whole buffer as a
// single big-endian bit string.  bits is reduced modulo the total bit length;
// a zero rotation (or an empty key) returns an unmodified copy.
//
// The rotation runs in two phases: whole bytes first (bits / 8 positions),
// then a carry pass that shifts the remaining bits % 8 through every byte,
// folding the final carry back into the tail.
func RotateKey(key []byte, bits uint) []byte {
	n := len(key)
	out := make([]byte, n)
	copy(out, key)
	if n == 0 {
		return out
	}

	bits %= uint(n) * 8
	if bits == 0 {
		return out
	}

	// Phase 1: whole-byte rotation.
	byteShift := int(bits / 8)
	if byteShift > 0 {
		rotated := make([]byte, n)
		for i := range rotated {
			rotated[i] = out[(i+byteShift)%n]
		}
		out = rotated
	}

	// Phase 2: sub-byte carry propagation from the tail upward.
	bitShift := bits % 8
	if bitShift > 0 {
		carry := byte(0)
		for i := n - 1; i >= 0; i-- {
			high := out[i] >> (8 - bitShift)
			out[i] = out[i]<<bitShift | carry
			carry = high
		}
		out[n-1] |= carry
	}
	return out
}
