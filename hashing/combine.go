package hashing

import (
	"crypto/subtle"
	"math/bits"
)

// Combine folds any number of digests into one buffer as long as the longest
// input.  Each input byte is XORed into the result at its index modulo the
// result length, and the touched byte is then rotated left by 3 bits.  The
// rotation makes the operation order-sensitive: combining the same digests in
// a different order generally yields a different result.
//
// An empty input list yields an empty buffer.  The inputs are not modified.
func Combine(hashes [][]byte) []byte {
	if len(hashes) == 0 {
		return []byte{}
	}

	maxLen := 0
	for _, h := range hashes {
		if len(h) > maxLen {
			maxLen = len(h)
		}
	}
	result := make([]byte, maxLen)
	if maxLen == 0 {
		return result
	}

	for _, h := range hashes {
		for i, b := range h {
			j := i % maxLen
			result[j] ^= b
			result[j] = bits.RotateLeft8(result[j], 3)
		}
	}
	return result
}

// ConstantTimeCompare reports whether a and b hold identical bytes.
//
// When the lengths match, the comparison examines every byte pair before
// deciding, so its duration does not leak the position of the first
// mismatch.  The length check itself returns early; only the content
// comparison is timing-safe.
func ConstantTimeCompare(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
