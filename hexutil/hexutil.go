// Package hexutil provides the lowercase hexadecimal codec used throughout
// nekohash for printable digests: two characters per byte, no separators, no
// 0x prefix.
//
// Decoding is strict — odd-length input and non-hex characters are rejected
// with sentinel errors suitable for [errors.Is].
package hexutil

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// Sentinel errors returned by [Decode].
var (
	// ErrOddLength is returned when the input has an odd number of
	// characters and therefore cannot encode whole bytes.
	ErrOddLength = errors.New("hexutil: odd-length hex string")

	// ErrInvalidByte is returned when the input contains a character outside
	// [0-9a-fA-F].
	ErrInvalidByte = errors.New("hexutil: invalid hex character")
)

// Encode returns the lowercase hexadecimal encoding of b.
func Encode(b []byte) string {
	return hex.EncodeToString(b)
}

// Decode parses a hexadecimal string into bytes.  Both cases are accepted on
// input; [Encode] always emits lowercase.
func Decode(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err == nil {
		return b, nil
	}
	if errors.Is(err, hex.ErrLength) {
		return nil, fmt.Errorf("%w: %d characters", ErrOddLength, len(s))
	}
	var invalid hex.InvalidByteError
	if errors.As(err, &invalid) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidByte, rune(invalid))
	}
	return nil, err
}
