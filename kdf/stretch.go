package kdf

import (
	"fmt"

	"github.com/keirancc/nekohash/hashing"
)

// Stretch repeatedly re-hashes data through h, feeding each digest back in as
// the next input.  After the first iteration the working buffer is always
// h.Size() bytes, so the cost of a brute-force search grows linearly with
// iterations.
//
// The hasher is an explicit dependency rather than a package-level default so
// that any construction — or a caller-supplied one — can take the role.
func Stretch(h hashing.Hasher, data []byte, iterations int) ([]byte, error) {
	if h == nil {
		return nil, ErrNilHasher
	}
	if iterations < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrZeroIterations, iterations)
	}

	out := data
	for i := 0; i < iterations; i++ {
		out = h.Hash(out)
	}
	return out, nil
}

// StretchKey stretches data through a [hashing.KawaiiHash] producing
// size-byte digests, iterations times.  This is the stock stretcher used by
// [DeriveKey].
func StretchKey(data []byte, iterations, size int) ([]byte, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrZeroIterations, iterations)
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrZeroOutputSize, size)
	}
	h, err := hashing.NewKawaiiHashWithSize(size)
	if err != nil {
		return nil, err
	}
	return Stretch(h, data, iterations)
}
