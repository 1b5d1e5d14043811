package hashing

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

const (
	// DefaultKawaiiSize is the default digest length in bytes.
	DefaultKawaiiSize = 32

	// DefaultKawaiiSeed is the default mixing seed.
	DefaultKawaiiSeed uint64 = 0xCAFEBABE

	// kawaiiMultiplier scrambles the accumulator between output words.
	kawaiiMultiplier uint64 = 0x6c508bbb9c09c9df
)

// KawaiiHash is the seeded, variable-length construction.  Input is consumed
// as 8-byte little-endian chunks folded into a 64-bit accumulator; output is
// squeezed from the accumulator by a multiply/xor-shift pipeline blended with
// a stream seeded from the instance seed.
//
// An earlier revision of this construction drew unseeded entropy during
// hashing, which made digests irreproducible.  That is gone: the stream is
// derived from the seed alone and rebuilt on every Hash call, so a KawaiiHash
// is an immutable value safe for concurrent use.
type KawaiiHash struct {
	seed uint64
	size int
}

// NewKawaiiHash constructs a KawaiiHash with the default 32-byte digest and
// default seed.
func NewKawaiiHash() *KawaiiHash {
	h, _ := NewKawaiiHashWithSeed(DefaultKawaiiSize, DefaultKawaiiSeed)
	return h
}

// NewKawaiiHashWithSize constructs a KawaiiHash producing size-byte digests
// with the default seed.  size must not be negative; zero is permitted and
// yields empty digests.
func NewKawaiiHashWithSize(size int) (*KawaiiHash, error) {
	return NewKawaiiHashWithSeed(size, DefaultKawaiiSeed)
}

// NewKawaiiHashWithSeed constructs a KawaiiHash with an explicit digest
// length and seed.  Two instances with equal size and seed produce identical
// digests for identical input.
func NewKawaiiHashWithSeed(size int, seed uint64) (*KawaiiHash, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: kawaii size must not be negative, got %d", ErrInvalidOption, size)
	}
	return &KawaiiHash{seed: seed, size: size}, nil
}

// Seed returns the configured mixing seed.
func (h *KawaiiHash) Seed() uint64 { return h.seed }

// Hash computes the digest of data.  See [Hasher].
func (h *KawaiiHash) Hash(data []byte) []byte {
	rng := newStream(h.seed)
	acc := h.seed

	// Absorb: fold each 8-byte little-endian chunk into the accumulator.
	// A short final chunk reads as if zero-padded to 8 bytes.
	for len(data) > 0 {
		n := len(data)
		if n > 8 {
			n = 8
		}
		var chunk [8]byte
		copy(chunk[:], data[:n])
		v := binary.LittleEndian.Uint64(chunk[:])
		acc = bits.RotateLeft64(acc+v, 13) ^ v
		data = data[n:]
	}

	// Squeeze: scramble the accumulator and emit its bytes until the digest
	// is full.
	out := make([]byte, 0, h.size+7)
	for len(out) < h.size {
		acc *= kawaiiMultiplier
		acc ^= acc >> 32
		acc += rng.next64()
		var word [8]byte
		binary.LittleEndian.PutUint64(word[:], acc)
		out = append(out, word[:]...)
	}
	return out[:h.size]
}

// Size returns the configured digest length.
func (h *KawaiiHash) Size() int { return h.size }

// Name returns the construction name.
func (h *KawaiiHash) Name() string { return "KawaiiHash" }

// Reset is a no-op; KawaiiHash holds no state beyond its configuration.
func (h *KawaiiHash) Reset() {}
