package hashing

import (
	"fmt"
	"math/bits"
)

const (
	// TsundereSize is the fixed digest length of TsundereHash in bytes.
	TsundereSize = 32

	// DefaultTsundereRounds is the default number of diffusion rounds.
	DefaultTsundereRounds = 8

	// tsundereSeed is the domain-separation constant ("Tsundere" in ASCII)
	// that seeds the construction's mixing stream.
	tsundereSeed uint64 = 0x5473756e64657265

	// tsundereMultiplier drives the per-byte avalanche pass.
	tsundereMultiplier byte = 0xB5
)

// TsundereHash is the fixed 32-byte multi-round diffusion construction.
// Input is XOR-folded into a 32-byte state, which is then put through a
// configurable number of rounds, each of four passes: a scramble pass fed by
// the mixing stream, a forward and a backward XOR diffusion sweep, and a
// multiplicative avalanche pass.
//
// The stream is seeded from a fixed domain constant and re-derived on every
// Hash call, never mutated across calls, so a TsundereHash is an immutable
// value safe for concurrent use.
type TsundereHash struct {
	rounds int
}

// NewTsundereHash constructs a TsundereHash with the default round count.
func NewTsundereHash() *TsundereHash {
	h, _ := NewTsundereHashWithRounds(DefaultTsundereRounds)
	return h
}

// NewTsundereHashWithRounds constructs a TsundereHash running the given
// number of diffusion rounds.  rounds must be at least 1; more rounds mix
// harder at a linear cost in time.
func NewTsundereHashWithRounds(rounds int) (*TsundereHash, error) {
	if rounds < 1 {
		return nil, fmt.Errorf("%w: tsundere rounds must be at least 1, got %d", ErrInvalidOption, rounds)
	}
	return &TsundereHash{rounds: rounds}, nil
}

// Rounds returns the configured round count.
func (h *TsundereHash) Rounds() int { return h.rounds }

// Hash computes the digest of data.  See [Hasher].
func (h *TsundereHash) Hash(data []byte) []byte {
	rng := newStream(tsundereSeed)

	var buf [TsundereSize]byte
	for i, b := range data {
		buf[i%TsundereSize] ^= b
	}

	for r := 0; r < h.rounds; r++ {
		// Scramble: blend in the stream and rotate each byte.
		for j := range buf {
			buf[j] += rng.nextByte()
			buf[j] = bits.RotateLeft8(buf[j], 3)
		}
		// Forward diffusion.
		for j := 1; j < TsundereSize; j++ {
			buf[j] ^= buf[j-1]
		}
		// Backward diffusion.
		for j := TsundereSize - 2; j >= 0; j-- {
			buf[j] ^= buf[j+1]
		}
		// Avalanche: multiply and mask with the stream.
		for j := range buf {
			buf[j] *= tsundereMultiplier
			buf[j] ^= rng.nextByte()
		}
	}

	out := make([]byte, TsundereSize)
	copy(out, buf[:])
	return out
}

// Size returns [TsundereSize].
func (h *TsundereHash) Size() int { return TsundereSize }

// Name returns the construction name.
func (h *TsundereHash) Name() string { return "TsundereHash" }

// Reset is a no-op; each Hash call already re-seeds the stream from the
// fixed domain constant.
func (h *TsundereHash) Reset() {}
