package hashing

import (
	"encoding/binary"
	"math/bits"
)

const (
	// MagicalSize is the fixed digest length of MagicalHash in bytes.
	MagicalSize = 16

	// DefaultMagic is the default magic constant.
	DefaultMagic uint32 = 0x19950816
)

// MagicalHash is the fixed 16-byte construction.  A 16-byte state is
// initialised from repeated copies of the magic constant, stirred byte by
// byte while absorbing input, then avalanched word-wise with multiplications
// and rotations by the same constant.
//
// The mixing stream is seeded from the magic constant alone and rebuilt on
// every Hash call, so a MagicalHash is an immutable value safe for
// concurrent use.
type MagicalHash struct {
	magic uint32
}

// NewMagicalHash constructs a MagicalHash with the default magic constant.
func NewMagicalHash() *MagicalHash {
	return NewMagicalHashWithMagic(DefaultMagic)
}

// NewMagicalHashWithMagic constructs a MagicalHash with an explicit magic
// constant.  Any 32-bit value is a valid magic, though even constants weaken
// the word-multiply step (multiplication by an even number discards high bits).
func NewMagicalHashWithMagic(magic uint32) *MagicalHash {
	return &MagicalHash{magic: magic}
}

// Magic returns the configured magic constant.
func (h *MagicalHash) Magic() uint32 { return h.magic }

// Hash computes the digest of data.  See [Hasher].
func (h *MagicalHash) Hash(data []byte) []byte {
	rng := newStream(uint64(h.magic))

	// Fill the state with four little-endian copies of the magic constant.
	var buf [MagicalSize]byte
	for i := 0; i < MagicalSize; i += 4 {
		binary.LittleEndian.PutUint32(buf[i:], h.magic)
	}

	// Absorb one input byte at a time.
	for i, b := range data {
		j := i % MagicalSize
		buf[j] ^= b
		buf[j] = bits.RotateLeft8(buf[j], 3)
		buf[j] += rng.nextByte()
	}

	// Word-wise avalanche: multiply, rotate, and fold the magic back in.
	for i := 0; i < MagicalSize; i += 4 {
		w := binary.LittleEndian.Uint32(buf[i:])
		w *= h.magic
		w = bits.RotateLeft32(w, 7)
		w ^= h.magic
		binary.LittleEndian.PutUint32(buf[i:], w)
	}

	// Final byte-wise pass over the whole state.
	for j := range buf {
		buf[j] += rng.nextByte()
		buf[j] = bits.RotateLeft8(buf[j], 3)
	}

	out := make([]byte, MagicalSize)
	copy(out, buf[:])
	return out
}

// Size returns [MagicalSize].
func (h *MagicalHash) Size() int { return MagicalSize }

// Name returns the construction name.
func (h *MagicalHash) Name() string { return "MagicalHash" }

// Reset is a no-op; MagicalHash holds no state beyond its configuration.
func (h *MagicalHash) Reset() {}
