package kdf

import (
	"encoding/binary"
	"time"

	"github.com/keirancc/nekohash/hashing"
)

// timeSlotSaltSize is the length of the per-slot salt fed into [DeriveKey].
const timeSlotSaltSize = 16

// TimeBasedKey derives a 32-byte key from seed scoped to the current time
// window.  The Unix clock is integer-divided by window seconds to obtain the
// slot number; the key is derived from seed ‖ slot with a salt computed from
// the slot itself.
//
// Every call within one window returns the same key, and two parties sharing
// the seed and reasonably synchronised clocks agree on it.  An earlier
// revision salted each call with fresh randomness, which silently made
// "time-windowed" keys unrepeatable; the salt is now a pure function of the
// slot.
func TimeBasedKey(seed []byte, window uint64) ([]byte, error) {
	return TimeBasedKeyAt(seed, window, time.Now())
}

// TimeBasedKeyAt derives the time-windowed key for the window containing the
// instant at.  Useful in tests and for accepting the adjacent window during
// clock-skew grace periods.
func TimeBasedKeyAt(seed []byte, window uint64, at time.Time) ([]byte, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}
	if window == 0 {
		return nil, ErrZeroWindow
	}

	slot := uint64(at.Unix()) / window
	var slotBytes [8]byte
	binary.LittleEndian.PutUint64(slotBytes[:], slot)

	salt, err := slotSalt(slotBytes[:])
	if err != nil {
		return nil, err
	}

	material := make([]byte, 0, len(seed)+len(slotBytes))
	material = append(material, seed...)
	material = append(material, slotBytes[:]...)
	return DeriveKey(material, salt)
}

// slotSalt derives the deterministic per-slot salt: the 16-byte KawaiiHash of
// the little-endian slot number.
func slotSalt(slotBytes []byte) ([]byte, error) {
	h, err := hashing.NewKawaiiHashWithSize(timeSlotSaltSize)
	if err != nil {
		return nil, err
	}
	return h.Hash(slotBytes), nil
}
