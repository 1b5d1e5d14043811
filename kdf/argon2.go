package kdf

import (
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	// DefaultArgon2Memory is the default memory cost in KiB (64 MiB).
	DefaultArgon2Memory uint32 = 64 * 1024

	// DefaultArgon2Time is the default number of passes over memory.
	DefaultArgon2Time uint32 = 3

	// DefaultArgon2Threads is the default degree of parallelism.
	DefaultArgon2Threads uint8 = 2

	// DefaultArgon2KeyLen is the default output key length in bytes.
	DefaultArgon2KeyLen uint32 = 32

	// minArgon2SaltLen is the smallest salt accepted by [DeriveKeyArgon2].
	minArgon2SaltLen = 8
)

// Argon2Options configures [DeriveKeyArgon2].
type Argon2Options struct {
	// Memory is the memory cost in KiB.
	// Minimum: 8 * Threads.  Default: [DefaultArgon2Memory] (64 MiB).
	Memory uint32

	// Time is the number of passes over memory (iterations).
	// Minimum: 1.  Default: [DefaultArgon2Time] (3).
	Time uint32

	// Threads is the degree of parallelism.
	// Minimum: 1.  Default: [DefaultArgon2Threads] (2).
	Threads uint8

	// KeyLen is the length of the derived key in bytes.
	// Minimum: 4.  Default: [DefaultArgon2KeyLen] (32).
	KeyLen uint32
}

// DefaultArgon2Options returns Argon2Options with the recommended defaults.
// These exceed OWASP ASVS Level 2 requirements.
func DefaultArgon2Options() Argon2Options {
	return Argon2Options{
		Memory:  DefaultArgon2Memory,
		Time:    DefaultArgon2Time,
		Threads: DefaultArgon2Threads,
		KeyLen:  DefaultArgon2KeyLen,
	}
}

func validateArgon2Options(opts Argon2Options) error {
	if opts.Time < 1 {
		return fmt.Errorf("%w: argon2 time must be ≥ 1, got %d", ErrInvalidOption, opts.Time)
	}
	if opts.Threads < 1 {
		return fmt.Errorf("%w: argon2 threads must be ≥ 1, got %d", ErrInvalidOption, opts.Threads)
	}
	if opts.Memory < 8*uint32(opts.Threads) {
		return fmt.Errorf("%w: argon2 memory (%d KiB) must be ≥ 8×threads (%d KiB)",
			ErrInvalidOption, opts.Memory, 8*uint32(opts.Threads))
	}
	if opts.KeyLen < 4 {
		return fmt.Errorf("%w: argon2 key_len must be ≥ 4, got %d", ErrInvalidOption, opts.KeyLen)
	}
	return nil
}

// DeriveKeyArgon2 derives a key from password and salt with Argon2id.
//
// This is the vetted, memory-hard counterpart to [DeriveKey] for callers who
// need actual brute-force resistance rather than the toy stretcher.  Unlike
// [DeriveKey] it is tunable (see [Argon2Options]) and requires a salt of at
// least 8 bytes.
//
// The derivation is deterministic for a fixed password, salt, and option set.
func DeriveKeyArgon2(password, salt []byte, opts Argon2Options) ([]byte, error) {
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}
	if len(salt) == 0 {
		return nil, ErrEmptySalt
	}
	if len(salt) < minArgon2SaltLen {
		return nil, fmt.Errorf("%w: got %d", ErrShortSalt, len(salt))
	}
	if err := validateArgon2Options(opts); err != nil {
		return nil, err
	}
	return argon2.IDKey(password, salt, opts.Time, opts.Memory, opts.Threads, opts.KeyLen), nil
}
