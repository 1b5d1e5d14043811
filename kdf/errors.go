package kdf

import "errors"

// Sentinel errors returned by derivation operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := kdf.DeriveKey(password, salt)
//	if errors.Is(err, kdf.ErrEmptySalt) {
//	    // salt was empty
//	}
var (
	// ErrZeroIterations is returned when a stretch is requested with fewer
	// than one iteration.
	ErrZeroIterations = errors.New("kdf: iterations must be at least 1")

	// ErrZeroOutputSize is returned when a stretch is requested with an
	// output size below one byte.
	ErrZeroOutputSize = errors.New("kdf: output size must be at least 1 byte")

	// ErrEmptyPassword is returned when a key derivation is given an empty
	// password.
	ErrEmptyPassword = errors.New("kdf: password must not be empty")

	// ErrEmptySalt is returned when a key derivation is given an empty salt.
	ErrEmptySalt = errors.New("kdf: salt must not be empty")

	// ErrShortSalt is returned by [DeriveKeyArgon2] when the salt is shorter
	// than the 8-byte minimum.
	ErrShortSalt = errors.New("kdf: salt must be at least 8 bytes")

	// ErrEmptySeed is returned when a time-windowed derivation is given an
	// empty seed.
	ErrEmptySeed = errors.New("kdf: seed must not be empty")

	// ErrZeroWindow is returned when a time-windowed derivation is given a
	// zero-second window.
	ErrZeroWindow = errors.New("kdf: window must be at least 1 second")

	// ErrNilHasher is returned by [Stretch] when no hasher is supplied.
	ErrNilHasher = errors.New("kdf: hasher must not be nil")

	// ErrInvalidOption is returned by [DeriveKeyArgon2] when an option value
	// falls outside the allowed range.
	ErrInvalidOption = errors.New("kdf: invalid option value")
)
