package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := hashing.NewTsundereHashWithRounds(0)
//	if errors.Is(err, hashing.ErrInvalidOption) {
//	    // bad construction parameter
//	}
var (
	// ErrInvalidOption is returned when a constructor is called with a
	// parameter value that falls outside the allowed range (e.g., a negative
	// digest size or a round count below 1).
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrAlgorithmNotFound is returned by [Manager.Hasher] or indirectly by
	// [Manager.Hash] / [Manager.HashWith] when the requested algorithm has
	// not been registered.
	ErrAlgorithmNotFound = errors.New("hashing: algorithm not found")

	// ErrEmptyAlgorithmName is returned by [Manager.Register] when the
	// supplied algorithm name is an empty string.
	ErrEmptyAlgorithmName = errors.New("hashing: algorithm name must not be empty")

	// ErrNilHasher is returned by [Manager.Register] when a nil [Hasher] is
	// supplied.
	ErrNilHasher = errors.New("hashing: hasher must not be nil")
)
