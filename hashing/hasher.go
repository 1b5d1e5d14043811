package hashing

// Algorithm identifies a hash construction.
// Using a named string type prevents accidental confusion with plain strings.
type Algorithm string

const (
	// AlgorithmKawaii selects the seeded, variable-length KawaiiHash.
	AlgorithmKawaii Algorithm = "kawaii"
	// AlgorithmMagical selects the fixed 16-byte MagicalHash.
	AlgorithmMagical Algorithm = "magical"
	// AlgorithmTsundere selects the fixed 32-byte TsundereHash.
	AlgorithmTsundere Algorithm = "tsundere"
)

// Hasher is the core interface satisfied by all hash constructions.
//
// All implementations must be safe for concurrent use by multiple goroutines:
// Hash derives any internal pseudo-random stream fresh on every call and never
// mutates instance state.
type Hasher interface {
	// Hash computes the digest of data.  It accepts any input, including the
	// empty slice, and always returns exactly Size() bytes.  For a fixed
	// configuration the result is deterministic across calls.
	Hash(data []byte) []byte

	// Size returns the digest length in bytes.
	Size() int

	// Name returns a human-readable name for the construction.
	Name() string

	// Reset discards any retained internal state.  The built-in constructions
	// keep none (each Hash call starts from configuration alone), so for them
	// Reset is a no-op kept for interface symmetry.
	Reset()
}
