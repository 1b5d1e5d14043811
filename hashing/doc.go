// Package hashing provides the three flavored hash constructions at the heart
// of nekohash: KawaiiHash, MagicalHash, and TsundereHash.
//
// # Architecture
//
// The central abstraction is the [Hasher] interface.  Three constructions ship
// with this package:
//
//   - [KawaiiHash] — seeded 64-bit chunk mixing with a configurable output length
//   - [MagicalHash] — byte-wise multiplicative/rotational avalanche, fixed 16 bytes
//   - [TsundereHash] — multi-round diffusion over a 32-byte state, fixed 32 bytes
//
// All three implement [Hasher], so callers can depend on the interface rather
// than a concrete type.  The [Manager] is a named-algorithm registry and
// dispatcher for code that selects a construction at runtime.
//
// # Determinism
//
// Every construction is a pure function of its configuration and its input.
// Internal pseudo-randomness is drawn from a stream seeded exclusively by
// construction-time parameters (seed, magic constant, or a fixed domain
// constant), and each Hash call derives a fresh stream rather than mutating
// instance state.  Hashing the same bytes with the same configuration is
// therefore bit-for-bit reproducible, and a single instance may be shared by
// concurrent goroutines without synchronisation.
//
// # Quick start
//
//	h := hashing.NewKawaiiHash()
//	digest := h.Hash([]byte("Hello, Neko World!"))
//	fmt.Println(hexutil.Encode(digest))
//
// # Security notes
//
// These constructions are educational.  They make no claim of collision or
// preimage resistance and must not be used where a vetted cryptographic hash
// is required; reach for SHA-256 or BLAKE2 instead.
package hashing
