// Package kdf provides key-derivation utilities built on the nekohash
// constructions: iterative key stretching, password-based derivation,
// time-windowed keys, whole-buffer bit rotation, and an Argon2id deriver for
// callers that need a vetted memory-hard KDF.
//
// # Stretching and derivation
//
// [Stretch] repeatedly feeds a digest back through a [hashing.Hasher]; the
// hasher is an explicit parameter, so any construction can take the role.
// [StretchKey] is the common case, wiring in a [hashing.KawaiiHash] of the
// requested output size.  [DeriveKey] derives a 32-byte key from a password
// and salt with 10000 stretch iterations.
//
// # Time-windowed keys
//
// [TimeBasedKey] buckets the current Unix time into fixed-size slots and
// derives a key from the seed and the slot number.  The salt is itself
// derived from the slot, so every call inside one window produces the same
// key — two parties sharing a seed and a clock agree on a per-window secret,
// which is the point of windowing.  Use [TimeBasedKeyAt] to derive for an
// explicit instant (testing, or validating the previous window).
//
// # Security notes
//
// Stretching through the toy constructions slows brute force but inherits
// their non-cryptographic mixing.  Where real resistance matters, use
// [DeriveKeyArgon2].
package kdf
