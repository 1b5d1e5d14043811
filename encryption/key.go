package encryption

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

const (
	// KeySize is the required key length in bytes (AES-256).
	KeySize = 32

	// SaltSize is the length in bytes of salts produced by [GenerateSalt].
	SaltSize = 16

	// IVSize is the length in bytes of the per-envelope initialisation vector.
	IVSize = 16
)

// GenerateKey returns a fresh 32-byte cryptographically random key, ready to
// pass to [NewEncrypter] or [EncryptData].
func GenerateKey() ([]byte, error) {
	return randomBytes(KeySize)
}

// GenerateSalt returns a fresh 16-byte cryptographically random salt for use
// with key derivation.
func GenerateSalt() ([]byte, error) {
	return randomBytes(SaltSize)
}

// EncodeKey returns the standard base64 encoding of key, suitable for storing
// in a configuration file or environment variable.
func EncodeKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// DecodeKey decodes a base64-encoded key previously produced by [EncodeKey].
// It accepts both standard and URL-safe base64 alphabets.
func DecodeKey(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err == nil {
		return key, nil
	}
	// Try URL-safe variant before giving up.
	key, err = base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return key, nil
}

// randomBytes returns n cryptographically random bytes from crypto/rand.
// Entropy failures are surfaced immediately; there is no retry.
func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("encryption: failed to generate %d random bytes: %w", n, err)
	}
	return b, nil
}
