package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
)

// CTREncrypter encrypts and decrypts byte buffers with AES-256-CTR.
//
// The on-wire envelope is base64(IV ‖ ciphertext); see the package
// documentation for format details and the security caveats of an
// unauthenticated stream cipher.
//
// # Thread safety
//
// CTREncrypter is immutable after construction and safe for concurrent use;
// each Encrypt call draws an independent IV from the system entropy source.
type CTREncrypter struct {
	key []byte
}

// NewEncrypter constructs a [CTREncrypter] for the given 32-byte key.
//
// Use [GenerateKey] to obtain a suitable random key.
func NewEncrypter(key []byte) (*CTREncrypter, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(key))
	}
	return &CTREncrypter{key: cloneBytes(key)}, nil
}

// GetKey returns a copy of the encryption key.
// Mutating the returned slice does not affect the encrypter.
func (e *CTREncrypter) GetKey() []byte { return cloneBytes(e.key) }

// Encrypt encrypts value with AES-256-CTR and returns the base64-encoded
// envelope.  Each call generates a fresh random IV, so encrypting the same
// plaintext twice produces different envelopes.
func (e *CTREncrypter) Encrypt(value []byte) ([]byte, error) {
	// Step 1: generate a random 16-byte IV.
	iv, err := randomBytes(IVSize)
	if err != nil {
		return nil, err
	}

	// Step 2: run the CTR keystream over the plaintext.
	block, err := aes.NewCipher(e.key)
	if err != nil {
		return nil, fmt.Errorf("encryption: failed to create AES cipher: %w", err)
	}
	envelope := make([]byte, IVSize+len(value))
	copy(envelope, iv)
	cipher.NewCTR(block, iv).XORKeyStream(envelope[IVSize:], value)

	// Step 3: base64-encode IV ‖ ciphertext into the textual envelope.
	out := make([]byte, base64.StdEncoding.EncodedLen(len(envelope)))
	base64.StdEncoding.Encode(out, envelope)
	return out, nil
}

// EncryptString is a convenience wrapper that encrypts a UTF-8 string and
// returns the envelope as a string.
func (e *CTREncrypter) EncryptString(value string) (string, error) {
	out, err := e.Encrypt([]byte(value))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Decrypt decrypts a base64-encoded envelope produced by
// [CTREncrypter.Encrypt].
//
// Possible errors: [ErrInvalidPayload], [ErrEnvelopeTooShort].  Decrypting
// with the wrong key is NOT an error: CTR mode has no integrity check, so the
// call succeeds and returns garbage plaintext.
func (e *CTREncrypter) Decrypt(payload []byte) ([]byte, error) {
	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(payload)))
	n, err := base64.StdEncoding.Decode(decoded, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	decoded = decoded[:n]

	if len(decoded) < IVSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrEnvelopeTooShort, len(decoded))
	}
	iv, ciphertext := decoded[:IVSize], decoded[IVSize:]

	block, err := aes.NewCipher(e.key)
	if err != nil {
		return nil, fmt.Errorf("encryption: failed to create AES cipher: %w", err)
	}
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCTR(block, iv).XORKeyStream(plaintext, ciphertext)
	return plaintext, nil
}

// DecryptString is a convenience wrapper around [CTREncrypter.Decrypt] for
// string envelopes.
func (e *CTREncrypter) DecryptString(payload string) (string, error) {
	out, err := e.Decrypt([]byte(payload))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Package-level convenience functions
// ──────────────────────────────────────────────────────────────────────────────

// EncryptData encrypts data with AES-256-CTR and returns the base64 envelope.
//
// If key is nil, a fresh random key is generated for this call and then
// discarded, making the output unrecoverable — useful for one-way blinding of
// a digest.  A non-nil key must be exactly [KeySize] bytes.
func EncryptData(data, key []byte) ([]byte, error) {
	if key == nil {
		generated, err := GenerateKey()
		if err != nil {
			return nil, err
		}
		key = generated
	}
	enc, err := NewEncrypter(key)
	if err != nil {
		return nil, err
	}
	return enc.Encrypt(data)
}

// DecryptData decrypts a base64 envelope produced by [EncryptData] using the
// given 32-byte key.
func DecryptData(payload, key []byte) ([]byte, error) {
	enc, err := NewEncrypter(key)
	if err != nil {
		return nil, err
	}
	return enc.Decrypt(payload)
}

// cloneBytes returns a fresh copy of b.  Used to ensure callers cannot
// mutate keys stored inside an encrypter.
func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
