package encryption

import "errors"

// Sentinel errors returned by encryption operations.
//
// Callers should use errors.Is for comparisons:
//
//	_, err := encryption.DecryptData(envelope, key)
//	if errors.Is(err, encryption.ErrInvalidKeyLength) {
//	    // key is not 32 bytes
//	}
var (
	// ErrInvalidKeyLength is returned when a supplied key is not exactly
	// [KeySize] bytes.
	ErrInvalidKeyLength = errors.New("encryption: key must be exactly 32 bytes")

	// ErrInvalidPayload is returned when an envelope cannot be base64-decoded.
	ErrInvalidPayload = errors.New("encryption: envelope is not valid base64")

	// ErrEnvelopeTooShort is returned when a decoded envelope is shorter than
	// the 16-byte IV it must begin with.
	ErrEnvelopeTooShort = errors.New("encryption: decoded envelope is shorter than the IV")
)
