// Package encryption provides the symmetric encryption layer of nekohash:
// AES-256 in counter (CTR) mode with a compact textual envelope.
//
// # Envelope format
//
// Every encrypted value is serialised as
//
//	base64( IV ‖ ciphertext )
//
// where IV is the 16-byte initialisation vector generated fresh for each
// Encrypt call.  There is no length prefix, no version byte, and — by design —
// no authentication tag: CTR mode is a pure stream cipher, so decrypting with
// the wrong key succeeds structurally and simply yields wrong bytes.  Callers
// that need tamper detection must layer a MAC on top.
//
// # Quick start
//
//	key, err := encryption.GenerateKey()
//	enc, err := encryption.NewEncrypter(key)
//
//	envelope, err := enc.EncryptString("Secret Neko Message")
//	plaintext, err := enc.DecryptString(envelope)
//
// # Security notes
//
//   - A unique random IV is generated for every Encrypt call; encrypting the
//     same plaintext twice produces different envelopes.  Never reuse an IV
//     with the same key.
//   - Keys are cloned on ingestion so that external mutations cannot affect
//     in-use keys.
//   - Without an authentication tag this construction provides
//     confidentiality only, not integrity.
package encryption
