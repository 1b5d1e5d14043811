package kdf

const (
	// DeriveIterations is the number of stretch iterations used by [DeriveKey].
	DeriveIterations = 10000

	// DerivedKeySize is the length in bytes of keys produced by [DeriveKey].
	DerivedKeySize = 32
)

// DeriveKey derives a 32-byte key from password and salt by stretching their
// concatenation through [StretchKey] for [DeriveIterations] iterations.
//
// The derivation is deterministic: the same password and salt always yield
// the same key.  Diversify keys by generating a fresh random salt per secret
// (see encryption.GenerateSalt) and storing it alongside the derived output.
func DeriveKey(password, salt []byte) ([]byte, error) {
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}
	if len(salt) == 0 {
		return nil, ErrEmptySalt
	}

	material := make([]byte, 0, len(password)+len(salt))
	material = append(material, password...)
	material = append(material, salt...)
	return StretchKey(material, DeriveIterations, DerivedKeySize)
}
