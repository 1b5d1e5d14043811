package encryption_test

import (
	"fmt"
	"log"

	"github.com/keirancc/nekohash/encryption"
)

// Example demonstrates the encrypt/decrypt round trip.
func Example() {
	key, err := encryption.GenerateKey()
	if err != nil {
		log.Fatal(err)
	}

	envelope, err := encryption.EncryptData([]byte("Secret Neko Message"), key)
	if err != nil {
		log.Fatal(err)
	}

	plaintext, err := encryption.DecryptData(envelope, key)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(plaintext))
	// Output: Secret Neko Message
}

// ExampleEncodeKey demonstrates the textual key codec.
func ExampleEncodeKey() {
	key, err := encryption.GenerateKey()
	if err != nil {
		log.Fatal(err)
	}

	encoded := encryption.EncodeKey(key)
	decoded, err := encryption.DecodeKey(encoded)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(decoded))
	// Output: 32
}
