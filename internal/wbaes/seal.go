package wbaes

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// SealBundle encrypts a serialized table bundle under a 32-byte key with
// ChaCha20-Poly1305, for callers that want to store a generated bundle at
// rest rather than hand it straight to Evaluate. The wire layout
// Serialize/Deserialize produce is unaffected — this is a strictly
// optional envelope around it, not a replacement for it.
func SealBundle(key []byte, table *EncryptionTable) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("wbaes: constructing AEAD: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("wbaes: drawing nonce: %w", err)
	}

	plaintext := table.Serialize()
	sealed := aead.Seal(nonce, nonce, plaintext, nil)
	return sealed, nil
}

// OpenBundle reverses SealBundle, verifying the AEAD tag before
// deserializing the recovered bundle.
func OpenBundle(key, sealed []byte) (*EncryptionTable, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("wbaes: constructing AEAD: %w", err)
	}
	if len(sealed) < aead.NonceSize() {
		return nil, fmt.Errorf("wbaes: sealed bundle shorter than a nonce")
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("wbaes: opening sealed bundle: %w", err)
	}

	var table EncryptionTable
	if err := table.Deserialize(plaintext); err != nil {
		return nil, err
	}
	return &table, nil
}
