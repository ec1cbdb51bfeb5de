// Package rng provides the CSPRNG the table generator draws all its
// randomness from: an AES-CTR deterministic random bit generator (DRBG) in
// the style of NIST SP 800-90A's CTR_DRBG, seeded either from a platform
// entropy source or from an explicit seed for reproducible generation
// (deterministic generation requires the latter).
package rng

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
)

// DRBG is a keystream-based io.Reader: it encrypts a monotonically
// incrementing counter block under a fixed AES-128 key and emits the
// resulting ciphertext as pseudorandom bytes. It is never used to encrypt
// user data, only to produce a reproducible stream of random-looking bytes
// for matrix and permutation sampling.
type DRBG struct {
	block   cipher.Block
	counter [aes.BlockSize]byte
	buf     []byte // unconsumed keystream bytes from the last block
}

// New constructs a DRBG whose output stream is a deterministic function of
// seed: equal seeds produce byte-identical streams, and therefore
// byte-identical table bundles.
func New(seed []byte) (*DRBG, error) {
	key := deriveKey(seed)
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("rng: constructing AES-CTR core: %v", err)
	}
	return &DRBG{block: block}, nil
}

// NewFromEntropy constructs a DRBG seeded from the platform's entropy
// source (crypto/rand.Reader). Each call yields an independent stream.
func NewFromEntropy() (*DRBG, error) {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("rng: reading platform entropy: %v", err)
	}
	return New(seed[:])
}

// deriveKey reduces an arbitrary-length seed to a 128-bit AES key via
// SHA-256, domain-separated from any other use of the same seed material.
func deriveKey(seed []byte) [16]byte {
	h := sha256.New()
	h.Write(seed)
	h.Write([]byte("wbaes-drbg-ctr-v1"))
	sum := h.Sum(nil)

	var key [16]byte
	copy(key[:], sum[:16])
	return key
}

// Read fills p with keystream bytes, implementing io.Reader. It never
// returns an error; len(p) bytes are always written, n == len(p).
func (d *DRBG) Read(p []byte) (n int, err error) {
	for len(p) > 0 {
		if len(d.buf) == 0 {
			d.refill()
		}
		k := copy(p, d.buf)
		d.buf = d.buf[k:]
		p = p[k:]
		n += k
	}
	return n, nil
}

// refill encrypts the next counter block and appends it to buf, then
// increments the counter.
func (d *DRBG) refill() {
	block := make([]byte, aes.BlockSize)
	d.block.Encrypt(block, d.counter[:])
	d.buf = block
	incrementCounter(&d.counter)
}

// incrementCounter treats ctr as a big-endian 128-bit counter and adds one.
func incrementCounter(ctr *[aes.BlockSize]byte) {
	for i := len(ctr) - 1; i >= 0; i-- {
		ctr[i]++
		if ctr[i] != 0 {
			return
		}
	}
}
