// Package keyschedule implements the standard AES-128 key expansion
// (FIPS-197 §5.2), producing the 44-word round-key array the white-box
// table generator consumes as an opaque input. It is not part of the
// white-box construction itself — a normal AES key schedule leaks nothing
// about the white-box that a standard AES implementation wouldn't.
package keyschedule

import "github.com/AeonDave/wbaes/internal/gf"

// NumRounds is the number of AES-128 encryption rounds.
const NumRounds = 10

// NumWords is the number of 32-bit words in the expanded key (4 words per
// round key, 11 round keys for AES-128).
const NumWords = 4 * (NumRounds + 1)

var rcon = [10]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

// Expand computes the 44-word AES-128 round-key schedule from a 16-byte
// key, in AES's big-endian word convention.
func Expand(key [16]byte) [NumWords]uint32 {
	var w [NumWords]uint32
	for i := 0; i < 4; i++ {
		w[i] = wordFromBytes(key[4*i], key[4*i+1], key[4*i+2], key[4*i+3])
	}

	for i := 4; i < NumWords; i++ {
		temp := w[i-1]
		if i%4 == 0 {
			temp = subWord(rotWord(temp)) ^ uint32(rcon[i/4-1])<<24
		}
		w[i] = w[i-4] ^ temp
	}
	return w
}

func wordFromBytes(a, b, c, d byte) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8 | uint32(d)
}

// rotWord rotates a word's bytes left by one: [a,b,c,d] -> [b,c,d,a].
func rotWord(w uint32) uint32 {
	return w<<8 | w>>24
}

// subWord applies the AES S-box to each byte of w.
func subWord(w uint32) uint32 {
	return wordFromBytes(
		gf.SBox(byte(w>>24)),
		gf.SBox(byte(w>>16)),
		gf.SBox(byte(w>>8)),
		gf.SBox(byte(w)),
	)
}
