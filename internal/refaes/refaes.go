// Package refaes is a plain, non-white-boxed AES-128 implementation used
// only as a test oracle and by the CLI's "aes" subcommand — it has no part
// in the white-box table generator itself.
package refaes

import (
	"github.com/AeonDave/wbaes/internal/gf"
	"github.com/AeonDave/wbaes/internal/keyschedule"
)

// ShiftMap is the byte permutation ShiftRows applies to a column-major
// 4x4 AES state flattened into 16 bytes: out[i] = state[ShiftMap[i]].
var ShiftMap = [16]byte{0, 5, 10, 15, 4, 9, 14, 3, 8, 13, 2, 7, 12, 1, 6, 11}

// InvShiftMap is the inverse of ShiftMap.
var InvShiftMap = [16]byte{0, 13, 10, 7, 4, 1, 14, 11, 8, 5, 2, 15, 12, 9, 6, 3}

// Encrypt performs a standard AES-128 encryption of one 16-byte block.
func Encrypt(key, plaintext [16]byte) [16]byte {
	w := keyschedule.Expand(key)
	state := plaintext

	addRoundKey(&state, w, 0)
	for round := 1; round < keyschedule.NumRounds; round++ {
		subBytes(&state)
		shiftRows(&state)
		mixColumns(&state)
		addRoundKey(&state, w, round)
	}
	subBytes(&state)
	shiftRows(&state)
	addRoundKey(&state, w, keyschedule.NumRounds)

	return state
}

func subBytes(state *[16]byte) {
	for i, b := range state {
		state[i] = gf.SBox(b)
	}
}

func shiftRows(state *[16]byte) {
	var out [16]byte
	for i, src := range ShiftMap {
		out[i] = state[src]
	}
	*state = out
}

func mixColumns(state *[16]byte) {
	for c := 0; c < 4; c++ {
		s0, s1, s2, s3 := state[4*c], state[4*c+1], state[4*c+2], state[4*c+3]
		state[4*c+0] = gf.Mul(2, s0) ^ gf.Mul(3, s1) ^ s2 ^ s3
		state[4*c+1] = s0 ^ gf.Mul(2, s1) ^ gf.Mul(3, s2) ^ s3
		state[4*c+2] = s0 ^ s1 ^ gf.Mul(2, s2) ^ gf.Mul(3, s3)
		state[4*c+3] = gf.Mul(3, s0) ^ s1 ^ s2 ^ gf.Mul(2, s3)
	}
}

func addRoundKey(state *[16]byte, w [keyschedule.NumWords]uint32, round int) {
	for c := 0; c < 4; c++ {
		word := w[4*round+c]
		state[4*c+0] ^= byte(word >> 24)
		state[4*c+1] ^= byte(word >> 16)
		state[4*c+2] ^= byte(word >> 8)
		state[4*c+3] ^= byte(word)
	}
}
