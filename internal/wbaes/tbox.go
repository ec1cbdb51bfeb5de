package wbaes

import "github.com/AeonDave/wbaes/internal/gf"

// shiftMap is the byte permutation ShiftRows applies to a column-major 4x4
// AES state flattened into 16 bytes: out[i] = state[shiftMap[i]]. The table
// generator bakes this permutation into the round keys (see buildTBoxes) so
// the evaluator can apply ShiftRows directly to its encoded state instead of
// needing the raw state ShiftRows normally expects.
var shiftMap = [16]byte{0, 5, 10, 15, 4, 9, 14, 3, 8, 13, 2, 7, 12, 1, 6, 11}

// invShiftMap is the inverse of shiftMap.
var invShiftMap = [16]byte{0, 13, 10, 7, 4, 1, 14, 11, 8, 5, 2, 15, 12, 9, 6, 3}

// numTBoxRounds is the number of SubBytes applications AES-128 performs: one
// per round including the final one (rk0..rk9 keyed), plus the final round's
// direct rk10 whitening folded into the last table (see buildTBoxes).
const numTBoxRounds = networkRounds + 1

// buildTBoxes computes, for each of the 10 SubBytes applications AES-128
// performs and each of the 16 state lanes, the byte-keyed table
// T[r][n][x] = S(x XOR k'[r][n]), where k'[r] is round key r's bytes
// permuted by shiftMap so that applying ShiftRows to the table's *input*
// lane index lines up with ShiftRows having already been applied to the
// state that feeds it. The last table additionally receives
// the final round's un-permuted whitening key (AES's AddRoundKey(rk10),
// which happens after ShiftRows with no further SubBytes).
func buildTBoxes(roundKeys [44]uint32) (t [numTBoxRounds][tablesPerRound][256]byte) {
	var rk [numTBoxRounds][16]byte
	for r := 0; r < numTBoxRounds; r++ {
		for i := 0; i < 4; i++ {
			w := roundKeys[4*r+i]
			rk[r][4*i+0] = byte(w >> 24)
			rk[r][4*i+1] = byte(w >> 16)
			rk[r][4*i+2] = byte(w >> 8)
			rk[r][4*i+3] = byte(w)
		}
	}

	for r := 0; r < numTBoxRounds; r++ {
		for n := 0; n < tablesPerRound; n++ {
			keyByte := rk[r][shiftMap[n]]
			for x := 0; x < 256; x++ {
				t[r][n][x] = gf.SBox(byte(x) ^ keyByte)
			}
		}
	}

	// Final-round whitening: rk10 (round-key words 40..43) is added directly
	// to the last table, position for position, with no ShiftRows
	// permutation, since the evaluator's ShiftRows has already run on the
	// state that produced this lookup's input.
	last := numTBoxRounds - 1
	for wIdx := 0; wIdx < 4; wIdx++ {
		word := roundKeys[40+wIdx]
		kb := [4]byte{byte(word >> 24), byte(word >> 16), byte(word >> 8), byte(word)}
		for j := 0; j < 4; j++ {
			lane := 4*wIdx + j
			for x := 0; x < 256; x++ {
				t[last][lane][x] ^= kb[j]
			}
		}
	}
	return t
}

// buildTyiTables computes the four Ty_i lookup tables: each
// folds one MixColumns output column's contribution from a single input
// byte into a 32-bit word, so that XOR-ing the four Ty_i(byte) results for
// a column reproduces that column's MixColumns output.
func buildTyiTables() (tyi [4][256]uint32) {
	for x := 0; x < 256; x++ {
		xb := byte(x)
		m2, m3 := gf.Mul(2, xb), gf.Mul(3, xb)
		tyi[0][x] = uint32(m2)<<24 | uint32(xb)<<16 | uint32(xb)<<8 | uint32(m3)
		tyi[1][x] = uint32(m3)<<24 | uint32(m2)<<16 | uint32(xb)<<8 | uint32(xb)
		tyi[2][x] = uint32(xb)<<24 | uint32(m3)<<16 | uint32(m2)<<8 | uint32(xb)
		tyi[3][x] = uint32(xb)<<24 | uint32(xb)<<16 | uint32(m3)<<8 | uint32(m2)
	}
	return tyi
}

// composeTyBoxes folds the T-boxes and Ty_i tables into one lookup per
// round/lane: tyBoxes[r][n][x] = Tyi_{n mod 4}(T[r][n][x]). last is round
// 9's T-box reused verbatim as the final-round box (no MixColumns stage).
func composeTyBoxes(t [numTBoxRounds][tablesPerRound][256]byte, tyi [4][256]uint32) (tyBoxes [networkRounds][tablesPerRound][256]uint32, last [tablesPerRound][256]byte) {
	for r := 0; r < networkRounds; r++ {
		for n := 0; n < tablesPerRound; n++ {
			for x := 0; x < 256; x++ {
				tyBoxes[r][n][x] = tyi[n%4][t[r][n][x]]
			}
		}
	}
	last = t[networkRounds]
	return tyBoxes, last
}
