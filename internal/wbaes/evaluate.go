package wbaes

// Evaluate walks the table network for one 16-byte block already masked by
// ExternalEncoding.In, returning a block still masked by
// ExternalEncoding.Out (callers use EncodeExternal/DecodeExternal around
// this call to get plain AES-128 in and out). Every step is a direct array
// index or XOR; there is no data-dependent branch or early return, so the
// evaluator's control flow is the same for every block. The table entries
// it reads are selected by the (encoded) state bytes, so which addresses
// are touched does depend on the block.
func Evaluate(bundle *EncryptionTable, input [16]byte) [16]byte {
	state := input

	for r := 0; r < networkRounds; r++ {
		state = shiftRowsBytes(state)

		var tyOut [16]uint32
		for n := 0; n < tablesPerRound; n++ {
			tyOut[n] = bundle.TyBoxes[r][n][state[n]]
		}
		mid := reduceRound(tyOut, &bundle.R1XorTables[r])

		var mblOut [16]uint32
		for n := 0; n < tablesPerRound; n++ {
			mblOut[n] = bundle.MBLTables[r][n][mid[n]]
		}
		state = reduceRound(mblOut, &bundle.R2XorTables[r])
	}

	state = shiftRowsBytes(state)
	var out [16]byte
	for n := 0; n < tablesPerRound; n++ {
		out[n] = bundle.LastBox[n][state[n]]
	}
	return out
}

// shiftRowsBytes applies the ShiftRows permutation to a 16-byte state.
func shiftRowsBytes(state [16]byte) (out [16]byte) {
	for i, src := range shiftMap {
		out[i] = state[src]
	}
	return out
}

// reduceRound folds 16 encoded 32-bit words down to 16 encoded bytes by
// walking one round's 96-gate XOR-reduction network: column group i
// combines words[i*4 : i*4+4], nibble position p at a time, through the
// two-level gate tree gateIndices describes.
func reduceRound(words [16]uint32, xorTabs *[gatesPerRound][16][16]byte) (out [16]byte) {
	for i := 0; i < 4; i++ {
		a, b, c, d := words[i*4+0], words[i*4+1], words[i*4+2], words[i*4+3]
		for p := 0; p < 8; p++ {
			kA, kB, k2 := gateIndices(i, p)
			l1a := xorTabs[kA][nibbleAt(a, p)][nibbleAt(b, p)]
			l1b := xorTabs[kB][nibbleAt(c, p)][nibbleAt(d, p)]
			final := xorTabs[k2][l1a][l1b]

			j := p / 2
			if p%2 == 0 {
				out[i*4+j] |= final << 4
			} else {
				out[i*4+j] |= final
			}
		}
	}
	return out
}
