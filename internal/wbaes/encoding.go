package wbaes

import "github.com/AeonDave/wbaes/internal/nibble"

// encodingSet holds every nonlinear nibble encoding the generator draws:
// the external I/O masking, the encodings wrapping each round's raw
// Ty-box/MBL table outputs, and the per-gate output encodings of both
// XOR-reduction networks. Every wire in the construction is wrapped by
// exactly one of these, and every table that consumes a wire bakes the
// matching inverse into its input axis.
type encodingSet struct {
	ext ExternalEncoding

	// tyOut[r][n][p] wraps nibble p (0..7, most-significant first) of round
	// r lane n's Ty-box output.
	tyOut [networkRounds][tablesPerRound][8]nibble.Perm

	// mblOut[r][n][p] wraps nibble p of round r lane n's MBL table output.
	mblOut [networkRounds][tablesPerRound][8]nibble.Perm

	// r1Gate[r][k] wraps gate k's output in round r's Ty-box-output
	// reduction network; r2Gate does the same for the MBL-output network.
	r1Gate [networkRounds][gatesPerRound]nibble.Perm
	r2Gate [networkRounds][gatesPerRound]nibble.Perm
}

func genEncodingSet(rng randReader) (*encodingSet, error) {
	var es encodingSet

	for n := 0; n < 16; n++ {
		in, err := genByteEncoding(rng)
		if err != nil {
			return nil, err
		}
		out, err := genByteEncoding(rng)
		if err != nil {
			return nil, err
		}
		es.ext.In[n] = in
		es.ext.Out[n] = out
	}

	for r := 0; r < networkRounds; r++ {
		for n := 0; n < tablesPerRound; n++ {
			for p := 0; p < 8; p++ {
				perm, _, err := nibble.GenRand(rng)
				if err != nil {
					return nil, err
				}
				es.tyOut[r][n][p] = perm

				perm, _, err = nibble.GenRand(rng)
				if err != nil {
					return nil, err
				}
				es.mblOut[r][n][p] = perm
			}
		}
		for k := 0; k < gatesPerRound; k++ {
			perm, _, err := nibble.GenRand(rng)
			if err != nil {
				return nil, err
			}
			es.r1Gate[r][k] = perm

			perm, _, err = nibble.GenRand(rng)
			if err != nil {
				return nil, err
			}
			es.r2Gate[r][k] = perm
		}
	}

	return &es, nil
}

// nibbleAt extracts nibble p (0 = the high nibble of the most-significant
// byte, 7 = the low nibble of the least-significant byte) of a 32-bit word.
func nibbleAt(word uint32, p int) byte {
	byteIdx := p / 2
	b := byte(word >> uint(24-8*byteIdx))
	if p%2 == 0 {
		return b >> 4
	}
	return b & 0xf
}

// gateLevel1Lanes returns the pair of state lanes gate (i, which) combines,
// for column group i (0..3) and which in {0 (lanes i*4, i*4+1), 1 (lanes
// i*4+2, i*4+3)}.
func gateLevel1Lanes(i, which int) (a, b int) {
	if which == 0 {
		return i*4 + 0, i*4 + 1
	}
	return i*4 + 2, i*4 + 3
}

// gateIndices returns the three gate indices that reduce
// column group i's nibble position p: the two level-1 gates and the
// level-2 gate that combines their outputs.
func gateIndices(i, p int) (level1A, level1B, level2 int) {
	return i*16 + p, i*16 + 8 + p, 64 + i*8 + p
}

// byteEncodingFromGateOutputs reconstructs the ByteEncoding a reduction
// network's final, per-byte-position output is wrapped in: state byte pos
// (0..15) is assembled from the level-2 gates at nibble positions 2*j
// (high) and 2*j+1 (low) in column group i = pos/4, j = pos%4.
func byteEncodingFromGateOutputs(gate [gatesPerRound]nibble.Perm, pos int) ByteEncoding {
	i, j := pos/4, pos%4
	_, _, hiGate := gateIndices(i, 2*j)
	_, _, loGate := gateIndices(i, 2*j+1)
	return ByteEncoding{Hi: gate[hiGate], Lo: gate[loGate]}
}
