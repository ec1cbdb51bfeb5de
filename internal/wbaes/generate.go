package wbaes

import (
	"github.com/AeonDave/wbaes/internal/matrix"
	"github.com/AeonDave/wbaes/internal/nibble"
)

// GenerateEncryptionTable runs the full Chow et al. table-generation
// pipeline over an AES-128 round-key schedule: it builds the
// composed Ty-boxes and last-round box, wraps every internal wire in a
// mixing bijection and a nonlinear nibble encoding, and reduces the
// resulting 32-bit partial sums back to single bytes via two layered
// XOR-reduction networks. The returned ExternalEncoding is the caller's
// only way to mask plaintext in and unmask ciphertext out; without it the
// bundle alone does not reproduce AES-128 encryption.
func GenerateEncryptionTable(roundKeys [44]uint32, rng randReader) (*EncryptionTable, *ExternalEncoding, error) {
	es, err := genEncodingSet(rng)
	if err != nil {
		return nil, nil, &RngFailure{Op: "drawing nibble encodings", Err: err}
	}
	mm, err := genMixingBijections(rng)
	if err != nil {
		return nil, nil, &RngFailure{Op: "drawing mixing bijections", Err: err}
	}

	t := buildTBoxes(roundKeys)
	tyi := buildTyiTables()
	tyBoxes, lastBox := composeTyBoxes(t, tyi)

	mbl, err := applyMB(&tyBoxes, mm)
	if err != nil {
		return nil, nil, err
	}
	applyL(&mbl, mm)

	var bundle EncryptionTable

	for r := 0; r < networkRounds; r++ {
		// Round r's Ty-box input axis must pre-decode whatever encoding the
		// previous stage left on the state byte it consumes. After the
		// evaluator's ShiftRows, lane n holds the byte from position
		// shiftMap[n], so that position's encoding is decoded: the external
		// input masking for round 0 (no linear layer is applied there), or
		// the prior round's second XOR-reduction output encoding composed
		// with that round's L^-1 otherwise.
		for n := 0; n < tablesPerRound; n++ {
			var decodeAxis [256]byte
			if r == 0 {
				for x := 0; x < 256; x++ {
					decodeAxis[x] = es.ext.In[shiftMap[n]].Decode(byte(x))
				}
			} else {
				lInv, ok := mm.l[r-1][n].Invert()
				if !ok {
					return nil, nil, &MatrixSingular{Dim: 8}
				}
				prevOut := byteEncodingFromGateOutputs(es.r2Gate[r-1], int(shiftMap[n]))
				for x := 0; x < 256; x++ {
					decodeAxis[x] = matrix.MulByte(lInv, prevOut.Decode(byte(x)))
				}
			}
			for x := 0; x < 256; x++ {
				bundle.TyBoxes[r][n][x] = tyBoxes[r][n][decodeAxis[x]]
			}
		}

		// The MBL table's input axis pre-decodes the first XOR-reduction
		// network's per-byte output encoding (no linear composition here:
		// MB^-1 was already applied as a value-domain word multiply).
		for n := 0; n < tablesPerRound; n++ {
			dec := byteEncodingFromGateOutputs(es.r1Gate[r], n)
			var decodeAxis [256]byte
			for x := 0; x < 256; x++ {
				decodeAxis[x] = dec.Decode(byte(x))
			}
			for x := 0; x < 256; x++ {
				bundle.MBLTables[r][n][x] = mbl[r][n][decodeAxis[x]]
			}
		}

		tyProducer := func(i, p, side int) nibble.Perm {
			which := side / 2
			a, b := gateLevel1Lanes(i, which)
			lane := a
			if side%2 == 1 {
				lane = b
			}
			return es.tyOut[r][lane][p]
		}
		bundle.R1XorTables[r] = buildXorTables(tyProducer, es.r1Gate[r])

		mblProducer := func(i, p, side int) nibble.Perm {
			which := side / 2
			a, b := gateLevel1Lanes(i, which)
			lane := a
			if side%2 == 1 {
				lane = b
			}
			return es.mblOut[r][lane][p]
		}
		bundle.R2XorTables[r] = buildXorTables(mblProducer, es.r2Gate[r])
	}

	// Wrap each round's raw Ty-box/MBL outputs in their assigned nonlinear
	// nibble encodings, nibble by nibble, now that the XOR networks built
	// above already assume those exact encodings on their inputs.
	for r := 0; r < networkRounds; r++ {
		for n := 0; n < tablesPerRound; n++ {
			for x := 0; x < 256; x++ {
				bundle.TyBoxes[r][n][x] = encodeWord(bundle.TyBoxes[r][n][x], es.tyOut[r][n])
				bundle.MBLTables[r][n][x] = encodeWord(bundle.MBLTables[r][n][x], es.mblOut[r][n])
			}
		}
	}

	// Last-round box: input axis pre-decodes round (networkRounds-1)'s
	// second XOR-reduction output at position shiftMap[n] composed with that
	// round's L^-1; output is post-encoded with the external output masking.
	for n := 0; n < tablesPerRound; n++ {
		lInv, ok := mm.l[networkRounds-1][n].Invert()
		if !ok {
			return nil, nil, &MatrixSingular{Dim: 8}
		}
		prevOut := byteEncodingFromGateOutputs(es.r2Gate[networkRounds-1], int(shiftMap[n]))
		var decodeAxis [256]byte
		for x := 0; x < 256; x++ {
			decodeAxis[x] = matrix.MulByte(lInv, prevOut.Decode(byte(x)))
		}
		for x := 0; x < 256; x++ {
			bundle.LastBox[n][x] = es.ext.Out[n].Encode(lastBox[n][decodeAxis[x]])
		}
	}

	return &bundle, &es.ext, nil
}

// encodeWord wraps each of a 32-bit word's 8 nibbles with the corresponding
// entry of enc, reassembling the result in the same big-endian layout
// nibbleAt reads from.
func encodeWord(word uint32, enc [8]nibble.Perm) uint32 {
	var out uint32
	for p := 0; p < 8; p++ {
		n := enc[p].Apply(nibbleAt(word, p))
		shift := uint(28 - 4*p)
		out |= uint32(n) << shift
	}
	return out
}
