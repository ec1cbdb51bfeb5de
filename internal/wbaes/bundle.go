// Package wbaes implements Chow, Eisen, Johnson and van Oorschot's
// table-based white-box AES-128: a pipeline that folds a standard AES-128
// key schedule, a network of mixing bijections, and layered nibble
// encodings into a single lookup-table bundle, plus a constant-time
// evaluator that walks the bundle without ever materializing the key.
package wbaes

import "io"

// randReader names the minimal dependency the generator has on its entropy
// source, so callers can pass an *rng.DRBG or any other io.Reader (an
// alias, not a defined type, so both satisfy it without conversion).
type randReader = io.Reader

// tablesPerRound is the number of Ty-boxes/MBL tables/byte-lanes per round
// (one per state byte).
const tablesPerRound = 16

// networkRounds is the number of Ty-box/MBL rounds the construction builds
// (AES-128 rounds 1 through 9; round 10 collapses into the last-round box).
const networkRounds = 9

// gatesPerRound is the number of XOR-reduction gates per round per family:
// 64 level-1 gates (pairwise combine) plus 32 level-2 gates (combine the
// level-1 outputs), grouped into 4 column trees of 8 nibble positions each.
const gatesPerRound = 96

// EncryptionTable is the full white-box table bundle for one AES-128 key,
// in the fixed binary layout Serialize/Deserialize implement.
type EncryptionTable struct {
	// TyBoxes[r][n][x] is round r's composed, mixing-bijection-wrapped
	// Ty-box for state lane n, indexed by an encoded input byte x.
	TyBoxes [networkRounds][tablesPerRound][256]uint32

	// MBLTables[r][n][x] is round r's MB^-1/L mixing table for lane n,
	// indexed by the encoded output of that round's first XOR-reduction
	// stage.
	MBLTables [networkRounds][tablesPerRound][256]uint32

	// LastBox[n][x] is the final round's combined SubBytes+AddRoundKey
	// box for lane n (no MixColumns, per AES's final round).
	LastBox [tablesPerRound][256]byte

	// R1XorTables[r][k] is round r's k-th gate in the Ty-box-output
	// reduction network (nibble in x, nibble in y, nibble out).
	R1XorTables [networkRounds][gatesPerRound][16][16]byte

	// R2XorTables[r][k] is round r's k-th gate in the MBL-output
	// reduction network.
	R2XorTables [networkRounds][gatesPerRound][16][16]byte
}

// ExternalEncoding holds the input/output byte maskings applied outside the
// table network proper: In wraps the plaintext before the
// first round's Ty-boxes, Out wraps the last-round box's output.
type ExternalEncoding struct {
	In  [16]ByteEncoding
	Out [16]ByteEncoding
}

// EncodeExternal applies the external input encoding to a plaintext block,
// producing the masked input the bundle's evaluator expects.
func EncodeExternal(ee *ExternalEncoding, block [16]byte) [16]byte {
	var out [16]byte
	for i, b := range block {
		out[i] = ee.In[i].Encode(b)
	}
	return out
}

// DecodeExternal reverses the output masking Evaluate leaves on its result,
// recovering the plain AES-128 ciphertext block.
func DecodeExternal(ee *ExternalEncoding, block [16]byte) [16]byte {
	var out [16]byte
	for i, b := range block {
		out[i] = ee.Out[i].Decode(b)
	}
	return out
}
