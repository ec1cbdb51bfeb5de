package wbaes

import "github.com/AeonDave/wbaes/internal/nibble"

// buildXorTables constructs one round's 96-gate XOR-reduction network.
// level1Input(i, p, side) names the nibble encoding that
// wraps side 0 or 1's input to column group i's level-1 gate at nibble
// position p (the two gates being combined are the producer's own output
// encodings — Ty-box or MBL — so the network can decode them directly).
// gate names this round's 96 fresh per-gate output encodings: level-1 gates
// use gate[i*16+p] and gate[i*16+8+p], and the level-2 gate combining them
// uses gate[64+i*8+p].
//
// Every table entry is: out = gate[k].Apply(decodeA(x) XOR decodeB(y)),
// where decodeA/decodeB invert whichever encoding produced that input —
// the producer's tyOut/mblOut nibble encoding for a level-1 gate, or the
// previous level's gate encoding for the level-2 gate.
func buildXorTables(level1Input func(i, p, side int) nibble.Perm, gate [gatesPerRound]nibble.Perm) (tabs [gatesPerRound][16][16]byte) {
	for i := 0; i < 4; i++ {
		for p := 0; p < 8; p++ {
			kA, kB, k2 := gateIndices(i, p)

			fillGate(&tabs[kA], level1Input(i, p, 0), level1Input(i, p, 1), gate[kA])
			fillGate(&tabs[kB], level1Input(i, p, 2), level1Input(i, p, 3), gate[kB])
			fillGate(&tabs[k2], gate[kA], gate[kB], gate[k2])
		}
	}
	return tabs
}

// fillGate populates a single 16x16 table: tab[x][y] = out.Apply(inA^-1(x)
// XOR inB^-1(y)).
func fillGate(tab *[16][16]byte, inA, inB, out nibble.Perm) {
	decA, decB := inA.Inverse(), inB.Inverse()
	for x := 0; x < 16; x++ {
		dx := decA.Apply(byte(x))
		for y := 0; y < 16; y++ {
			dy := decB.Apply(byte(y))
			tab[x][y] = out.Apply(dx ^ dy)
		}
	}
}
