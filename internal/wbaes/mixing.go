package wbaes

import "github.com/AeonDave/wbaes/internal/matrix"

// mixingBijections holds the random invertible matrices that scramble every
// Ty-box/MBL wire: mb is the 32x32 "MB" bijection applied to
// each round/column's composed Ty-box output (and undone, as MB^-1, on the
// matching MBL table); l is the 8x8 "L" bijection layered onto each
// round/lane's MBL output byte; l0 holds one 8x8 matrix per lane for round
// 0, drawn from rng but not applied to any table (round 0's Ty-boxes decode
// only the external input masking).
type mixingBijections struct {
	mb [networkRounds][4]matrix.Matrix   // 32x32, one per round/column
	l  [networkRounds][16]matrix.Matrix  // 8x8, one per round/lane
	l0 [16]matrix.Matrix                 // 8x8, one per lane; not applied
}

// genMixingBijections draws every MB and L matrix fresh from rng, retrying
// internally (via matrix.RandInvertible) until each is invertible.
func genMixingBijections(rng randReader) (*mixingBijections, error) {
	var mm mixingBijections
	for r := 0; r < networkRounds; r++ {
		for c := 0; c < 4; c++ {
			m, err := matrix.RandInvertible(32, rng)
			if err != nil {
				return nil, err
			}
			mm.mb[r][c] = m
		}
	}
	for r := 0; r < networkRounds; r++ {
		for n := 0; n < 16; n++ {
			m, err := matrix.RandInvertible(8, rng)
			if err != nil {
				return nil, err
			}
			mm.l[r][n] = m
		}
	}
	for n := 0; n < 16; n++ {
		m, err := matrix.RandInvertible(8, rng)
		if err != nil {
			return nil, err
		}
		mm.l0[n] = m
	}
	return &mm, nil
}

// applyMB multiplies round r's composed Ty-box outputs by that round's
// column MB matrix in place, and builds the matching MBL table seeded with
// MB^-1 applied to the raw byte-shifted-into-column-position value:
// mbl[r][n][x] = MB^-1 * (x shifted into lane n's byte slot). It returns a
// *MatrixSingular error, without panicking, if a matrix drawn as invertible
// by RandInvertible somehow fails to invert.
func applyMB(tyBoxes *[networkRounds][tablesPerRound][256]uint32, mm *mixingBijections) (mbl [networkRounds][tablesPerRound][256]uint32, err error) {
	for r := 0; r < networkRounds; r++ {
		for n := 0; n < tablesPerRound; n++ {
			col := n / 4
			mbInv, ok := mm.mb[r][col].Invert()
			if !ok {
				return mbl, &MatrixSingular{Dim: 32}
			}
			shift := uint(24 - 8*(n%4))
			for x := 0; x < 256; x++ {
				tyBoxes[r][n][x] = matrix.MulWord(mm.mb[r][col], tyBoxes[r][n][x])
				mbl[r][n][x] = matrix.MulWord(mbInv, uint32(x)<<shift)
			}
		}
	}
	return mbl, nil
}

// applyL layers round r's L matrices onto the already MB^-1-seeded MBL
// table values: each of the 32-bit value's four bytes is treated as coming
// from the post-ShiftRows lane invShiftMap[base+j] and multiplied by that
// lane's L matrix. This must run after applyMB, since L acts
// on the MB^-1-reconstructed column byte, not the raw index.
func applyL(mbl *[networkRounds][tablesPerRound][256]uint32, mm *mixingBijections) {
	for r := 0; r < networkRounds; r++ {
		for n := 0; n < tablesPerRound; n++ {
			base := 4 * (n / 4)
			for x := 0; x < 256; x++ {
				v := mbl[r][n][x]
				b0 := matrix.MulByte(mm.l[r][invShiftMap[base+0]], byte(v>>24))
				b1 := matrix.MulByte(mm.l[r][invShiftMap[base+1]], byte(v>>16))
				b2 := matrix.MulByte(mm.l[r][invShiftMap[base+2]], byte(v>>8))
				b3 := matrix.MulByte(mm.l[r][invShiftMap[base+3]], byte(v))
				mbl[r][n][x] = uint32(b0)<<24 | uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
			}
		}
	}
}
