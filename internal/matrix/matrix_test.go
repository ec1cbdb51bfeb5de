package matrix

import (
	"crypto/rand"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestIdentityInvertsToItself(t *testing.T) {
	id := Identity(32)
	inv, ok := id.Invert()
	qt.Assert(t, qt.IsTrue(ok))
	for i := range id {
		for j := range id[i] {
			if id[i][j] != inv[i][j] {
				t.Fatalf("inverse of identity differs at row %d", i)
			}
		}
	}
}

func TestRandInvertibleRoundTrips(t *testing.T) {
	for _, dim := range []int{8, 32} {
		m, err := RandInvertible(dim, rand.Reader)
		qt.Assert(t, qt.IsNil(err))
		inv, ok := m.Invert()
		qt.Assert(t, qt.IsTrue(ok))

		prod := mulMatrix(m, inv)
		id := Identity(dim)
		for i := range prod {
			for j := range prod[i] {
				if prod[i][j] != id[i][j] {
					t.Fatalf("M * M^-1 != I at dim %d, row %d", dim, i)
				}
			}
		}
	}
}

func TestMulByteWordRoundTrip(t *testing.T) {
	m, err := RandInvertible(8, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	inv, _ := m.Invert()
	for b := 0; b < 256; b++ {
		enc := MulByte(m, byte(b))
		dec := MulByte(inv, enc)
		if dec != byte(b) {
			t.Fatalf("byte round trip failed for %#02x: got %#02x", b, dec)
		}
	}

	w, err := RandInvertible(32, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	winv, _ := w.Invert()
	for _, x := range []uint32{0, 1, 0xdeadbeef, 0xffffffff, 0x01020304} {
		enc := MulWord(w, x)
		dec := MulWord(winv, enc)
		if dec != x {
			t.Fatalf("word round trip failed for %#08x: got %#08x", x, dec)
		}
	}
}

// mulMatrix computes the matrix product a*b over GF(2) by applying a to
// every column of b.
func mulMatrix(a, b Matrix) Matrix {
	n := a.Dim()
	out := Empty(n)
	for col := 0; col < n; col++ {
		v := make(Row, n/8)
		v.SetBit(col, true)
		bCol := b.MulRow(v)
		aCol := a.MulRow(bCol)
		for row := 0; row < n; row++ {
			if aCol.Bit(row) == 1 {
				out[row].SetBit(col, true)
			}
		}
	}
	return out
}
