package keyschedule

import "testing"

// TestExpandMatchesFIPS197AppendixA checks the first and last round keys
// from the FIPS-197 Appendix A.1 key expansion example.
func TestExpandMatchesFIPS197AppendixA(t *testing.T) {
	key := [16]byte{
		0x2b, 0x7e, 0x15, 0x16, 0x28, 0xae, 0xd2, 0xa6,
		0xab, 0xf7, 0x15, 0x88, 0x09, 0xcf, 0x4f, 0x3c,
	}
	w := Expand(key)

	wantFirst := [4]uint32{0x2b7e1516, 0x28aed2a6, 0xabf71588, 0x09cf4f3c}
	for i, want := range wantFirst {
		if w[i] != want {
			t.Fatalf("w[%d] = %#08x, want %#08x", i, w[i], want)
		}
	}

	wantLast := [4]uint32{0xd014f9a8, 0xc9ee2589, 0xe13f0cc8, 0xb6630ca6}
	for i, want := range wantLast {
		idx := NumWords - 4 + i
		if w[idx] != want {
			t.Fatalf("w[%d] = %#08x, want %#08x", idx, w[idx], want)
		}
	}
}
