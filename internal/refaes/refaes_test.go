package refaes

import "testing"

func TestEncryptFIPS197AppendixBVector(t *testing.T) {
	key := [16]byte{
		0x2b, 0x7e, 0x15, 0x16, 0x28, 0xae, 0xd2, 0xa6,
		0xab, 0xf7, 0x15, 0x88, 0x09, 0xcf, 0x4f, 0x3c,
	}
	pt := [16]byte{
		0x32, 0x43, 0xf6, 0xa8, 0x88, 0x5a, 0x30, 0x8d,
		0x31, 0x31, 0x98, 0xa2, 0xe0, 0x37, 0x07, 0x34,
	}
	want := [16]byte{
		0x39, 0x25, 0x84, 0x1d, 0x02, 0xdc, 0x09, 0xfb,
		0xdc, 0x11, 0x85, 0x97, 0x19, 0x6a, 0x0b, 0x32,
	}

	got := Encrypt(key, pt)
	if got != want {
		t.Fatalf("Encrypt() = %x, want %x", got, want)
	}
}

func TestEncryptZeroVector(t *testing.T) {
	var key, pt [16]byte
	want := [16]byte{
		0x66, 0xe9, 0x4b, 0xd4, 0xef, 0x8a, 0x2c, 0x3b,
		0x88, 0x4c, 0xfa, 0x59, 0xca, 0x34, 0x2b, 0x2e,
	}

	got := Encrypt(key, pt)
	if got != want {
		t.Fatalf("Encrypt() = %x, want %x", got, want)
	}
}
