// Package gf implements arithmetic in GF(2^8) under the AES irreducible
// polynomial x^8 + x^4 + x^3 + x + 1 (0x11B), plus the AES S-box derived
// from the multiplicative inverse and the fixed affine transform.
package gf

// Add returns a + b in GF(2^8), which is bitwise XOR.
func Add(a, b byte) byte {
	return a ^ b
}

// XTime multiplies a by x (0x02) modulo the AES reduction polynomial.
func XTime(a byte) byte {
	if a&0x80 != 0 {
		return (a << 1) ^ 0x1B
	}
	return a << 1
}

// Mul multiplies a and b in GF(2^8) via the standard schoolbook
// shift-and-add reduction (eight rounds of XTime with conditional XOR).
func Mul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1B
		}
		b >>= 1
	}
	return p
}

// Inv returns the multiplicative inverse of a in GF(2^8) (0 maps to 0),
// computed as a^254 by repeated squaring: a^254 = a^2 * a^4 * ... * a^128.
func Inv(a byte) byte {
	if a == 0 {
		return 0
	}
	inv := byte(1)
	sq := a
	for i := 0; i < 7; i++ {
		sq = Mul(sq, sq)
		inv = Mul(inv, sq)
	}
	return inv
}

// affineMatrix is the fixed 8x8 binary matrix used by the AES S-box's
// affine transform, one row per output bit, LSB-first column ordering.
var affineMatrix = [8][8]byte{
	{1, 0, 0, 0, 1, 1, 1, 1},
	{1, 1, 0, 0, 0, 1, 1, 1},
	{1, 1, 1, 0, 0, 0, 1, 1},
	{1, 1, 1, 1, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 0, 0, 0},
	{0, 1, 1, 1, 1, 1, 0, 0},
	{0, 0, 1, 1, 1, 1, 1, 0},
	{0, 0, 0, 1, 1, 1, 1, 1},
}

const affineConst = 0x63

// Affine applies the AES S-box's affine transform to w: y = A*w + 0x63,
// with A and w interpreted as bit vectors over GF(2).
func Affine(w byte) byte {
	var wv [8]byte
	for i := range wv {
		wv[i] = (w >> i) & 1
	}

	var y byte
	for i := 0; i < 8; i++ {
		bit := byte(affineConst>>i) & 1
		for j := 0; j < 8; j++ {
			bit ^= affineMatrix[i][j] * wv[j]
		}
		y ^= bit << i
	}
	return y
}

// SBox returns S(x) = Affine(Inv(x)), the standard AES S-box byte.
func SBox(x byte) byte {
	return Affine(Inv(x))
}

// SBoxTable returns the full 256-entry AES S-box.
func SBoxTable() (table [256]byte) {
	for x := 0; x < 256; x++ {
		table[x] = SBox(byte(x))
	}
	return
}
