package nibble

import (
	"crypto/rand"
	"testing"
)

func TestGenRandIsBijection(t *testing.T) {
	p, inv, err := GenRand(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	var seen [16]bool
	for x := 0; x < 16; x++ {
		y := p.Apply(byte(x))
		if y > 15 {
			t.Fatalf("Apply(%d) = %d, out of range", x, y)
		}
		if seen[y] {
			t.Fatalf("permutation is not injective: %d appears twice", y)
		}
		seen[y] = true
	}

	for x := 0; x < 16; x++ {
		if got := inv.Apply(p.Apply(byte(x))); got != byte(x) {
			t.Fatalf("inv(p(%d)) = %d, want %d", x, got, x)
		}
		if got := p.Apply(inv.Apply(byte(x))); got != byte(x) {
			t.Fatalf("p(inv(%d)) = %d, want %d", x, got, x)
		}
	}
}

func TestIdentityIsFixedPoint(t *testing.T) {
	id := Identity()
	for x := 0; x < 16; x++ {
		if id.Apply(byte(x)) != byte(x) {
			t.Fatalf("Identity()[%d] = %d, want %d", x, id.Apply(byte(x)), x)
		}
	}
}
