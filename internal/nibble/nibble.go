// Package nibble generates random 4-bit bijections (permutations of
// {0..15}) and their inverses, used throughout the white-box construction
// to wrap every internal nibble-sized value so it is never observed in the
// clear.
package nibble

import (
	"fmt"
	"io"
)

// Perm is a bijection of {0, ..., 15}: Perm[x] is the image of x.
type Perm [16]byte

// Apply maps x through the permutation.
func (p Perm) Apply(x byte) byte { return p[x&0xf] }

// Inverse returns the inverse bijection of p.
func (p Perm) Inverse() Perm {
	var inv Perm
	for i, v := range p {
		inv[v] = byte(i)
	}
	return inv
}

// Identity returns the identity permutation of {0..15}.
func Identity() Perm {
	var p Perm
	for i := range p {
		p[i] = byte(i)
	}
	return p
}

// randIntn returns a uniform random integer in [0, n) read from rng,
// rejecting biased samples so small ranges stay uniform.
func randIntn(rng io.Reader, n int) (int, error) {
	if n <= 0 {
		panic("nibble: randIntn requires n > 0")
	}
	limit := 256 - 256%n
	var b [1]byte
	for {
		if _, err := io.ReadFull(rng, b[:]); err != nil {
			return 0, fmt.Errorf("nibble: reading random byte: %v", err)
		}
		if int(b[0]) < limit {
			return int(b[0]) % n, nil
		}
	}
}

// GenRand draws a uniformly random permutation of {0..15} from rng via a
// Fisher-Yates shuffle of the identity permutation, and returns it along
// with its inverse.
func GenRand(rng io.Reader) (p, inv Perm, err error) {
	p = Identity()
	for i := 15; i > 0; i-- {
		j, err := randIntn(rng, i+1)
		if err != nil {
			return Perm{}, Perm{}, err
		}
		p[i], p[j] = p[j], p[i]
	}
	return p, p.Inverse(), nil
}
