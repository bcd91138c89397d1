// Package jump computes x^k mod m for large k with square-and-multiply,
// which lets an LFSR register be moved to an arbitrary point of its
// cycle without stepping through every state in between.
package jump

import (
	"math/bits"

	"github.com/akalin/golfsr/gf2"
)

// Size is the number of entries in a PowerTable, which bounds the
// exponents it can reach to below 2^Size.
const Size = 256

// PowerTable holds x^(2^i) mod m for each i in [0, Size).
type PowerTable struct {
	m      gf2.Poly512
	powers [Size]gf2.Poly512
}

// NewPowerTable builds the table for the modulus m by repeated
// squaring. m must have degree at least 2 and at most 256.
func NewPowerTable(m gf2.Poly512) *PowerTable {
	deg := m.Degree()
	if deg < 2 || deg > gf2.Poly256Bits {
		panic("invalid modulus degree")
	}

	t := &PowerTable{m: m}
	t.powers[0] = gf2.NewPoly512(1)
	for i := 1; i < Size; i++ {
		prev := t.powers[i-1]
		t.powers[i] = gf2.MulMod(m, prev, prev)
	}
	return t
}

// Modulus returns the modulus the table was built for.
func (t *PowerTable) Modulus() gf2.Poly512 {
	return t.m
}

// At returns x^(2^i) mod m.
func (t *PowerTable) At(i int) gf2.Poly512 {
	if i < 0 || i >= Size {
		panic("exponent out of range")
	}
	return t.powers[i]
}

// Advance returns p * x^(k * 2^shift) mod m. p must already be
// reduced mod m. It panics if the exponent does not fit in the table.
func (t *PowerTable) Advance(p gf2.Poly512, k uint64, shift int) gf2.Poly512 {
	if shift < 0 || shift+bits.Len64(k) > Size {
		panic("exponent out of range")
	}
	for i := shift; k != 0; i, k = i+1, k>>1 {
		if k&1 != 0 {
			p = gf2.MulMod(t.m, p, t.powers[i])
		}
	}
	return p
}

// Power returns x^(k * 2^shift) mod m.
func (t *PowerTable) Power(k uint64, shift int) gf2.Poly512 {
	return t.Advance(gf2.NewPoly512(0), k, shift)
}
