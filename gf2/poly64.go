package gf2

import "math/bits"

// A Poly64 is a polynomial over GF(2) of degree below 64. It is the
// limb type of the wider polynomials in this package.
type Poly64 uint64

// TimesWide returns the full product of p and q as polynomials over
// GF(2), with hi holding the coefficients of x^64 through x^127 and
// lo holding the rest.
func (p Poly64) TimesWide(q Poly64) (hi, lo Poly64) {
	for i := uint(0); q != 0; i, q = i+1, q>>1 {
		if q&1 == 0 {
			continue
		}
		lo ^= p << i
		if i != 0 {
			hi ^= p >> (64 - i)
		}
	}
	return hi, lo
}

func ilog2(n uint64) int {
	return bits.Len64(n) - 1
}
