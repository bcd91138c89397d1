package gf2

// Poly256Bits is the number of coefficients held by a Poly256.
const Poly256Bits = 256

// A Poly256 is a polynomial over GF(2) mod x^256, laid out like a
// Poly512.
type Poly256 [Poly256Bits / 64]uint64

// NewPoly256 returns the polynomial whose non-zero coefficients are
// exactly those of the given degrees.
func NewPoly256(degrees ...int) Poly256 {
	var p Poly256
	for _, d := range degrees {
		checkBitIndex(d, Poly256Bits)
		p[d/64] |= 1 << uint(d%64)
	}
	return p
}

// Bit returns whether the coefficient of x^i in p is 1.
func (p Poly256) Bit(i int) bool {
	checkBitIndex(i, Poly256Bits)
	return p[i/64]&(1<<uint(i%64)) != 0
}

// Plus returns the sum of p and q as polynomials over GF(2).
func (p Poly256) Plus(q Poly256) Poly256 {
	p[0] ^= q[0]
	p[1] ^= q[1]
	p[2] ^= q[2]
	p[3] ^= q[3]
	return p
}

// ShiftLeft1 returns p * x mod x^256.
func (p Poly256) ShiftLeft1() Poly256 {
	p[3] = p[3]<<1 | p[2]>>63
	p[2] = p[2]<<1 | p[1]>>63
	p[1] = p[1]<<1 | p[0]>>63
	p[0] <<= 1
	return p
}

// Widen returns p as a Poly512.
func (p Poly256) Widen() Poly512 {
	var r Poly512
	copy(r[:], p[:])
	return r
}

// Words16 packs p into sixteen 16-bit words, most significant word
// first; bit j of word k is the coefficient of x^(16*(15-k)+j).
func (p Poly256) Words16() [16]uint16 {
	var w [16]uint16
	for k := range w {
		i := 15 - k
		w[k] = uint16(p[i/4] >> (16 * uint(i%4)))
	}
	return w
}

// Poly256FromWords16 is the inverse of Poly256.Words16.
func Poly256FromWords16(w [16]uint16) Poly256 {
	var p Poly256
	for k, x := range w {
		i := 15 - k
		p[i/4] |= uint64(x) << (16 * uint(i%4))
	}
	return p
}
