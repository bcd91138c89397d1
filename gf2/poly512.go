package gf2

// Poly512Bits is the number of coefficients held by a Poly512.
const Poly512Bits = 512

// A Poly512 is a polynomial over GF(2) mod x^512. The coefficient of
// x^i is stored at bit i%64 of limb i/64, so shifting left by one
// bit is multiplication by x.
type Poly512 [Poly512Bits / 64]uint64

// NewPoly512 returns the polynomial whose non-zero coefficients are
// exactly those of the given degrees.
func NewPoly512(degrees ...int) Poly512 {
	var p Poly512
	for _, d := range degrees {
		checkBitIndex(d, Poly512Bits)
		p[d/64] |= 1 << uint(d%64)
	}
	return p
}

func checkBitIndex(i, n int) {
	if i < 0 || i >= n {
		panic("bit index out of range")
	}
}

// Bit returns whether the coefficient of x^i in p is 1.
func (p Poly512) Bit(i int) bool {
	checkBitIndex(i, Poly512Bits)
	return p[i/64]&(1<<uint(i%64)) != 0
}

// IsZero returns whether p is the zero polynomial.
func (p Poly512) IsZero() bool {
	return p == Poly512{}
}

// Degree returns the degree of p, or -1 if p is zero.
func (p Poly512) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return 64*i + ilog2(p[i])
		}
	}
	return -1
}

// Plus returns the sum of p and q as polynomials over GF(2).
func (p Poly512) Plus(q Poly512) Poly512 {
	for i := range p {
		p[i] ^= q[i]
	}
	return p
}

// Minus returns the difference of p and q, which is the same as their
// sum.
func (p Poly512) Minus(q Poly512) Poly512 {
	return p.Plus(q)
}

// ShiftLeft returns p * x^n mod x^512.
func (p Poly512) ShiftLeft(n uint) Poly512 {
	var r Poly512
	limbs, rem := int(n/64), n%64
	for i := len(p) - 1; i >= limbs; i-- {
		r[i] = p[i-limbs] << rem
		if rem != 0 && i-limbs-1 >= 0 {
			r[i] |= p[i-limbs-1] >> (64 - rem)
		}
	}
	return r
}

// Times returns the product of p and q as polynomials over GF(2), mod
// x^512.
func (p Poly512) Times(q Poly512) Poly512 {
	var r Poly512
	for i := range p {
		if p[i] == 0 {
			continue
		}
		for j := 0; i+j < len(r); j++ {
			if q[j] == 0 {
				continue
			}
			hi, lo := Poly64(p[i]).TimesWide(Poly64(q[j]))
			r[i+j] ^= uint64(lo)
			if i+j+1 < len(r) {
				r[i+j+1] ^= uint64(hi)
			}
		}
	}
	return r
}

// Mod returns the remainder of p divided by m, which has degree less
// than that of m. It panics if m is zero.
func (p Poly512) Mod(m Poly512) Poly512 {
	mDeg := m.Degree()
	if mDeg < 0 {
		panic("division by zero")
	}
	for {
		pDeg := p.Degree()
		if pDeg < mDeg {
			return p
		}
		p = p.Plus(m.ShiftLeft(uint(pDeg - mDeg)))
	}
}

// MulMod returns a * b mod m. The product is computed mod x^512, so a
// and b should have degrees less than that of m, and m should have
// degree at most 256.
func MulMod(m, a, b Poly512) Poly512 {
	return a.Times(b).Mod(m)
}

// Low256 returns p mod x^256.
func (p Poly512) Low256() Poly256 {
	var r Poly256
	copy(r[:], p[:len(r)])
	return r
}
