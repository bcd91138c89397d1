// Package lfsr256 implements a seedable pseudo-random generator on top
// of a 256-bit Galois LFSR with reduction polynomial
// x^255 + x^31 + x^7 + x^3 + 1. It is not suitable for cryptographic
// use.
//
// A Generator can be advanced bit by bit (Generate) or a word at a time
// through a precomputed reduction table (GenerateFast). Both produce the
// same stream for the same seed, but each advances its own copy of the
// register, so calls to the two should not be interleaved on one
// Generator when a single coherent stream is expected.
package lfsr256

import (
	"github.com/akalin/golfsr/gf2"
	"github.com/akalin/golfsr/jump"
	"github.com/akalin/golfsr/rtab16"
)

// DefaultSeed is the seed used by New.
const DefaultSeed = 41

const (
	// streamOffset is where in the cycle seed 0 starts. It is below
	// 2^seedShift, so it never overlaps the exponents seeds map to.
	streamOffset = 183758644
	seedShift    = 32
	// Each output is 32 = 2^discardShift register steps.
	discardShift = 5
)

var (
	modulus512 = gf2.NewPoly512(0, 3, 7, 31, 255)
	modulus256 = modulus512.Low256()
	powers     = jump.NewPowerTable(modulus512)
	// The terms of the modulus below x^255, i.e. x^31 + x^7 + x^3 + 1.
	foldTable = rtab16.Build(rtab16.Entry{0x0000, 0x8000, 0x0089})
)

// Min returns the smallest value a Generator produces.
func Min() uint32 {
	return 0
}

// Max returns the largest value a Generator produces.
func Max() uint32 {
	return 0xffffffff
}

// Generator is a 32-bit pseudo-random generator. It is not safe for
// concurrent use. Use New or NewSeeded to create one; the zero value
// only produces zeros.
type Generator struct {
	// bits and words hold the same register right after a Reseed.
	// Generate advances only bits and GenerateFast advances only
	// words.
	//
	// Both always hold the representative of their residue mod
	// the modulus that has degree at most 255 and a zero constant
	// term.
	bits gf2.Poly256
	// words[0] holds the coefficients of x^255 down to x^240.
	words [16]uint16
	last  uint32
}

// New returns a Generator seeded with DefaultSeed.
func New() *Generator {
	return NewSeeded(DefaultSeed)
}

// NewSeeded returns a Generator seeded with seed.
func NewSeeded(seed uint64) *Generator {
	var g Generator
	g.Reseed(seed)
	return &g
}

// Min returns the smallest value g produces.
func (g *Generator) Min() uint32 {
	return Min()
}

// Max returns the largest value g produces.
func (g *Generator) Max() uint32 {
	return Max()
}

// Reseed resets both registers of g to the state for seed. Distinct
// seeds start 2^32 * (seed difference) steps apart in the cycle.
func (g *Generator) Reseed(seed uint64) {
	p := powers.Power(streamOffset, 0)
	p = powers.Advance(p, seed, seedShift)
	g.bits = p.ShiftLeft(1).Low256()
	g.words = g.bits.Words16()
	g.last = 0
}

// Generate returns the next output of the bit-serial register.
func (g *Generator) Generate() uint32 {
	var out uint32
	r := g.bits
	for i := 0; i < 32; i++ {
		out <<= 1
		if r.Bit(255) {
			r = r.Plus(modulus256)
			out |= 1
		}
		r = r.ShiftLeft1()
	}
	g.bits = r
	g.last = out
	return out
}

// GenerateFast returns the next output of the word register, which
// it advances 32 bits at once.
func (g *Generator) GenerateFast() uint32 {
	w := &g.words
	out := uint32(w[0])<<16 | uint32(w[1])

	hi := foldTable.Lookup(w[0])
	lo := foldTable.Lookup(w[1])
	w14, w15 := w[14], w[15]
	copy(w[:12], w[2:14])
	w[12] = w14 ^ hi[0]
	w[13] = w15 ^ hi[1] ^ lo[0]
	w[14] = hi[2] ^ lo[1]
	w[15] = lo[2]

	g.last = out
	return out
}

// Last returns the most recent output of g, or 0 if there has been
// none since the last Reseed.
func (g *Generator) Last() uint32 {
	return g.last
}

// Discard advances g past the next z outputs. Each register is
// advanced from where it currently is, so afterwards Generate and
// GenerateFast each continue as if called z more times.
func (g *Generator) Discard(z uint64) {
	if z == 0 {
		return
	}
	g.bits = jumpRegister(g.bits, z)
	g.words = jumpRegister(gf2.Poly256FromWords16(g.words), z).Words16()
}

func jumpRegister(r gf2.Poly256, z uint64) gf2.Poly256 {
	p := r.Widen().Mod(modulus512)
	p = powers.Advance(p, z, discardShift)
	// Stepping never leaves a set constant term, since the bit
	// folded back in is always shifted once more afterwards. The
	// reduced value is congruent but may have one, so trade it for
	// the other representative of degree at most 255.
	if p.Bit(0) {
		p = p.Plus(modulus512)
	}
	return p.Low256()
}
