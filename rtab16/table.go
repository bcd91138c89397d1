// Package rtab16 builds the lookup table that lets a 256-bit Galois
// LFSR advance sixteen bits at a time: the table maps each 16-bit word
// shifted out of the top of the register to the correction that has to
// be folded back into its low end.
package rtab16

// An Entry is a polynomial over GF(2) of degree below 48, stored as
// three 16-bit words, most significant word first.
type Entry [3]uint16

// Plus returns the sum of e and f, which is just their bitwise xor.
func (e Entry) Plus(f Entry) Entry {
	return Entry{e[0] ^ f[0], e[1] ^ f[1], e[2] ^ f[2]}
}

// Uint64 returns e as a 48-bit integer.
func (e Entry) Uint64() uint64 {
	return uint64(e[0])<<32 | uint64(e[1])<<16 | uint64(e[2])
}

// shiftLeft1 returns e * x. It panics if that would not fit in an
// Entry.
func (e Entry) shiftLeft1() Entry {
	if e[0]&0x8000 != 0 {
		panic("fold polynomial overflows entry")
	}
	return Entry{
		e[0]<<1 | e[1]>>15,
		e[1]<<1 | e[2]>>15,
		e[2] << 1,
	}
}

// Size is the number of entries in a Table.
const Size = 1 << 16

// SizeBytes is the memory taken up by a Table.
const SizeBytes = Size * 3 * 2

// Table maps a 16-bit word v to v * x * low, where low is the
// polynomial Build was called with.
type Table [Size]Entry

// Build returns the table for a register whose reduction polynomial
// is x^n + low, with low of degree below 32. A bit shifted out past
// x^(n-1) is worth x * low, and since folding is linear over GF(2)
// each entry is the sum of the folds of its set bits.
func Build(low Entry) *Table {
	var t Table
	fold := low.shiftLeft1()
	for i := 1; i < Size; i <<= 1 {
		for j := i; j < Size; j++ {
			if i&j != 0 {
				t[j] = t[j].Plus(fold)
			}
		}
		if i<<1 < Size {
			fold = fold.shiftLeft1()
		}
	}
	return &t
}

// Lookup returns the fold for the word v.
func (t *Table) Lookup(v uint16) Entry {
	return t[v]
}
