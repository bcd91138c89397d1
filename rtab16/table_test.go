package rtab16

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// x^31 + x^7 + x^3 + 1.
var testLow = Entry{0x0000, 0x8000, 0x0089}

var testTable = Build(testLow)

func TestBuildBasis(t *testing.T) {
	require.Equal(t, Entry{}, testTable.Lookup(0))
	// x^32 + x^8 + x^4 + x.
	require.Equal(t, uint64(0x000100000112), testTable.Lookup(1).Uint64())
	require.Equal(t, uint64(0x800000890000), testTable.Lookup(0x8000).Uint64())
	require.Equal(t, uint64(0xffff00f1ff0e), testTable.Lookup(0xffff).Uint64())

	for b := uint(0); b < 16; b++ {
		expected := testTable.Lookup(1).Uint64() << b
		require.Equal(t, expected, testTable.Lookup(1<<b).Uint64(), "b=%d", b)
	}
}

func TestBuildFromBasis(t *testing.T) {
	for v := 0; v < Size; v++ {
		var expected Entry
		for b := uint(0); b < 16; b++ {
			if v&(1<<b) != 0 {
				expected = expected.Plus(testTable.Lookup(1 << b))
			}
		}
		require.Equal(t, expected, testTable.Lookup(uint16(v)), "v=%x", v)
	}
}

func TestBuildLinear(t *testing.T) {
	rand := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		a := uint16(rand.Intn(Size))
		b := uint16(rand.Intn(Size))
		require.Equal(t, testTable.Lookup(a^b), testTable.Lookup(a).Plus(testTable.Lookup(b)), "a=%x, b=%x", a, b)
	}
}

func TestBuildOverflow(t *testing.T) {
	require.PanicsWithValue(t, "fold polynomial overflows entry", func() {
		// x^32 needs one bit too many once shifted by 16.
		Build(Entry{0x0001, 0x0000, 0x0000})
	})
	require.NotPanics(t, func() {
		Build(Entry{0x0000, 0x8000, 0x0000})
	})
}
