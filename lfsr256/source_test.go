package lfsr256

import (
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/akalin/golfsr/rtab16"
	"github.com/stretchr/testify/require"
)

var (
	_ rand.Source64 = (*Source)(nil)
	_ io.Reader     = (*Source)(nil)
)

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeAuto, ModeSerial, ModeTable} {
		parsed, err := ParseMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, parsed)
	}
	_, err := ParseMode("fastest")
	require.Equal(t, errors.New(`unknown mode "fastest"`), err)
	require.Equal(t, "Mode(7)", Mode(7).String())
}

func TestResolveAuto(t *testing.T) {
	require.Equal(t, ModeTable, resolveAuto(-1))
	require.Equal(t, ModeTable, resolveAuto(0))
	require.Equal(t, ModeTable, resolveAuto(rtab16.SizeBytes))
	require.Equal(t, ModeTable, resolveAuto(2<<20))
	require.Equal(t, ModeSerial, resolveAuto(256<<10))
}

func TestSourceModes(t *testing.T) {
	auto := NewSource(0, ModeAuto)
	require.NotEqual(t, ModeAuto, auto.Mode())

	serial := NewSource(0, ModeSerial)
	table := NewSource(0, ModeTable)
	require.Equal(t, ModeSerial, serial.Mode())
	require.Equal(t, ModeTable, table.Mode())
	for _, s := range []*Source{auto, serial, table} {
		require.Equal(t, uint32(0x1efdd74e), s.Uint32())
		require.Equal(t, uint32(0x13076fe3), s.Uint32())
	}
}

func TestSourceUint64(t *testing.T) {
	s := NewSource(0, ModeSerial)
	require.Equal(t, uint64(0x1efdd74e13076fe3), s.Uint64())

	s.Seed(0)
	require.Equal(t, int64(0x1efdd74e13076fe3>>1), s.Int63())

	s.Seed(-1)
	require.Equal(t, uint32(0x7147a860), s.Uint32())
}

func TestSourceRead(t *testing.T) {
	s := NewSource(0, ModeTable)
	p := make([]byte, 3)
	n, err := s.Read(p)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []byte{0x1e, 0xfd, 0xd7}, p)

	p = make([]byte, 6)
	n, err = s.Read(p)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, []byte{0x4e, 0x13, 0x07, 0x6f, 0xe3, 0x41}, p)

	n, err = s.Read(nil)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestSourceDiscard(t *testing.T) {
	s := NewSource(0, ModeSerial)
	// The buffered remainder of the first output is dropped.
	s.Read(make([]byte, 1))
	s.Discard(999)
	require.Equal(t, uint32(0x5a398c18), s.Uint32())
}

func TestSourceWithMathRand(t *testing.T) {
	a := rand.New(NewSource(42, ModeSerial))
	b := rand.New(NewSource(42, ModeTable))
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Int63(), b.Int63())
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}
