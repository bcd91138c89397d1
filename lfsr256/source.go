package lfsr256

import (
	"encoding/binary"
	"fmt"

	"github.com/akalin/golfsr/rtab16"
	"github.com/klauspost/cpuid/v2"
)

// Mode selects how a Source advances its Generator.
type Mode int

const (
	// ModeAuto picks ModeTable unless the reduction table looks
	// too big for the CPU's L2 cache.
	ModeAuto Mode = iota
	// ModeSerial uses Generator.Generate.
	ModeSerial
	// ModeTable uses Generator.GenerateFast.
	ModeTable
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeSerial:
		return "serial"
	case ModeTable:
		return "table"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the Mode named by s, as returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{ModeAuto, ModeSerial, ModeTable} {
		if m.String() == s {
			return m, nil
		}
	}
	return ModeAuto, fmt.Errorf("unknown mode %q", s)
}

var autoMode Mode

func init() {
	autoMode = resolveAuto(cpuid.CPU.Cache.L2)
}

// resolveAuto returns the mode ModeAuto stands for given an L2 cache
// size in bytes, or a non-positive size if unknown.
func resolveAuto(l2 int) Mode {
	if l2 > 0 && l2 < rtab16.SizeBytes {
		return ModeSerial
	}
	return ModeTable
}

// Source adapts a Generator to math/rand.Source64 and io.Reader. Both
// modes produce the same values for the same seed. A Source is not
// safe for concurrent use.
type Source struct {
	g    *Generator
	mode Mode
	// pending holds the unread bytes of the last output consumed
	// by Read.
	pending    [4]byte
	pendingLen int
}

// NewSource returns a Source seeded with seed.
func NewSource(seed uint64, mode Mode) *Source {
	if mode == ModeAuto {
		mode = autoMode
	}
	return &Source{g: NewSeeded(seed), mode: mode}
}

// Mode returns the mode s was resolved to; it is never ModeAuto.
func (s *Source) Mode() Mode {
	return s.mode
}

// Uint32 returns the next output.
func (s *Source) Uint32() uint32 {
	if s.mode == ModeTable {
		return s.g.GenerateFast()
	}
	return s.g.Generate()
}

// Uint64 returns the next two outputs, the first in the high half.
func (s *Source) Uint64() uint64 {
	hi := s.Uint32()
	return uint64(hi)<<32 | uint64(s.Uint32())
}

// Int63 returns a non-negative pseudo-random 63-bit integer.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed reseeds s with seed reinterpreted as a uint64.
func (s *Source) Seed(seed int64) {
	s.g.Reseed(uint64(seed))
	s.pendingLen = 0
}

// Discard skips the next z outputs, dropping any bytes buffered by
// Read.
func (s *Source) Discard(z uint64) {
	s.g.Discard(z)
	s.pendingLen = 0
}

// Read fills p with the big-endian bytes of successive outputs. Bytes
// of an output left over from one call are returned first by the
// next. It always returns len(p), nil.
func (s *Source) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if s.pendingLen == 0 {
			binary.BigEndian.PutUint32(s.pending[:], s.Uint32())
			s.pendingLen = len(s.pending)
		}
		start := len(s.pending) - s.pendingLen
		c := copy(p[n:], s.pending[start:])
		s.pendingLen -= c
		n += c
	}
	return n, nil
}
