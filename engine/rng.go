package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"hash/fnv"
)

// Seed is an optional 32-bit seed for the deterministic shuffle RNG.
// The zero Seed means "no seed given": a random one is drawn from the
// OS once at game construction.
type Seed struct {
	set   bool
	value int32
}

// SeedFromInt wraps an explicit numeric seed.
func SeedFromInt(n int32) Seed {
	return Seed{set: true, value: n}
}

// SeedFromString hashes s (FNV-1a, 32-bit) into a numeric seed, so any
// memorable string reproduces the same deck order.
func SeedFromString(s string) Seed {
	h := fnv.New32a()
	h.Write([]byte(s))
	return Seed{set: true, value: int32(h.Sum32())}
}

// resolve returns the concrete seed value, drawing one from crypto/rand
// when none was supplied. The result is never 0: xorshift can't start
// at 0.
func (s Seed) resolve() int32 {
	v := s.value
	if !s.set {
		var buf [4]byte
		if _, err := crand.Read(buf[:]); err == nil {
			v = int32(binary.LittleEndian.Uint32(buf[:]))
		} else {
			v = 1
		}
	}
	if v == 0 {
		v = 1
	}
	return v
}

// nextFloat advances the RNG and returns a value in [0, 1).
// xorshift32 with a multiplicative output scramble; GameState.Seed is
// the entire RNG state, so snapshots resume the exact sequence.
func (s *GameState) nextFloat() float64 {
	x := uint32(s.Seed)
	if x == 0 {
		x = 1
	}
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	s.Seed = int32(x)
	return float64(x*2654435761) / float64(1<<32)
}
