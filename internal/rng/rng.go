// Package rng is a deterministic PRNG seeded from a string. The same seed
// always yields the same sequence; no external entropy is ever consulted.
package rng

import "strconv"

// Stream produces uniform floats in [0,1) from a 32-bit state.
type Stream struct {
	state uint32
}

// New builds a Stream from a seed string. The seed is hashed with an
// avalanche mix over every byte, then each call advances the state with a
// 32-bit mix-and-multiply step.
func New(seed string) *Stream {
	return &Stream{state: hashSeed(seed)}
}

// NewInt coerces a numeric seed to its decimal string form.
func NewInt(seed int64) *Stream {
	return New(strconv.FormatInt(seed, 10))
}

// hashSeed folds the seed into a 32-bit state, xmur3 style: every byte is
// mixed and rotated so short and long seeds alike avalanche across all bits.
func hashSeed(seed string) uint32 {
	h := uint32(1779033703) ^ uint32(len(seed))
	for i := 0; i < len(seed); i++ {
		h = (h ^ uint32(seed[i])) * 3432918353
		h = h<<13 | h>>19
	}
	h = (h ^ h>>16) * 2246822507
	h = (h ^ h>>13) * 3266489909
	return h ^ h>>16
}

// Next returns the next value in [0,1).
func (s *Stream) Next() float64 {
	s.state += 0x6D2B79F5
	z := s.state
	z = (z ^ z>>15) * (z | 1)
	z ^= z + (z^z>>7)*(z|61)
	z ^= z >> 14
	return float64(z) / 4294967296.0
}

// IntBetween returns an integer in [lo, hi], inclusive on both ends.
func (s *Stream) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + int(s.Next()*float64(hi-lo+1))
}

// Chance reports true with probability p.
func (s *Stream) Chance(p float64) bool {
	return s.Next() < p
}
