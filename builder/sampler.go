// SPDX-License-Identifier: MIT
// Package: edgegen/builder
//
// sampler.go — the single randomness seam of the package.

package builder

// Sampler draws uniform integers in [0, n). Intn is only ever called with
// n ≥ 1. *math/rand.Rand satisfies Sampler.
type Sampler interface {
	Intn(n int) int
}

// SequenceSampler replays a fixed script of draws, each reduced modulo n.
// It wraps around when exhausted. Useful for golden tests that need an exact
// edge sequence rather than a seeded one.
type SequenceSampler struct {
	Values []int
	pos    int
}

// Intn returns the next scripted value modulo n.
func (s *SequenceSampler) Intn(n int) int {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
