// SPDX-License-Identifier: MIT
// Package: edgegen/builder
//
// impl_random_edges.go - uniform edge sampling with replacement.
//
// Canonical model:
//   - m independent trials; each trial draws src then dst uniformly in [0,n).
//   - No rejection: self-loops and repeated pairs are kept.
//   - Weight policy: cfg.weightFn(cfg.sampler), drawn after the endpoints.
//
// Contract:
//   - n ≥ 0 and m ≥ 0 (else ErrBadSize).
//   - n ≥ 1 whenever m > 0 (else ErrTooFewVertices).
//   - cfg.sampler non-nil whenever m > 0 (else ErrNeedRandSource).
//   - m == 0 yields an empty, non-nil slice without touching the sampler.
//
// Complexity:
//   - Time: O(m) draws. Space: O(m) for the result.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/edgegen/core"
)

const (
	methodRandomEdges         = "RandomEdges"
	methodRandomMirroredEdges = "RandomMirroredEdges"
)

// RandomEdges returns a Constructor that samples m directed edges with both
// endpoints uniform in [0, n). Edge i is the i-th trial.
func RandomEdges(n, m int) Constructor {
	return func(cfg builderConfig) ([]core.Edge, error) {
		if err := validateSampling(methodRandomEdges, n, m, cfg); err != nil {
			return nil, err
		}
		out := make([]core.Edge, 0, m)
		for i := 0; i < m; i++ {
			out = append(out, drawEdge(n, cfg))
		}
		return out, nil
	}
}

// RandomMirroredEdges returns a Constructor that samples m pairs and emits
// every pair twice: (p1,p2) immediately followed by (p2,p1). The result has
// 2m edges; entries 2k and 2k+1 are reverses of each other with the same
// weight. This is how an undirected graph is spelled in a directed edge list.
func RandomMirroredEdges(n, m int) Constructor {
	return func(cfg builderConfig) ([]core.Edge, error) {
		if err := validateSampling(methodRandomMirroredEdges, n, m, cfg); err != nil {
			return nil, err
		}
		out := make([]core.Edge, 0, 2*m)
		for i := 0; i < m; i++ {
			e := drawEdge(n, cfg)
			out = append(out, e, e.Reverse())
		}
		return out, nil
	}
}

// drawEdge performs one trial: src, then dst, then weight.
func drawEdge(n int, cfg builderConfig) core.Edge {
	src := cfg.sampler.Intn(n)
	dst := cfg.sampler.Intn(n)
	return core.Edge{From: src, To: dst, Weight: cfg.weightFn(cfg.sampler)}
}

// validateSampling applies the shared contract in priority order.
func validateSampling(method string, n, m int, cfg builderConfig) error {
	if n < 0 || m < 0 {
		return errors.Wrapf(ErrBadSize, "%s: n=%d, m=%d must be non-negative", method, n, m)
	}
	if m > 0 && n < 1 {
		return errors.Wrapf(ErrTooFewVertices, "%s: n=%d cannot hold %d edges", method, n, m)
	}
	if m > 0 && cfg.sampler == nil {
		return errors.Wrapf(ErrNeedRandSource, "%s", method)
	}
	return nil
}
