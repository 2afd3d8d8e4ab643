// SPDX-License-Identifier: MIT
// Package: edgegen/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildEdges(bopts, cons...). Resolves cfg, runs cons in
//     order and concatenates their edges.
//   - All constructors share the resolved config, hence the same Sampler:
//     composing two constructors continues one random stream.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/edgegen/core"
)

// Constructor samples a batch of edges using the resolved builderConfig.
// Constructors MUST validate parameters before drawing, return sentinel
// errors (no panics) and emit edges in a stable, documented order.
type Constructor func(cfg builderConfig) ([]core.Edge, error)

// BuildEdges resolves the builder configuration from bopts and applies all
// constructors in order, concatenating their output.
// Any constructor error is wrapped with the context "BuildEdges" and returned
// immediately; edges of earlier constructors are discarded.
func BuildEdges(bopts []BuilderOption, cons ...Constructor) ([]core.Edge, error) {
	cfg := newBuilderConfig(bopts...)

	var out []core.Edge
	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "BuildEdges: nil constructor at index %d", i)
		}
		edges, err := fn(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "BuildEdges")
		}
		out = append(out, edges...)
	}
	return out, nil
}
