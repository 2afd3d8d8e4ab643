// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted core.Graphs.
//
// Options:
//
//	– Source:           index of the starting vertex (required, in [0,n)).
//	– MaxDistance:      optional cap on distances to explore; vertices beyond stay unreached.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNoSource       if no Source option was given.
//	– ErrNilGraph       if the graph is nil.
//	– ErrNegativeWeight if a negative edge weight is present.
//	– ErrNoPath         if a path to an unreached vertex is requested.
//	– core.ErrOutOfRange for a source or destination outside [0,n).
package dijkstra

import (
	"math"

	"github.com/pkg/errors"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that Dijkstra was called without Source.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates the destination was not reached from the source.
	ErrNoPath = errors.New("dijkstra: destination not reachable")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// negative, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// noSource marks Options.Source as unset.
const noSource = -1

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source           int     // index of the source vertex
	MaxDistance      float64 // maximum distance to explore
	InfEdgeThreshold float64 // weight at or above which edges are not traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex. Must be given.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithMaxDistance sets a maximum distance threshold. Vertices whose shortest
// distance would exceed max are left unreached. Panics if max < 0.
func WithMaxDistance(max float64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge with weight ≥ threshold as absent.
// Panics if threshold ≤ 0.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no source, no distance cap and no
// impassable edges.
func DefaultOptions() Options {
	return Options{
		Source:           noSource,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
