// Package dfs defines types and options for depth-first search traversal,
// cycle detection and topological sorting on index-addressed core.Graphs.
package dfs

import (
	"context"

	"github.com/pkg/errors"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS,
	// TopologicalSort, or DetectCycles.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that TopologicalSort met a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS, DetectCycles and
// TopologicalSort. Options that do not apply to a call are ignored.
type Option func(*Options)

// Options holds configurable parameters for the traversals.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered
	// (pre-order) together with its depth. Returning an error aborts DFS.
	OnVisit func(v, depth int) error

	// MaxDepth, if non-negative, limits DFS to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// Undirected makes DetectCycles read a symmetric graph as undirected:
	// the edge back to the DFS parent is not a cycle, and cycles equal up to
	// direction are reported once.
	Undirected bool
}

// DefaultOptions returns Options with a background context, no hook, no
// depth limit and directed cycle semantics.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a pre-order hook.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits traversal depth. Panics if d < 0.
func WithMaxDepth(d int) Option {
	if d < 0 {
		panic("dfs: WithMaxDepth(d<0)")
	}
	return func(o *Options) {
		o.MaxDepth = d
	}
}

// WithUndirected selects undirected cycle semantics for DetectCycles.
func WithUndirected() Option {
	return func(o *Options) {
		o.Undirected = true
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// canceled reports the context error, if any, without blocking.
func (o Options) canceled() error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
		return nil
	}
}
