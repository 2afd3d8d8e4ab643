// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/edgegen/core"
)

// ErrInvalidGraph indicates that MST algorithms require a non-nil undirected
// graph, i.e. a symmetric one (see core.IsSymmetric).
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires an undirected graph")

// ErrDisconnected indicates that the graph is not connected, so no spanning
// tree covers all vertices. It also applies to the empty graph.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Edge is one undirected tree edge. Kruskal reports From < To; Prim reports
// From as the endpoint already in the tree.
type Edge struct {
	From, To int
	Weight   float64
}

// MSTOptions configures which MST algorithm to run, and for Prim, which
// starting vertex to use.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim's algorithm; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Kruskal rooted at vertex 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Compute applies opts to DefaultOptions and runs the selected algorithm.
// An unknown method yields ErrInvalidGraph.
func Compute(g core.Graph, opts ...Option) ([]Edge, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, cfg.Root)
	default:
		return nil, 0, errors.Wrapf(ErrInvalidGraph, "unknown method %q", cfg.Method)
	}
}

// validate rejects nil and directed graphs.
func validate(g core.Graph) error {
	if g == nil {
		return errors.Wrap(ErrInvalidGraph, "nil graph")
	}
	if !core.IsSymmetric(g) {
		return errors.Wrap(ErrInvalidGraph, core.ErrAsymmetric.Error())
	}
	return nil
}

// Cost sums the weights of edges.
func Cost(edges []Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}
	return total
}

// ToGraph stores edges in both directions in a new n-vertex MatrixGraph,
// the symmetric form every other package expects.
func ToGraph(n int, edges []Edge) (*core.MatrixGraph, error) {
	g, err := core.NewMatrixGraph(n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = g.SetEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
		if err = g.SetEdge(e.To, e.From, e.Weight); err != nil {
			return nil, err
		}
	}
	return g, nil
}
