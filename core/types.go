// SPDX-License-Identifier: MIT
// Package: edgegen/core
//
// types.go — Edge, Neighbour, the Graph contract and sentinel errors.
//
// Contract:
//   • Vertices are dense indices in [0, NumNodes()); the vertex set is fixed
//     at construction time.
//   • At most one edge per ordered pair (from,to). SetEdge on an existing
//     pair overwrites its weight, so re-inserting the same edge is a no-op
//     apart from the weight.
//   • Self-loops are allowed.
//   • Out-of-range indices never panic; they return ErrOutOfRange.

package core

import "github.com/pkg/errors"

var (
	// ErrOutOfRange indicates a vertex index outside [0, NumNodes()).
	ErrOutOfRange = errors.New("core: vertex index out of range")

	// ErrEdgeNotFound indicates an operation referenced a missing edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeSize indicates a graph was requested with fewer than zero vertices.
	ErrNegativeSize = errors.New("core: negative vertex count")
)

// DefaultWeight is the weight used by edge-list fixtures when nothing else
// is configured.
const DefaultWeight int64 = 1

// Edge is a directed, weighted connection From→To between two vertex indices.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the edge cost.
	Weight int64
}

// Reverse returns the same edge with its endpoints swapped.
func (e Edge) Reverse() Edge {
	return Edge{From: e.To, To: e.From, Weight: e.Weight}
}

// Neighbour is one outgoing adjacency entry: the destination and its weight.
type Neighbour struct {
	To     int
	Weight float64
}

// Graph is the common contract of MatrixGraph and ListGraph.
type Graph interface {
	// NumNodes returns the fixed number of vertices.
	NumNodes() int

	// SetEdge inserts from→to with weight w, or overwrites the weight of an
	// existing edge.
	SetEdge(from, to int, w float64) error

	// UpdateEdge changes the weight of an existing edge.
	UpdateEdge(from, to int, w float64) error

	// DelEdge removes an existing edge.
	DelEdge(from, to int) error

	// HasEdge reports whether from→to exists.
	HasEdge(from, to int) (bool, error)

	// Weight returns the weight of an existing edge.
	Weight(from, to int) (float64, error)

	// Neighbours lists outgoing edges of from in ascending or insertion
	// order, depending on the representation.
	Neighbours(from int) ([]Neighbour, error)

	// Degree returns the out-degree of from.
	Degree(from int) (int, error)
}

// checkRange validates that every index lies in [0, n).
func checkRange(n int, idx ...int) error {
	for _, i := range idx {
		if i < 0 || i >= n {
			return errors.Wrapf(ErrOutOfRange, "index %d not in [0,%d)", i, n)
		}
	}
	return nil
}
