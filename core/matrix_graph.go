// SPDX-License-Identifier: MIT
// Package: edgegen/core
//
// matrix_graph.go — adjacency-matrix Graph.
//
// Storage:
//   • weights: n×n gonum dense matrix, row = source, column = destination.
//   • present: n×n row-major mask; a zero weight is a valid edge, so
//     presence cannot be inferred from the matrix alone.
//
// Complexity:
//   • Construction O(n²) memory; SetEdge/HasEdge/Weight O(1);
//     Neighbours/Degree O(n).

package core

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// MatrixGraph is a fixed-size directed graph backed by an adjacency matrix.
type MatrixGraph struct {
	n       int
	weights *mat.Dense // nil when n == 0 (gonum rejects empty matrices)
	present []bool
}

var _ Graph = (*MatrixGraph)(nil)

// NewMatrixGraph allocates an empty n-vertex adjacency matrix.
func NewMatrixGraph(n int) (*MatrixGraph, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeSize, "NewMatrixGraph(%d)", n)
	}
	g := &MatrixGraph{n: n, present: make([]bool, n*n)}
	if n > 0 {
		g.weights = mat.NewDense(n, n, nil)
	}
	return g, nil
}

// NumNodes returns the matrix dimension.
func (g *MatrixGraph) NumNodes() int { return g.n }

// SetEdge inserts or overwrites from→to.
func (g *MatrixGraph) SetEdge(from, to int, w float64) error {
	if err := checkRange(g.n, from, to); err != nil {
		return errors.Wrap(err, "MatrixGraph.SetEdge")
	}
	g.weights.Set(from, to, w)
	g.present[from*g.n+to] = true
	return nil
}

// UpdateEdge changes the weight of an existing edge.
func (g *MatrixGraph) UpdateEdge(from, to int, w float64) error {
	ok, err := g.HasEdge(from, to)
	if err != nil {
		return errors.Wrap(err, "MatrixGraph.UpdateEdge")
	}
	if !ok {
		return errors.Wrapf(ErrEdgeNotFound, "MatrixGraph.UpdateEdge(%d→%d)", from, to)
	}
	g.weights.Set(from, to, w)
	return nil
}

// DelEdge removes from→to and zeroes its weight.
func (g *MatrixGraph) DelEdge(from, to int) error {
	ok, err := g.HasEdge(from, to)
	if err != nil {
		return errors.Wrap(err, "MatrixGraph.DelEdge")
	}
	if !ok {
		return errors.Wrapf(ErrEdgeNotFound, "MatrixGraph.DelEdge(%d→%d)", from, to)
	}
	g.weights.Set(from, to, 0)
	g.present[from*g.n+to] = false
	return nil
}

// HasEdge reports whether from→to exists.
func (g *MatrixGraph) HasEdge(from, to int) (bool, error) {
	if err := checkRange(g.n, from, to); err != nil {
		return false, errors.Wrap(err, "MatrixGraph.HasEdge")
	}
	return g.present[from*g.n+to], nil
}

// Weight returns the weight of from→to, or ErrEdgeNotFound.
func (g *MatrixGraph) Weight(from, to int) (float64, error) {
	ok, err := g.HasEdge(from, to)
	if err != nil {
		return 0, errors.Wrap(err, "MatrixGraph.Weight")
	}
	if !ok {
		return 0, errors.Wrapf(ErrEdgeNotFound, "MatrixGraph.Weight(%d→%d)", from, to)
	}
	return g.weights.At(from, to), nil
}

// Neighbours scans row from in ascending column order.
func (g *MatrixGraph) Neighbours(from int) ([]Neighbour, error) {
	if err := checkRange(g.n, from); err != nil {
		return nil, errors.Wrap(err, "MatrixGraph.Neighbours")
	}
	var out []Neighbour
	row := g.present[from*g.n : (from+1)*g.n]
	for to, ok := range row {
		if ok {
			out = append(out, Neighbour{To: to, Weight: g.weights.At(from, to)})
		}
	}
	return out, nil
}

// Degree counts outgoing edges of from.
func (g *MatrixGraph) Degree(from int) (int, error) {
	if err := checkRange(g.n, from); err != nil {
		return 0, errors.Wrap(err, "MatrixGraph.Degree")
	}
	count := 0
	for _, ok := range g.present[from*g.n : (from+1)*g.n] {
		if ok {
			count++
		}
	}
	return count, nil
}

// Weights exposes a read-only view of the weight matrix. Entries of absent
// edges are zero. Returns nil for an empty graph.
func (g *MatrixGraph) Weights() mat.Matrix {
	if g.weights == nil {
		return nil
	}
	return g.weights
}

// ToList copies every edge into a new ListGraph in row-major order.
func (g *MatrixGraph) ToList() *ListGraph {
	out := &ListGraph{adj: make([][]Neighbour, g.n)}
	for from := 0; from < g.n; from++ {
		for to := 0; to < g.n; to++ {
			if g.present[from*g.n+to] {
				out.adj[from] = append(out.adj[from], Neighbour{To: to, Weight: g.weights.At(from, to)})
			}
		}
	}
	return out
}
