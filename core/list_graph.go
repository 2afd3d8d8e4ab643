// SPDX-License-Identifier: MIT
// Package: edgegen/core
//
// list_graph.go — adjacency-list Graph.
//
// Neighbours are kept in insertion order; overwriting an existing edge keeps
// its position. Lookups are O(deg(from)).

package core

import "github.com/pkg/errors"

// ListGraph is a fixed-size directed graph backed by adjacency lists.
type ListGraph struct {
	adj [][]Neighbour
}

var _ Graph = (*ListGraph)(nil)

// NewListGraph allocates n empty adjacency lists.
func NewListGraph(n int) (*ListGraph, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeSize, "NewListGraph(%d)", n)
	}
	return &ListGraph{adj: make([][]Neighbour, n)}, nil
}

// NumNodes returns the number of adjacency lists.
func (g *ListGraph) NumNodes() int { return len(g.adj) }

// find returns the position of to in from's list, or -1.
func (g *ListGraph) find(from, to int) int {
	for i, nb := range g.adj[from] {
		if nb.To == to {
			return i
		}
	}
	return -1
}

// SetEdge appends from→to, or overwrites the weight in place if present.
func (g *ListGraph) SetEdge(from, to int, w float64) error {
	if err := checkRange(len(g.adj), from, to); err != nil {
		return errors.Wrap(err, "ListGraph.SetEdge")
	}
	if i := g.find(from, to); i >= 0 {
		g.adj[from][i].Weight = w
		return nil
	}
	g.adj[from] = append(g.adj[from], Neighbour{To: to, Weight: w})
	return nil
}

// UpdateEdge changes the weight of an existing edge.
func (g *ListGraph) UpdateEdge(from, to int, w float64) error {
	if err := checkRange(len(g.adj), from, to); err != nil {
		return errors.Wrap(err, "ListGraph.UpdateEdge")
	}
	i := g.find(from, to)
	if i < 0 {
		return errors.Wrapf(ErrEdgeNotFound, "ListGraph.UpdateEdge(%d→%d)", from, to)
	}
	g.adj[from][i].Weight = w
	return nil
}

// DelEdge removes from→to, preserving the order of the remaining entries.
func (g *ListGraph) DelEdge(from, to int) error {
	if err := checkRange(len(g.adj), from, to); err != nil {
		return errors.Wrap(err, "ListGraph.DelEdge")
	}
	i := g.find(from, to)
	if i < 0 {
		return errors.Wrapf(ErrEdgeNotFound, "ListGraph.DelEdge(%d→%d)", from, to)
	}
	g.adj[from] = append(g.adj[from][:i], g.adj[from][i+1:]...)
	return nil
}

// HasEdge reports whether from→to exists.
func (g *ListGraph) HasEdge(from, to int) (bool, error) {
	if err := checkRange(len(g.adj), from, to); err != nil {
		return false, errors.Wrap(err, "ListGraph.HasEdge")
	}
	return g.find(from, to) >= 0, nil
}

// Weight returns the weight of from→to, or ErrEdgeNotFound.
func (g *ListGraph) Weight(from, to int) (float64, error) {
	if err := checkRange(len(g.adj), from, to); err != nil {
		return 0, errors.Wrap(err, "ListGraph.Weight")
	}
	i := g.find(from, to)
	if i < 0 {
		return 0, errors.Wrapf(ErrEdgeNotFound, "ListGraph.Weight(%d→%d)", from, to)
	}
	return g.adj[from][i].Weight, nil
}

// Neighbours returns a copy of from's list in insertion order.
func (g *ListGraph) Neighbours(from int) ([]Neighbour, error) {
	if err := checkRange(len(g.adj), from); err != nil {
		return nil, errors.Wrap(err, "ListGraph.Neighbours")
	}
	out := make([]Neighbour, len(g.adj[from]))
	copy(out, g.adj[from])
	return out, nil
}

// Degree returns the length of from's list.
func (g *ListGraph) Degree(from int) (int, error) {
	if err := checkRange(len(g.adj), from); err != nil {
		return 0, errors.Wrap(err, "ListGraph.Degree")
	}
	return len(g.adj[from]), nil
}

// ToMatrix copies every edge into a new MatrixGraph.
func (g *ListGraph) ToMatrix() *MatrixGraph {
	// n >= 0 always holds here, so the constructor cannot fail.
	out, _ := NewMatrixGraph(len(g.adj))
	for from, list := range g.adj {
		for _, nb := range list {
			out.weights.Set(from, nb.To, nb.Weight)
			out.present[from*out.n+nb.To] = true
		}
	}
	return out
}
