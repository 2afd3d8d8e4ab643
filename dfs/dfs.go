// Package dfs implements a recursive depth-first traversal on core.Graph.
package dfs

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/edgegen/core"
)

// DFS visits every vertex reachable from start in depth-first pre-order and
// returns that order. Neighbours are expanded in the order the graph reports
// them (ascending for MatrixGraph, insertion order for ListGraph).
//
// Errors: ErrGraphNil, core.ErrOutOfRange for start, the context error on
// cancellation, or whatever OnVisit returns.
//
// Complexity: O(V + E) time, O(V) recursion depth.
func DFS(g core.Graph, start int, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if start < 0 || start >= g.NumNodes() {
		return nil, errors.Wrapf(core.ErrOutOfRange, "dfs: start %d not in [0,%d)", start, g.NumNodes())
	}

	w := &walker{
		g:       g,
		opts:    buildOptions(opts),
		visited: make([]bool, g.NumNodes()),
	}
	if err := w.visit(start, 0); err != nil {
		return nil, err
	}
	return w.order, nil
}

type walker struct {
	g       core.Graph
	opts    Options
	visited []bool
	order   []int
}

func (w *walker) visit(v, depth int) error {
	if err := w.opts.canceled(); err != nil {
		return err
	}
	w.visited[v] = true
	w.order = append(w.order, v)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			return err
		}
	}
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return nil
	}

	nbs, err := w.g.Neighbours(v)
	if err != nil {
		return errors.Wrapf(err, "dfs: neighbours of %d", v)
	}
	for _, nb := range nbs {
		if w.visited[nb.To] {
			continue
		}
		if err = w.visit(nb.To, depth+1); err != nil {
			return err
		}
	}
	return nil
}
