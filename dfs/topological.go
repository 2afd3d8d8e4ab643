// Package dfs provides a DFS-based topological sort for directed acyclic core.Graphs.
//
// Vertices are started in ascending index order and neighbours expanded in
// graph order; the reversed post-order is returned. Any back edge, self-loops
// included, aborts with ErrCycleDetected.
package dfs

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/edgegen/core"
)

// TopologicalSort returns an ordering of all vertices in which every edge
// u→v has u before v. Honors WithContext; other options are ignored.
func TopologicalSort(g core.Graph, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	sorter := &topoSorter{
		g:     g,
		opts:  buildOptions(opts),
		state: make([]int, g.NumNodes()),
		order: make([]int, 0, g.NumNodes()),
	}
	for v := 0; v < g.NumNodes(); v++ {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}

	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}
	return sorter.order, nil
}

type topoSorter struct {
	g     core.Graph
	opts  Options
	state []int
	order []int
}

func (t *topoSorter) visit(id int) error {
	if err := t.opts.canceled(); err != nil {
		return err
	}
	switch t.state[id] {
	case Gray:
		return errors.Wrapf(ErrCycleDetected, "at vertex %d", id)
	case Black:
		return nil
	}
	t.state[id] = Gray

	nbs, err := t.g.Neighbours(id)
	if err != nil {
		return errors.Wrapf(err, "dfs: neighbours of %d", id)
	}
	for _, nb := range nbs {
		if err = t.visit(nb.To); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)
	return nil
}
