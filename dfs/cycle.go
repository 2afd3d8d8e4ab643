// Package dfs implements cycle detection for directed and undirected core.Graphs.
// DetectCycles records the cycle closed by every DFS back edge using
// three-color marking, and reports each in a canonical rotation (for
// undirected graphs, also canonical in direction). The final list is sorted
// for deterministic output.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C=#cycles, L=avg cycle length)
//   - Memory: O(V + L_max)
package dfs

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/edgegen/core"
)

// DetectCycles inspects g for cycles.
// Returns (true, cycles, nil) if any are found; each cycle is closed, i.e.
// its first vertex is repeated at the end, and a self-loop on v is [v v].
// If no cycles, returns (false, nil, nil).
//
// With WithUndirected, g must be symmetric (core.IsSymmetric): walking back
// to the DFS parent is not a cycle, so a tree stored as u→v, v→u pairs is
// acyclic.
func DetectCycles(g core.Graph, opts ...Option) (bool, [][]int, error) {
	if g == nil {
		return false, nil, ErrGraphNil
	}
	cfg := buildOptions(opts)
	if cfg.Undirected && !core.IsSymmetric(g) {
		return false, nil, errors.Wrap(core.ErrAsymmetric, "dfs: DetectCycles")
	}

	d := &detector{
		g:     g,
		opts:  cfg,
		state: make([]int, g.NumNodes()),
		seen:  make(map[string]struct{}),
	}
	for v := 0; v < g.NumNodes(); v++ {
		if d.state[v] == White {
			if err := d.visit(v, -1); err != nil {
				return false, nil, errors.Wrap(err, "dfs: DetectCycles")
			}
		}
	}

	sort.Slice(d.cycles, func(i, j int) bool {
		return Compare(d.cycles[i], d.cycles[j]) < 0
	})
	if len(d.cycles) == 0 {
		return false, nil, nil
	}
	return true, d.cycles, nil
}

// HasCycle reports whether DetectCycles would find anything.
func HasCycle(g core.Graph, opts ...Option) (bool, error) {
	has, _, err := DetectCycles(g, opts...)
	return has, err
}

type detector struct {
	g      core.Graph
	opts   Options
	state  []int
	path   []int
	seen   map[string]struct{}
	cycles [][]int
}

func (d *detector) visit(id, parent int) error {
	if err := d.opts.canceled(); err != nil {
		return err
	}
	d.state[id] = Gray
	d.path = append(d.path, id)

	nbs, err := d.g.Neighbours(id)
	if err != nil {
		return errors.Wrapf(err, "neighbours of %d", id)
	}
	for _, nb := range nbs {
		if d.opts.Undirected && nb.To == parent {
			continue
		}
		switch d.state[nb.To] {
		case White:
			if err = d.visit(nb.To, id); err != nil {
				return err
			}
		case Gray:
			d.record(nb.To)
		}
	}

	d.path = d.path[:len(d.path)-1]
	d.state[id] = Black
	return nil
}

// record extracts the cycle start → … → top-of-path → start and keeps it if
// its canonical form is new.
func (d *detector) record(start int) {
	idx := IndexOf(d.path, start)
	canon := canonical(d.path[idx:], d.opts.Undirected)
	sig := JoinSig(canon)
	if _, ok := d.seen[sig]; ok {
		return
	}
	d.seen[sig] = struct{}{}
	d.cycles = append(d.cycles, canon)
}

// canonical returns the closed minimal rotation of the open cycle base; for
// undirected cycles the reversed walk competes too.
func canonical(base []int, undirected bool) []int {
	pick := MinimalRotation(base)
	if undirected {
		if rev := MinimalRotation(Reverse(base)); Compare(rev, pick) < 0 {
			pick = rev
		}
	}
	return append(pick, pick[0])
}
