// Package dijkstra implements Dijkstra's shortest-path algorithm on
// index-addressed core.Graphs.
//
// Implementation notes:
//
//   - An upfront scan of all edges (O(E)) rejects negative weights.
//   - Edges with weight ≥ InfEdgeThreshold are skipped.
//   - Candidates farther than MaxDistance are never queued.
//   - Lazy decrease-key: duplicates are pushed and stale entries ignored.
//   - Ties in the heap break on the smaller vertex index, so results do not
//     depend on heap internals.
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/edgegen/core"
)

// Result holds the shortest-path tree rooted at Source.
type Result struct {
	// Source is the root vertex.
	Source int
	// Dist[v] is the shortest distance to v, +Inf if v was not reached.
	Dist []float64
	// Prev[v] is the predecessor of v on its shortest path, -1 for the
	// source and for unreached vertices.
	Prev []int
}

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g.
//
// Preconditions (checked in order):
//  1. Source was given (ErrNoSource).
//  2. g is non-nil (ErrNilGraph).
//  3. Source lies in [0, n) (core.ErrOutOfRange).
//  4. No edge has a negative weight (ErrNegativeWeight).
//
// Complexity: O((V + E) log V) time for list graphs, O(V² log V) for matrix
// graphs whose rows are scanned in full. O(V + E) space.
func Dijkstra(g core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == noSource {
		return nil, ErrNoSource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NumNodes()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, errors.Wrapf(core.ErrOutOfRange, "dijkstra: source %d not in [0,%d)", cfg.Source, n)
	}

	for u := 0; u < n; u++ {
		nbs, err := g.Neighbours(u)
		if err != nil {
			return nil, errors.Wrapf(err, "dijkstra: neighbours of %d", u)
		}
		for _, nb := range nbs {
			if nb.Weight < 0 {
				return nil, errors.Wrapf(ErrNegativeWeight, "edge %d→%d weight=%s", u, nb.To, core.FormatWeight(nb.Weight))
			}
		}
	}

	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			Source: cfg.Source,
			Dist:   make([]float64, n),
			Prev:   make([]int, n),
		},
		visited: make([]bool, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}
	return r.res, nil
}

// PathLength returns the shortest distance from Source to dest.
func (r *Result) PathLength(dest int) (float64, error) {
	if dest < 0 || dest >= len(r.Dist) {
		return 0, errors.Wrapf(core.ErrOutOfRange, "dijkstra: destination %d not in [0,%d)", dest, len(r.Dist))
	}
	if math.IsInf(r.Dist[dest], 1) {
		return 0, errors.Wrapf(ErrNoPath, "%d→%d", r.Source, dest)
	}
	return r.Dist[dest], nil
}

// Path returns the vertex sequence of the shortest path Source → dest,
// both endpoints included.
func (r *Result) Path(dest int) ([]int, error) {
	if _, err := r.PathLength(dest); err != nil {
		return nil, err
	}
	var rev []int
	for v := dest; v != -1; v = r.Prev[v] {
		rev = append(rev, v)
	}
	out := make([]int, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}
	return out, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       core.Graph
	options Options
	res     *Result
	visited []bool
	pq      nodePQ
}

// init sets every distance to +Inf and queues the source at distance 0.
func (r *runner) init() {
	for v := range r.res.Dist {
		r.res.Dist[v] = math.Inf(1)
		r.res.Prev[v] = -1
	}
	r.res.Dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unvisited vertex until the heap drains.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}
	return nil
}

// relax tries to improve every unvisited neighbour of u.
func (r *runner) relax(u int) error {
	nbs, err := r.g.Neighbours(u)
	if err != nil {
		return errors.Wrapf(err, "dijkstra: neighbours of %d", u)
	}
	for _, nb := range nbs {
		v := nb.To
		if r.visited[v] || nb.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.res.Dist[u] + nb.Weight
		if newDist > r.options.MaxDistance || newDist >= r.res.Dist[v] {
			continue
		}
		r.res.Dist[v] = newDist
		r.res.Prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
	return nil
}

// nodeItem is a queued (vertex, tentative distance) pair.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
