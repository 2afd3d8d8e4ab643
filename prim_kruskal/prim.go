// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree algorithm.
package prim_kruskal

import (
	"container/heap"

	"github.com/pkg/errors"

	"github.com/katalvlaran/edgegen/core"
)

// Prim grows a Minimum Spanning Tree from root, always adding the cheapest
// edge that leaves the current tree.
//
// Error Conditions:
//   - ErrInvalidGraph   : g is nil or not symmetric.
//   - ErrDisconnected   : g has no vertices, or root cannot reach them all.
//   - core.ErrOutOfRange: root not in [0, n).
//
// Ties between equal weights break on the smaller destination index.
//
// Complexity: O(E log E). Memory: O(V + E).
func Prim(g core.Graph, root int) ([]Edge, float64, error) {
	if err := validate(g); err != nil {
		return nil, 0, err
	}
	n := g.NumNodes()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if root < 0 || root >= n {
		return nil, 0, errors.Wrapf(core.ErrOutOfRange, "prim_kruskal: root %d not in [0,%d)", root, n)
	}

	visited := make([]bool, n)
	mst := make([]Edge, 0, n-1)
	pq := &edgePQ{}
	heap.Init(pq)

	push := func(u int) {
		nbs, _ := g.Neighbours(u) // u is always in range
		for _, nb := range nbs {
			if !visited[nb.To] {
				heap.Push(pq, Edge{From: u, To: nb.To, Weight: nb.Weight})
			}
		}
	}

	visited[root] = true
	push(root)
	for pq.Len() > 0 && len(mst) < n-1 {
		e := heap.Pop(pq).(Edge)
		if visited[e.To] {
			continue
		}
		visited[e.To] = true
		mst = append(mst, e)
		push(e.To)
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}
	return mst, Cost(mst), nil
}

// edgePQ is a min-heap of candidate edges ordered by weight, then destination.
type edgePQ []Edge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].Weight != pq[j].Weight {
		return pq[i].Weight < pq[j].Weight
	}
	return pq[i].To < pq[j].To
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(Edge)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]
	return edge
}
