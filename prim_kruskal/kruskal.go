// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes an undirected (symmetric) core.Graph and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/edgegen/core"
)

// Kruskal computes the Minimum Spanning Tree of an undirected graph.
// It uses a disjoint-set (union-find) with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : g is nil or not symmetric.
//   - ErrDisconnected : g has no vertices, or more than one component.
//
// Steps:
//  1. Validate g. n == 1 yields an empty tree.
//  2. Collect every edge u→v with u < v in row-major order; self-loops and
//     the mirrored half are skipped.
//  3. Stable-sort by ascending weight so ties keep row-major order.
//  4. Add each edge whose endpoints lie in different sets.
//  5. Fewer than n-1 edges → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g core.Graph) ([]Edge, float64, error) {
	if err := validate(g); err != nil {
		return nil, 0, err
	}
	n := g.NumNodes()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	mst := spanningForest(g)
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}
	return mst, Cost(mst), nil
}

// SpanningForest is Kruskal without the connectivity requirement: it
// returns a minimum spanning tree of every component. An empty graph yields
// an empty forest.
func SpanningForest(g core.Graph) ([]Edge, float64, error) {
	if err := validate(g); err != nil {
		return nil, 0, err
	}
	forest := spanningForest(g)
	return forest, Cost(forest), nil
}

func spanningForest(g core.Graph) []Edge {
	n := g.NumNodes()
	var edges []Edge
	for u := 0; u < n; u++ {
		nbs, _ := g.Neighbours(u) // u is always in range
		for _, nb := range nbs {
			if nb.To > u {
				edges = append(edges, Edge{From: u, To: nb.To, Weight: nb.Weight})
			}
		}
	}
	// list graphs report neighbours in insertion order
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	// Union by rank.
	union := func(ru, rv int) {
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
	}

	var mst []Edge
	for _, e := range edges {
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		union(ru, rv)
		mst = append(mst, e)
		if len(mst) == n-1 {
			break
		}
	}
	if mst == nil {
		mst = []Edge{}
	}
	return mst
}
