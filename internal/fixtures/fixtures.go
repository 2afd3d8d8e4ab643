// Package fixtures holds the small reference graphs the algorithm packages
// are checked against. Every fixture is undirected, spelled as a symmetric
// edge list the way cmd/writeundirected writes one.
package fixtures

import (
	"github.com/katalvlaran/edgegen/core"
)

// Dijkstra9Nodes is the vertex count of Dijkstra9.
const Dijkstra9Nodes = 9

// Dijkstra9 is the classic 9-vertex, 14-edge weighted graph used to
// illustrate Dijkstra and Kruskal. From vertex 0 the shortest distances are
// Dijkstra9Dist; its minimum spanning tree costs 37.
func Dijkstra9() []core.Edge {
	return Undirected([][3]int64{
		{0, 1, 4}, {0, 7, 8},
		{1, 2, 8}, {1, 7, 11},
		{2, 3, 7}, {2, 8, 2}, {2, 5, 4},
		{3, 4, 9}, {3, 5, 14},
		{4, 5, 10},
		{5, 6, 2},
		{6, 7, 1}, {6, 8, 6},
		{7, 8, 7},
	})
}

// Dijkstra9Dist are the shortest distances from vertex 0 in Dijkstra9.
var Dijkstra9Dist = []float64{0, 4, 12, 19, 21, 11, 9, 8, 14}

// Dijkstra9MSTCost is the weight of a minimum spanning tree of Dijkstra9.
const Dijkstra9MSTCost = 37

// Tree12Nodes is the vertex count of Tree12.
const Tree12Nodes = 12

// Tree12 is an unweighted tree on 12 vertices rooted at 0:
//
//	0 ── 1 ── 3 ── 7
//	│    └─── 4 ── 8
//	│         └─── 9
//	└─── 2 ── 5 ── 10
//	     └─── 6 ── 11
func Tree12() []core.Edge {
	return Undirected([][3]int64{
		{0, 1, 1}, {0, 2, 1},
		{1, 3, 1}, {1, 4, 1},
		{2, 5, 1}, {2, 6, 1},
		{3, 7, 1},
		{4, 8, 1}, {4, 9, 1},
		{5, 10, 1},
		{6, 11, 1},
	})
}

// Graph10Nodes is the vertex count of Graph10.
const Graph10Nodes = 10

// Graph10 is a connected, unweighted 10-vertex graph with two independent
// cycles: 0–1–2–3–0 and 5–6–7–5, joined through the path 3–4–5 and with
// the tail 7–8–9.
func Graph10() []core.Edge {
	return Undirected([][3]int64{
		{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 0, 1},
		{3, 4, 1}, {4, 5, 1},
		{5, 6, 1}, {6, 7, 1}, {7, 5, 1},
		{7, 8, 1}, {8, 9, 1},
	})
}

// Undirected expands {u, v, weight} triples into u→v, v→u edge pairs.
func Undirected(triples [][3]int64) []core.Edge {
	out := make([]core.Edge, 0, 2*len(triples))
	for _, t := range triples {
		e := core.Edge{From: int(t[0]), To: int(t[1]), Weight: t[2]}
		out = append(out, e, e.Reverse())
	}
	return out
}

// Matrix loads edges into an n-vertex MatrixGraph and panics on failure.
// Fixtures are static, so a failure is a programming error.
func Matrix(n int, edges []core.Edge) *core.MatrixGraph {
	g, err := core.NewMatrixGraph(n)
	if err != nil {
		panic(err)
	}
	if err = core.Populate(g, edges); err != nil {
		panic(err)
	}
	return g
}

// List loads edges into an n-vertex ListGraph and panics on failure.
func List(n int, edges []core.Edge) *core.ListGraph {
	g, err := core.NewListGraph(n)
	if err != nil {
		panic(err)
	}
	if err = core.Populate(g, edges); err != nil {
		panic(err)
	}
	return g
}
