// Package core provides the fixed-size, index-addressed graphs that edge-list
// fixtures are loaded into, plus a few representation-independent helpers.
//
// A graph G = (V,E) here has V = {0, …, n-1} fixed at construction and at
// most one directed, weighted edge per ordered pair:
//
//   - MatrixGraph — n×n adjacency matrix (gonum mat.Dense weights + presence
//     mask). O(1) edge queries, O(n²) memory, row scans in ascending order.
//   - ListGraph   — per-vertex adjacency lists in insertion order.
//     O(deg) edge queries, O(n+m) memory.
//
// Both implement Graph and convert into each other (ToList / ToMatrix).
//
// Semantics shared by both:
//
//   - SetEdge on an existing pair overwrites the weight; inserting the same
//     edge twice leaves one edge.
//   - Self-loops are ordinary edges.
//   - UpdateEdge / DelEdge / Weight on a missing edge → ErrEdgeNotFound.
//   - Any index outside [0,n) → ErrOutOfRange; nothing panics.
//
// Helpers:
//
//	Populate(g, edges)         — insert an edge slice in order.
//	CountEdges(g)              — Σ out-degree.
//	Format(w, g)               — "from--weight->to" lines + "Total Edges: N".
//	BFS(g, s)                  — vertices reachable from s, BFS order.
//	TransitiveClosure(g, s)    — vertices reachable from s (s included), ascending.
//	Degrees / DegreeSequence   — out-degrees; sorted degrees of an undirected graph.
//	IsGraphic(seq)             — Havel–Hakimi test on a degree sequence.
//
// The graphs are not safe for concurrent mutation; fixture tooling builds
// them on one goroutine.
package core
