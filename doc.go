// Package edgegen generates random graph fixtures and renders them.
//
// What is in the box?
//
//	builder/    — seeded edge sampling (RandomEdges, RandomMirroredEdges)
//	edgelist/   — "<src> <dst> <weight>" text format: Writer, Read
//	cppgen/     — emits a C++ program that rebuilds a graph via gl::MGraph
//	core/       — MatrixGraph / ListGraph, Format, BFS, TransitiveClosure, degrees
//	dijkstra/   — single-source shortest paths
//	prim_kruskal/ — minimum spanning trees and forests
//	dfs/        — depth-first order, cycle detection, topological sort
//	tikz/       — standalone LaTeX (tkz-graph) export
//	converters/ — gonum/graph adapters and Graphviz DOT export
//
// Commands:
//
//	cmd/writeedges      — directed edge list, "[nodes edges]" (default 10 60)
//	cmd/writeundirected — 20 nodes, 50 mirrored pairs (100 lines)
//	cmd/writecpp        — C++ source, 100 nodes, 200 edges (each set twice)
//	cmd/rendergraph     — edge list → text | tikz | dot, or one analysis
//	                      (-closure, -bfs, -dfs, -shortest, -mst, -cycles, -topo, -degrees)
//
// Every command accepts -seed; the same seed always reproduces the same file.
//
// Quick ASCII example of a mirrored pair:
//
//	3 1 1   ─┐ one sampled pair
//	1 3 1   ─┘ and its reverse
package edgegen
