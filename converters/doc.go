// Package converters provides two-way adapters between core.Graph and
// gonum/graph, plus Graphviz DOT export through gonum's dot encoder.
//
// Vertex i of a core.Graph becomes gonum node ID i. gonum's simple graphs
// reject self edges, so ToGonum drops self-loops and reports how many it
// dropped; callers that need loops should use tikz or the edge-list format.
package converters
