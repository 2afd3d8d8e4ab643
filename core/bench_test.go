// Package core_test provides benchmarks for core graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/edgegen/builder"
	"github.com/katalvlaran/edgegen/core"
)

// benchEdges is the 100-vertex / 200-edge fixture size used by the C++ generator.
func benchEdges(b *testing.B) []core.Edge {
	b.Helper()
	edges, err := builder.BuildEdges(
		[]builder.BuilderOption{builder.WithSeed(1)},
		builder.RandomEdges(100, 200),
	)
	if err != nil {
		b.Fatal(err)
	}
	return edges
}

// BenchmarkPopulate_Matrix measures loading a fixture into a MatrixGraph.
func BenchmarkPopulate_Matrix(b *testing.B) {
	edges := benchEdges(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, _ := core.NewMatrixGraph(100)
		_ = core.Populate(g, edges)
	}
}

// BenchmarkPopulate_List measures loading a fixture into a ListGraph.
func BenchmarkPopulate_List(b *testing.B) {
	edges := benchEdges(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, _ := core.NewListGraph(100)
		_ = core.Populate(g, edges)
	}
}

// BenchmarkTransitiveClosure measures a full reachability sweep from vertex 0.
func BenchmarkTransitiveClosure(b *testing.B) {
	g, _ := core.NewMatrixGraph(100)
	_ = core.Populate(g, benchEdges(b))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.TransitiveClosure(g, 0)
	}
}
