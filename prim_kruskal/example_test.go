package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/edgegen/internal/fixtures"
	"github.com/katalvlaran/edgegen/prim_kruskal"
)

// ExampleKruskal computes the MST of a weighted triangle:
//
//	A(0)—B(1) weight 1, B—C(2) weight 2, A—C weight 3.
//
// The cheapest two edges win.
func ExampleKruskal() {
	g := fixtures.Matrix(3, fixtures.Undirected([][3]int64{{0, 1, 1}, {1, 2, 2}, {0, 2, 3}}))

	mst, cost, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range mst {
		fmt.Printf("%d-%d (%g)\n", e.From, e.To, e.Weight)
	}
	fmt.Println("MST Cost:", cost)
	// Output:
	// 0-1 (1)
	// 1-2 (2)
	// MST Cost: 3
}

// ExamplePrim grows the same tree from vertex 2.
func ExamplePrim() {
	g := fixtures.Matrix(3, fixtures.Undirected([][3]int64{{0, 1, 1}, {1, 2, 2}, {0, 2, 3}}))

	mst, cost, _ := prim_kruskal.Prim(g, 2)
	for _, e := range mst {
		fmt.Printf("%d-%d (%g)\n", e.From, e.To, e.Weight)
	}
	fmt.Println("MST Cost:", cost)
	// Output:
	// 2-1 (2)
	// 1-0 (1)
	// MST Cost: 3
}
