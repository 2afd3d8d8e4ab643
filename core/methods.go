// SPDX-License-Identifier: MIT
// Package: edgegen/core
//
// methods.go — representation-independent helpers over Graph.

package core

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// Populate inserts every edge into g in slice order. Duplicate edges simply
// overwrite the earlier weight. The first failing edge aborts; edges before
// it stay inserted.
func Populate(g Graph, edges []Edge) error {
	for i, e := range edges {
		if err := g.SetEdge(e.From, e.To, float64(e.Weight)); err != nil {
			return errors.Wrapf(err, "Populate: edge #%d (%d→%d)", i, e.From, e.To)
		}
	}
	return nil
}

// CountEdges sums the out-degrees of all vertices.
func CountEdges(g Graph) int {
	total := 0
	for v := 0; v < g.NumNodes(); v++ {
		d, _ := g.Degree(v) // v is always in range
		total += d
	}
	return total
}

// Format writes one line per edge as "from--weight->to", sources ascending,
// followed by a "Total Edges: N" trailer.
func Format(w io.Writer, g Graph) error {
	count := 0
	for from := 0; from < g.NumNodes(); from++ {
		nbs, err := g.Neighbours(from)
		if err != nil {
			return errors.Wrap(err, "Format")
		}
		for _, nb := range nbs {
			if _, err = fmt.Fprintf(w, "%d--%s->%d\n", from, FormatWeight(nb.Weight), nb.To); err != nil {
				return errors.Wrap(err, "Format")
			}
			count++
		}
	}
	_, err := fmt.Fprintf(w, "Total Edges: %d\n", count)
	return errors.Wrap(err, "Format")
}

// FormatWeight renders a weight in its shortest round-trip form, so integral
// weights print without a fractional part ("1", not "1.000000").
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

// BFS returns the vertices reachable from start, start first, in
// breadth-first discovery order. Neighbours are expanded in the order
// Neighbours reports them.
func BFS(g Graph, start int) ([]int, error) {
	if err := checkRange(g.NumNodes(), start); err != nil {
		return nil, errors.Wrap(err, "BFS")
	}

	visited := make([]bool, g.NumNodes())
	visited[start] = true
	order := []int{start}

	for head := 0; head < len(order); head++ {
		nbs, err := g.Neighbours(order[head])
		if err != nil {
			return nil, errors.Wrap(err, "BFS")
		}
		for _, nb := range nbs {
			if visited[nb.To] {
				continue
			}
			visited[nb.To] = true
			order = append(order, nb.To)
		}
	}
	return order, nil
}

// TransitiveClosure returns the reachability closure of start: start itself
// and every vertex reachable from it, in ascending index order.
func TransitiveClosure(g Graph, start int) ([]int, error) {
	reach, err := BFS(g, start)
	if err != nil {
		return nil, errors.Wrap(err, "TransitiveClosure")
	}
	sort.Ints(reach)
	return reach, nil
}
