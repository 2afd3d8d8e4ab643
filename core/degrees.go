// SPDX-License-Identifier: MIT
// Package: edgegen/core
//
// degrees.go — degree lists, degree sequences and the Havel–Hakimi test.
//
// An undirected graph is stored as a symmetric directed one: every edge
// u→v has a twin v→u of equal weight. For such graphs the out-degree is the
// ordinary degree, and a self-loop counts once.

package core

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrAsymmetric indicates an operation that needs an undirected (symmetric)
// graph received a directed one.
var ErrAsymmetric = errors.New("core: graph is not symmetric")

// IsSymmetric reports whether every edge u→v has a reverse edge v→u with the
// same weight.
func IsSymmetric(g Graph) bool {
	for from := 0; from < g.NumNodes(); from++ {
		nbs, _ := g.Neighbours(from) // from is always in range
		for _, nb := range nbs {
			w, err := g.Weight(nb.To, from)
			if err != nil || w != nb.Weight {
				return false
			}
		}
	}
	return true
}

// Degrees returns the out-degree of every vertex, indexed by vertex.
func Degrees(g Graph) []int {
	out := make([]int, g.NumNodes())
	for v := range out {
		out[v], _ = g.Degree(v) // v is always in range
	}
	return out
}

// DegreeSequence returns the degrees of an undirected graph sorted in
// descending order. Directed graphs yield ErrAsymmetric.
func DegreeSequence(g Graph) ([]int, error) {
	if !IsSymmetric(g) {
		return nil, errors.Wrap(ErrAsymmetric, "DegreeSequence")
	}
	out := Degrees(g)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out, nil
}

// IsGraphic reports whether seq is the degree sequence of some simple
// undirected graph, using the Havel–Hakimi reduction: take the largest
// degree d, drop it and decrement the next d degrees, repeat until all
// remaining degrees are zero (graphic) or something goes negative (not).
// seq is not modified. An empty sequence is graphic.
func IsGraphic(seq []int) bool {
	ds := append([]int(nil), seq...)
	sum := 0
	for _, d := range ds {
		if d < 0 || d > len(ds)-1 {
			return false
		}
		sum += d
	}
	if sum%2 != 0 {
		return false
	}

	for len(ds) > 0 {
		sort.Sort(sort.Reverse(sort.IntSlice(ds)))
		d := ds[0]
		if d == 0 {
			return true
		}
		ds = ds[1:]
		if d > len(ds) {
			return false
		}
		for i := 0; i < d; i++ {
			ds[i]--
			if ds[i] < 0 {
				return false
			}
		}
	}
	return true
}
