// SPDX-License-Identifier: MIT
// Package: edgegen/converters
//
// gonum.go — core.Graph <-> gonum simple.WeightedDirectedGraph.

package converters

import (
	"io"
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/edgegen/core"
)

// labelledEdge carries the weight into DOT output as a label attribute.
type labelledEdge struct {
	simple.WeightedEdge
}

// Attributes implements encoding.Attributer.
func (e labelledEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: core.FormatWeight(e.W)}}
}

// ToGonum copies g into a new weighted directed gonum graph. Every vertex is
// added, including isolated ones. Returns the number of self-loops skipped.
func ToGonum(g core.Graph) (*simple.WeightedDirectedGraph, int, error) {
	out := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for v := 0; v < g.NumNodes(); v++ {
		out.AddNode(simple.Node(v))
	}

	dropped := 0
	for from := 0; from < g.NumNodes(); from++ {
		nbs, err := g.Neighbours(from)
		if err != nil {
			return nil, 0, errors.Wrap(err, "ToGonum")
		}
		for _, nb := range nbs {
			if nb.To == from {
				dropped++
				continue
			}
			out.SetWeightedEdge(labelledEdge{simple.WeightedEdge{
				F: simple.Node(from),
				T: simple.Node(nb.To),
				W: nb.Weight,
			}})
		}
	}
	return out, dropped, nil
}

// FromGonum copies a directed gonum graph into a MatrixGraph. Node IDs are
// sorted ascending and renumbered densely; ids[i] is the gonum ID of vertex
// i. Edge weights come from graph.Weighted when implemented, else 1.
func FromGonum(g graph.Directed) (*core.MatrixGraph, []int64, error) {
	nodes := graph.NodesOf(g.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })

	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	out, err := core.NewMatrixGraph(len(ids))
	if err != nil {
		return nil, nil, errors.Wrap(err, "FromGonum")
	}
	weighted, _ := g.(graph.Weighted)
	for _, uid := range ids {
		to := g.From(uid)
		for to.Next() {
			vid := to.Node().ID()
			w := float64(core.DefaultWeight)
			if weighted != nil {
				if ew, ok := weighted.Weight(uid, vid); ok {
					w = ew
				}
			}
			if err := out.SetEdge(index[uid], index[vid], w); err != nil {
				return nil, nil, errors.Wrap(err, "FromGonum")
			}
		}
	}
	return out, ids, nil
}

// WriteDOT encodes g as a Graphviz digraph named name. Self-loops are not
// representable (see ToGonum) and are reported through the returned count.
func WriteDOT(w io.Writer, g core.Graph, name string) (int, error) {
	gg, dropped, err := ToGonum(g)
	if err != nil {
		return 0, err
	}
	b, err := dot.Marshal(gg, name, "", "  ")
	if err != nil {
		return dropped, errors.Wrap(err, "WriteDOT: marshal")
	}
	if _, err = w.Write(append(b, '\n')); err != nil {
		return dropped, errors.Wrap(err, "WriteDOT: write")
	}
	return dropped, nil
}
