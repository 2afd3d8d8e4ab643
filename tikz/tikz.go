// SPDX-License-Identifier: MIT
// Package tikz renders a core.Graph as a standalone LaTeX document using
// the tkz-graph package, ready for pdflatex.
//
// Vertices are laid out in a row: vertex 0 first, every next vertex to the
// west of its predecessor. Edges are drawn in row-major order (source
// ascending, destination ascending); self-loops become \Loop commands.
package tikz

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/edgegen/core"
)

// DefaultGraphUnit is the spacing passed to \SetGraphUnit.
const DefaultGraphUnit = 2

const preamble = `\documentclass[border=10pt]{standalone}
\usepackage{tkz-graph}
\GraphInit[vstyle = Shade]
\tikzset{
  LabelStyle/.style = { rectangle, rounded corners, draw,
      fill = yellow!50, text = red, font = \bfseries },
  VertexStyle/.append style = { inner sep=2pt,
      font = \Large\bfseries},
  EdgeStyle/.append style = {->, bend left} }
\thispagestyle{empty}
\begin{document}
\begin{tikzpicture}
`

const trailer = "\\end{tikzpicture}\n\\end{document}\n"

// Option configures Write.
type Option func(*config)

type config struct {
	unit          int
	counterLabels bool
}

// WithGraphUnit overrides the vertex spacing. Panics if unit < 1.
func WithGraphUnit(unit int) Option {
	if unit < 1 {
		panic("tikz: WithGraphUnit(unit<1)")
	}
	return func(c *config) { c.unit = unit }
}

// WithCounterLabels labels edges by their emission index (0,1,2,...) instead
// of their weight.
func WithCounterLabels() Option {
	return func(c *config) { c.counterLabels = true }
}

// stickyWriter remembers the first write error so the rendering code can
// stay linear.
type stickyWriter struct {
	w   *bufio.Writer
	err error
}

func (s *stickyWriter) printf(format string, args ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

// Write renders g to w.
func Write(w io.Writer, g core.Graph, opts ...Option) error {
	cfg := config{unit: DefaultGraphUnit}
	for _, opt := range opts {
		opt(&cfg)
	}

	sw := &stickyWriter{w: bufio.NewWriter(w)}
	sw.printf("%s\\SetGraphUnit{%d}\n", preamble, cfg.unit)

	n := g.NumNodes()
	for i := 0; i < n; i++ {
		if i == 0 {
			sw.printf("\\Vertex{%d}\n", i)
		} else {
			sw.printf("\\WE(%d){%d}\n", i-1, i)
		}
	}

	count := 0
	for from := 0; from < n; from++ {
		nbs, err := g.Neighbours(from)
		if err != nil {
			return errors.Wrap(err, "tikz: neighbours")
		}
		// list graphs keep insertion order; draw like a matrix row scan
		sort.Slice(nbs, func(a, b int) bool { return nbs[a].To < nbs[b].To })
		for _, nb := range nbs {
			label := core.FormatWeight(nb.Weight)
			if cfg.counterLabels {
				label = strconv.Itoa(count)
			}
			if nb.To == from {
				sw.printf("\\Loop[dist=4cm,dir=NO,label=%s](%d.west)\n", label, from)
			} else {
				sw.printf("\\Edge[label=%s](%d)(%d)\n", label, from, nb.To)
			}
			count++
		}
	}
	sw.printf("%s", trailer)

	if sw.err != nil {
		return errors.Wrap(sw.err, "tikz: write")
	}
	return errors.Wrap(sw.w.Flush(), "tikz: flush")
}
