// SPDX-License-Identifier: MIT
// Package cppgen emits a self-contained C++ program that rebuilds a fixed
// graph through the gl::MGraph API and streams it out as TikZ.
//
// The emitted source is plain text; nothing is compiled or executed here.
// Every edge is written as Repeat identical setEdge calls (2 by default).
// MGraph::setEdge overwrites on re-insert, so the repetition does not change
// the resulting graph; it is kept verbatim so generated fixtures stay
// byte-compatible with existing ones.
package cppgen

import (
	"bufio"
	"io"
	"os"
	"text/template"

	"github.com/pkg/errors"

	"github.com/katalvlaran/edgegen/core"
)

// Default template values.
const (
	DefaultScalar     = "double"
	DefaultExportCall = "gl::writeTikzToStream2(std::cout, g)"
	DefaultRepeat     = 2
)

// DefaultIncludes are the two headers the generated program depends on,
// relative to a test/io working directory.
var DefaultIncludes = []string{
	"../../src/structures/MatrixGraph.hpp",
	"../../src/io/WriteTikz.hpp",
}

// ErrInvalidProgram is returned for programs that cannot be rendered.
var ErrInvalidProgram = errors.New("cppgen: invalid program")

// Program is everything the template needs.
type Program struct {
	// Includes are emitted as `#include "<path>"`, in order.
	Includes []string
	// Scalar is the MGraph template argument.
	Scalar string
	// NodeCount sizes the graph.
	NodeCount int
	// Edges are emitted in order; weights are not emitted (setEdge defaults to 1).
	Edges []core.Edge
	// Repeat is how many identical setEdge calls each edge produces.
	Repeat int
	// ExportCall is the statement that writes the graph out, without ';'.
	ExportCall string
}

// NewProgram returns a Program with the default includes, scalar, repeat
// count and export call.
func NewProgram(nodeCount int, edges []core.Edge) *Program {
	return &Program{
		Includes:   append([]string(nil), DefaultIncludes...),
		Scalar:     DefaultScalar,
		NodeCount:  nodeCount,
		Edges:      edges,
		Repeat:     DefaultRepeat,
		ExportCall: DefaultExportCall,
	}
}

var programTemplate = template.Must(template.New("program").Funcs(template.FuncMap{
	"times": func(n int) []struct{} { return make([]struct{}, n) },
}).Parse(
	`{{range .Includes}}#include "{{.}}"
{{end}}int main(int argc, char const *argv[]) {
  using mgraph = gl::MGraph<{{.Scalar}}>;
  mgraph g({{.NodeCount}});
{{- $repeat := .Repeat}}
{{- range .Edges}}{{$e := .}}{{range times $repeat}}
  g.setEdge({{$e.From}}, {{$e.To}});{{end}}{{end}}
  {{.ExportCall}};
  return 0;
}
`))

// Write renders the program to w.
func (p *Program) Write(w io.Writer) error {
	if p.NodeCount < 0 {
		return errors.Wrapf(ErrInvalidProgram, "negative node count %d", p.NodeCount)
	}
	if p.Repeat < 1 {
		return errors.Wrapf(ErrInvalidProgram, "repeat must be ≥ 1, got %d", p.Repeat)
	}
	if p.Scalar == "" || p.ExportCall == "" {
		return errors.Wrap(ErrInvalidProgram, "scalar and export call are required")
	}
	bw := bufio.NewWriter(w)
	if err := programTemplate.Execute(bw, p); err != nil {
		return errors.Wrap(err, "cppgen: render")
	}
	return errors.Wrap(bw.Flush(), "cppgen: flush")
}

// WriteFile creates (or truncates) path and renders p into it.
func WriteFile(path string, p *Program) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cppgen: create %q", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "cppgen: close %q", path)
		}
	}()
	return p.Write(f)
}
