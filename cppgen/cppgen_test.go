package cppgen_test

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edgegen/builder"
	"github.com/katalvlaran/edgegen/core"
	"github.com/katalvlaran/edgegen/cppgen"
)

const goldenSmall = `#include "../../src/structures/MatrixGraph.hpp"
#include "../../src/io/WriteTikz.hpp"
int main(int argc, char const *argv[]) {
  using mgraph = gl::MGraph<double>;
  mgraph g(3);
  g.setEdge(0, 2);
  g.setEdge(0, 2);
  g.setEdge(1, 1);
  g.setEdge(1, 1);
  gl::writeTikzToStream2(std::cout, g);
  return 0;
}
`

func TestProgram_Golden(t *testing.T) {
	t.Parallel()

	p := cppgen.NewProgram(3, []core.Edge{{From: 0, To: 2, Weight: 1}, {From: 1, To: 1, Weight: 1}})
	var buf bytes.Buffer
	require.NoError(t, p.Write(&buf))
	require.Equal(t, goldenSmall, buf.String())
}

func TestProgram_NoEdges(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, cppgen.NewProgram(0, nil).Write(&buf))
	require.Contains(t, buf.String(), "  mgraph g(0);\n  gl::writeTikzToStream2(std::cout, g);\n")
}

var setEdgeRe = regexp.MustCompile(`^  g\.setEdge\((\d+), (\d+)\);$`)

func TestProgram_Shape(t *testing.T) {
	t.Parallel()

	const nodes, edges = 100, 200
	sampled, err := builder.BuildEdges(
		[]builder.BuilderOption{builder.WithSeed(2024)},
		builder.RandomEdges(nodes, edges),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cppgen.NewProgram(nodes, sampled).Write(&buf))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	includes := 0
	var calls []string
	for _, line := range lines {
		if strings.HasPrefix(line, "#include") {
			includes++
		}
		if strings.Contains(line, "g.setEdge") {
			m := setEdgeRe.FindStringSubmatch(line)
			require.NotNil(t, m, "unexpected setEdge line %q", line)
			for _, idx := range m[1:] {
				v, err := strconv.Atoi(idx)
				require.NoError(t, err)
				require.True(t, v >= 0 && v < nodes)
			}
			calls = append(calls, line)
		}
	}
	require.Equal(t, 2, includes)
	require.Len(t, calls, 2*edges)
	for i := 0; i < len(calls); i += 2 {
		require.Equal(t, calls[i], calls[i+1], "calls %d and %d", i, i+1)
	}
	require.Equal(t, "  mgraph g(100);", lines[4])
	require.Equal(t, "}", lines[len(lines)-1])
	require.Equal(t, "  return 0;", lines[len(lines)-2])
}

func TestProgram_Customised(t *testing.T) {
	t.Parallel()

	p := cppgen.NewProgram(2, []core.Edge{{From: 1, To: 0, Weight: 1}})
	p.Scalar = "int"
	p.Repeat = 1
	p.Includes = append(p.Includes, "<iostream>")
	var buf bytes.Buffer
	require.NoError(t, p.Write(&buf))
	out := buf.String()
	require.Contains(t, out, "gl::MGraph<int>")
	require.Equal(t, 1, strings.Count(out, "g.setEdge(1, 0);"))
	require.Contains(t, out, `#include "<iostream>"`)
}

func TestProgram_Invalid(t *testing.T) {
	t.Parallel()

	cases := map[string]func(p *cppgen.Program){
		"negative nodes": func(p *cppgen.Program) { p.NodeCount = -1 },
		"zero repeat":    func(p *cppgen.Program) { p.Repeat = 0 },
		"no scalar":      func(p *cppgen.Program) { p.Scalar = "" },
		"no export":      func(p *cppgen.Program) { p.ExportCall = "" },
	}
	for name, mutate := range cases {
		p := cppgen.NewProgram(3, nil)
		mutate(p)
		err := p.Write(&bytes.Buffer{})
		require.True(t, errors.Is(err, cppgen.ErrInvalidProgram), "%s: %v", name, err)
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "edges.txt")
	p := cppgen.NewProgram(3, []core.Edge{{From: 0, To: 2, Weight: 1}, {From: 1, To: 1, Weight: 1}})
	require.NoError(t, cppgen.WriteFile(path, p))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, goldenSmall, string(raw))

	require.Error(t, cppgen.WriteFile(filepath.Join(t.TempDir(), "missing", "x.cpp"), p))
}
