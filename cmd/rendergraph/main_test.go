package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edgegen/core"
	"github.com/katalvlaran/edgegen/dfs"
	"github.com/katalvlaran/edgegen/edgelist"
	"github.com/katalvlaran/edgegen/internal/fixtures"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Input_edges")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// writeEdges stores edges through the edge-list writer.
func writeEdges(t *testing.T, edges []core.Edge) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Input_edges")
	require.NoError(t, edgelist.WriteFile(path, edges))
	return path
}

func defaultConfig() renderConfig {
	return renderConfig{format: FormatText, unit: 2, closure: -1, bfs: -1, dfs: -1, shortest: -1}
}

func TestRun_Text(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "0 1 1\n0 1 1\n2 0 1\n")
	var buf bytes.Buffer
	require.NoError(t, run(&buf, path, defaultConfig()))
	require.Equal(t, "0--1->1\n2--1->0\nTotal Edges: 2\n", buf.String())
}

func TestRun_TikzAndDOT(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "0 1 1\n1 1 1\n")

	cfg := defaultConfig()
	cfg.format = FormatTikz
	var tk bytes.Buffer
	require.NoError(t, run(&tk, path, cfg))
	require.Contains(t, tk.String(), `\Edge[label=1](0)(1)`)
	require.Contains(t, tk.String(), `\Loop[dist=4cm,dir=NO,label=1](1.west)`)

	cfg.format = FormatDOT
	var dot bytes.Buffer
	require.NoError(t, run(&dot, path, cfg))
	require.Contains(t, dot.String(), "digraph edges {")
	require.Contains(t, dot.String(), "0 -> 1")
}

func TestRun_Closure(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "0 1 1\n1 2 1\n3 0 1\n")
	cfg := defaultConfig()
	cfg.closure = 0
	var buf bytes.Buffer
	require.NoError(t, run(&buf, path, cfg))
	require.Equal(t, "0 1 2\n", buf.String())

	// Branches come out ascending with the start included.
	path = writeFixture(t, "0 1 1\n0 2 1\n1 3 1\n2 4 1\n")
	buf.Reset()
	require.NoError(t, run(&buf, path, cfg))
	require.Equal(t, "0 1 2 3 4\n", buf.String())
}

func TestRun_Traversals(t *testing.T) {
	t.Parallel()

	path := writeEdges(t, fixtures.Tree12())

	cfg := defaultConfig()
	cfg.bfs = 0
	var buf bytes.Buffer
	require.NoError(t, run(&buf, path, cfg))
	require.Equal(t, "0 1 2 3 4 5 6 7 8 9 10 11\n", buf.String())

	cfg = defaultConfig()
	cfg.dfs = 0
	buf.Reset()
	require.NoError(t, run(&buf, path, cfg))
	require.Equal(t, "0 1 3 7 4 8 9 2 5 10 6 11\n", buf.String())
}

func TestRun_Shortest(t *testing.T) {
	t.Parallel()

	path := writeEdges(t, fixtures.Dijkstra9())
	cfg := defaultConfig()
	cfg.shortest = 0
	cfg.nodes = fixtures.Dijkstra9Nodes + 1 // vertex 9 is isolated
	var buf bytes.Buffer
	require.NoError(t, run(&buf, path, cfg))
	require.Equal(t, ""+
		"0\t0\t0\n"+
		"1\t4\t0->1\n"+
		"2\t12\t0->1->2\n"+
		"3\t19\t0->1->2->3\n"+
		"4\t21\t0->7->6->5->4\n"+
		"5\t11\t0->7->6->5\n"+
		"6\t9\t0->7->6\n"+
		"7\t8\t0->7\n"+
		"8\t14\t0->1->2->8\n"+
		"9\t-1\t-\n", buf.String())

	cfg.shortest = 10
	require.True(t, errors.Is(run(&bytes.Buffer{}, path, cfg), core.ErrOutOfRange))
}

func TestRun_MST(t *testing.T) {
	t.Parallel()

	path := writeEdges(t, fixtures.Dijkstra9())
	cfg := defaultConfig()
	cfg.mst = true
	var buf bytes.Buffer
	require.NoError(t, run(&buf, path, cfg))
	require.Equal(t, ""+
		"6-7 (1)\n"+
		"2-8 (2)\n"+
		"5-6 (2)\n"+
		"0-1 (4)\n"+
		"2-5 (4)\n"+
		"2-3 (7)\n"+
		"0-7 (8)\n"+
		"3-4 (9)\n"+
		"MST Cost: 37\n", buf.String())

	// Directed input is rejected.
	directed := writeFixture(t, "0 1 1\n")
	require.Error(t, run(&bytes.Buffer{}, directed, cfg))
}

func TestRun_Cycles(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.cycles = true
	cfg.undirected = true

	var buf bytes.Buffer
	require.NoError(t, run(&buf, writeEdges(t, fixtures.Graph10()), cfg))
	require.Equal(t, "hasCycle: true\n0 1 2 3 0\n5 6 7 5\n", buf.String())

	buf.Reset()
	require.NoError(t, run(&buf, writeEdges(t, fixtures.Tree12()), cfg))
	require.Equal(t, "hasCycle: false\n", buf.String())

	cfg.undirected = false
	buf.Reset()
	require.NoError(t, run(&buf, writeFixture(t, "0 1 1\n1 2 1\n2 0 1\n2 3 1\n3 3 1\n"), cfg))
	require.Equal(t, "hasCycle: true\n0 1 2 0\n3 3\n", buf.String())
}

func TestRun_Topo(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.topo = true
	var buf bytes.Buffer
	require.NoError(t, run(&buf, writeFixture(t, "0 1 1\n0 2 1\n1 3 1\n2 3 1\n"), cfg))
	require.Equal(t, "0 2 1 3\n", buf.String())

	err := run(&bytes.Buffer{}, writeFixture(t, "0 1 1\n1 0 1\n"), cfg)
	require.True(t, errors.Is(err, dfs.ErrCycleDetected), "got %v", err)
}

func TestRun_Degrees(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.degrees = true
	var buf bytes.Buffer
	path := writeEdges(t, fixtures.Undirected([][3]int64{{0, 1, 1}, {1, 2, 1}, {2, 0, 1}, {2, 3, 1}}))
	require.NoError(t, run(&buf, path, cfg))
	require.Equal(t, "degrees: 2 2 3 1\nsequence: 3 2 2 1\ngraphic: true\n", buf.String())

	buf.Reset()
	require.NoError(t, run(&buf, writeFixture(t, "0 1 1\n"), cfg))
	require.Equal(t, "degrees: 1 0\n", buf.String())
}

func TestRun_FlagConflicts(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "0 1 1\n1 0 1\n")
	conflicting := []func(*renderConfig){
		func(c *renderConfig) { c.closure = 0; c.mst = true },
		func(c *renderConfig) { c.bfs = 0; c.dfs = 0 },
		func(c *renderConfig) { c.closure = 0; c.format = FormatDOT },
		func(c *renderConfig) { c.cycles = true; c.format = FormatTikz },
		func(c *renderConfig) { c.undirected = true },
	}
	for i, mutate := range conflicting {
		cfg := defaultConfig()
		mutate(&cfg)
		var buf bytes.Buffer
		err := run(&buf, path, cfg)
		require.True(t, errors.Is(err, ErrFlagConflict), "case %d: %v", i, err)
		require.Zero(t, buf.Len(), "case %d wrote output", i)
	}
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "0 5 1\n")

	cfg := defaultConfig()
	cfg.nodes = 3
	err := run(&bytes.Buffer{}, path, cfg)
	require.True(t, errors.Is(err, core.ErrOutOfRange), "got %v", err)

	cfg = defaultConfig()
	cfg.format = "svg"
	require.Error(t, run(&bytes.Buffer{}, path, cfg))

	require.Error(t, run(&bytes.Buffer{}, filepath.Join(t.TempDir(), "missing"), defaultConfig()))
}
