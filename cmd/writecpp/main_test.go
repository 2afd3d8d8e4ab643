package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ProgramShape(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "edges.txt")
	require.NoError(t, run(path, 12))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	src := string(raw)

	require.Equal(t, 2, strings.Count(src, "#include"))
	require.Contains(t, src, "  mgraph g(100);\n")
	require.Contains(t, src, "  gl::writeTikzToStream2(std::cout, g);\n  return 0;\n}\n")

	var calls []string
	for _, line := range strings.Split(src, "\n") {
		if strings.HasPrefix(line, "  g.setEdge(") {
			calls = append(calls, line)
		}
	}
	require.Len(t, calls, 400)
	for i := 0; i < len(calls); i += 2 {
		require.Equal(t, calls[i], calls[i+1])
	}
}

func TestRun_SameSeedSameSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")
	require.NoError(t, run(a, 9))
	require.NoError(t, run(b, 9))

	ra, err := os.ReadFile(a)
	require.NoError(t, err)
	rb, err := os.ReadFile(b)
	require.NoError(t, err)
	require.Equal(t, string(ra), string(rb))
}
