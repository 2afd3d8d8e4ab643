package cliutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestParseCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		nodes, edges int
	}{
		{"no args", nil, 10, 60},
		{"one arg", []string{"5"}, 10, 60},
		{"three args", []string{"5", "3", "1"}, 10, 60},
		{"one junk arg", []string{"abc"}, 10, 60},
		{"two args", []string{"5", "3"}, 5, 3},
		{"zeros", []string{"0", "0"}, 0, 0},
	}
	for _, tc := range tests {
		nodes, edges, err := ParseCounts(tc.args, 10, 60)
		require.NoError(t, err, tc.name)
		require.Equal(t, tc.nodes, nodes, tc.name)
		require.Equal(t, tc.edges, edges, tc.name)
	}
}

func TestParseCounts_Invalid(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"x", "3"}, {"5", "3.5"}, {"-1", "3"}, {"4", "-2"}} {
		_, _, err := ParseCounts(args, 10, 60)
		require.True(t, errors.Is(err, ErrBadArgument), "%v: %v", args, err)
	}
}

func TestResolveSeed(t *testing.T) {
	t.Parallel()

	require.EqualValues(t, 0, ResolveSeed(0))
	require.EqualValues(t, 77, ResolveSeed(77))
	require.GreaterOrEqual(t, ResolveSeed(-1), int64(0))
}

func TestProgress(t *testing.T) {
	t.Parallel()

	// Both variants must be safe to drive.
	for _, enabled := range []bool{false, true} {
		p := NewProgress(3, "test", enabled)
		p.Add(1)
		p.Add(2)
		p.Finish()
	}
}

func TestLogWritten(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(path, []byte("0 1 1\n"), 0o644))
	LogWritten(path)
	LogWritten(filepath.Join(t.TempDir(), "missing"))
}

func TestWriteOutput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out")
	require.NoError(t, WriteOutput(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "0 1\n")
		return err
	}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "0 1\n", string(data))

	// The callback error wins and the file is still closed.
	boom := errors.New("boom")
	var file *os.File
	err = WriteOutput(path, func(w io.Writer) error {
		file = w.(*os.File)
		return boom
	})
	require.Equal(t, boom, err)
	require.Error(t, file.Close(), "file left open")

	err = WriteOutput(filepath.Join(t.TempDir(), "missing", "out"), func(io.Writer) error {
		t.Fatal("callback must not run when the file cannot be created")
		return nil
	})
	require.Error(t, err)
}

func TestWriteOutput_CloseError(t *testing.T) {
	t.Parallel()

	// Closing the file inside the callback makes the deferred Close fail,
	// which must surface as the result.
	path := filepath.Join(t.TempDir(), "out")
	err := WriteOutput(path, func(w io.Writer) error {
		return w.(*os.File).Close()
	})
	require.True(t, errors.Is(err, os.ErrClosed), "got %v", err)
}
