// SPDX-License-Identifier: MIT
// Package: edgegen/edgelist
//
// writer.go — buffered edge-list encoder.

package edgelist

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/edgegen/core"
)

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithOnWrite registers a hook invoked after each edge has been encoded into
// the buffer. Panics on nil.
func WithOnWrite(fn func(e core.Edge)) WriterOption {
	if fn == nil {
		panic("edgelist: WithOnWrite(nil)")
	}
	return func(w *Writer) {
		w.onWrite = fn
	}
}

// Writer encodes edges as "<src> <dst> <weight>\n" lines.
// Call Flush when done; nothing reaches the underlying io.Writer before the
// buffer fills or Flush is called.
type Writer struct {
	bw      *bufio.Writer
	scratch []byte
	onWrite func(e core.Edge)
	written int
}

// NewWriter wraps w in a buffered edge-list encoder.
func NewWriter(w io.Writer, opts ...WriterOption) *Writer {
	wr := &Writer{
		bw:      bufio.NewWriter(w),
		scratch: make([]byte, 0, 64),
		onWrite: func(core.Edge) {},
	}
	for _, opt := range opts {
		opt(wr)
	}
	return wr
}

// WriteEdge encodes a single edge.
func (w *Writer) WriteEdge(e core.Edge) error {
	b := w.scratch[:0]
	b = strconv.AppendInt(b, int64(e.From), 10)
	b = append(b, ' ')
	b = strconv.AppendInt(b, int64(e.To), 10)
	b = append(b, ' ')
	b = strconv.AppendInt(b, e.Weight, 10)
	b = append(b, '\n')
	w.scratch = b

	if _, err := w.bw.Write(b); err != nil {
		return errors.Wrapf(err, "edgelist: write edge #%d", w.written)
	}
	w.written++
	w.onWrite(e)
	return nil
}

// WriteAll encodes edges in order and flushes.
func (w *Writer) WriteAll(edges []core.Edge) error {
	for _, e := range edges {
		if err := w.WriteEdge(e); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return errors.Wrap(w.bw.Flush(), "edgelist: flush")
}

// Written returns the number of edges encoded so far.
func (w *Writer) Written() int { return w.written }

// WriteFile creates (or truncates) path and writes edges to it.
// A failure part-way leaves whatever was already flushed on disk; the file is
// not removed.
func WriteFile(path string, edges []core.Edge, opts ...WriterOption) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "edgelist: create %q", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "edgelist: close %q", path)
		}
	}()
	return NewWriter(f, opts...).WriteAll(edges)
}
