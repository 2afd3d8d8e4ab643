// SPDX-License-Identifier: MIT
// Package: edgegen/edgelist
//
// reader.go — edge-list decoder.

package edgelist

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/edgegen/core"
)

// ErrMalformedLine indicates a line that is not three integers.
var ErrMalformedLine = errors.New("edgelist: malformed line")

// Read decodes every edge from r in file order.
func Read(r io.Reader) ([]core.Edge, error) {
	var edges []core.Edge
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e, err := parseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		edges = append(edges, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "edgelist: read")
	}
	return edges, nil
}

// ReadFile opens path and decodes it with Read.
func ReadFile(path string) ([]core.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "edgelist: open %q", path)
	}
	defer f.Close()

	edges, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "edgelist: %q", path)
	}
	return edges, nil
}

func parseLine(line string) (core.Edge, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return core.Edge{}, errors.Wrapf(ErrMalformedLine, "want 3 fields, got %d", len(fields))
	}
	from, err := strconv.Atoi(fields[0])
	if err != nil {
		return core.Edge{}, errors.Wrapf(ErrMalformedLine, "source %q", fields[0])
	}
	to, err := strconv.Atoi(fields[1])
	if err != nil {
		return core.Edge{}, errors.Wrapf(ErrMalformedLine, "destination %q", fields[1])
	}
	w, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return core.Edge{}, errors.Wrapf(ErrMalformedLine, "weight %q", fields[2])
	}
	return core.Edge{From: from, To: to, Weight: w}, nil
}

// MaxVertex returns the largest endpoint index in edges, or -1 when empty.
// MaxVertex(edges)+1 is the smallest graph that can hold them.
func MaxVertex(edges []core.Edge) int {
	max := -1
	for _, e := range edges {
		if e.From > max {
			max = e.From
		}
		if e.To > max {
			max = e.To
		}
	}
	return max
}
