// writeundirected writes a random undirected edge list fixture with a fixed
// size of 20 vertices and 50 sampled pairs.
//
// Every sampled pair (p1, p2) is written twice, as "p1 p2 1" followed by
// "p2 p1 1", so the output always has 100 lines. Positional arguments are
// ignored.
package main

import (
	"flag"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/edgegen/builder"
	"github.com/katalvlaran/edgegen/edgelist"
	"github.com/katalvlaran/edgegen/internal/cliutil"
)

const (
	nodeCount = 20
	pairCount = 50
)

var (
	flagOutput = flag.String("o", "test/Input_undirected_edges", "Output edge-list path.")
	flagSeed   = flag.Int64("seed", -1, "Random seed; negative picks a time-based seed.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	if flag.NArg() > 0 {
		klog.Warningf("ignoring positional arguments %q: sizes are fixed", flag.Args())
	}
	if err := run(*flagOutput, cliutil.ResolveSeed(*flagSeed)); err != nil {
		klog.Exitf("writeundirected: %+v", err)
	}
	cliutil.LogWritten(*flagOutput)
}

func run(path string, seed int64) error {
	edges, err := builder.BuildEdges(
		[]builder.BuilderOption{builder.WithSeed(seed)},
		builder.RandomMirroredEdges(nodeCount, pairCount),
	)
	if err != nil {
		return errors.Wrap(err, "sampling mirrored edges")
	}
	return edgelist.WriteFile(path, edges)
}
