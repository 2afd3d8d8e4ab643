// writeedges writes a random directed edge list fixture.
//
// Usage:
//
//	writeedges [flags] [nodes edges]
//
// Exactly two positional arguments set the vertex and edge counts; any other
// number of arguments keeps the defaults (10 nodes, 60 edges). Each output
// line is "<src> <dst> 1" with both endpoints uniform in [0, nodes).
package main

import (
	"flag"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/edgegen/builder"
	"github.com/katalvlaran/edgegen/core"
	"github.com/katalvlaran/edgegen/edgelist"
	"github.com/katalvlaran/edgegen/internal/cliutil"
)

const (
	defaultNodes = 10
	defaultEdges = 60
)

var (
	flagOutput   = flag.String("o", "test/Input_edges", "Output edge-list path.")
	flagSeed     = flag.Int64("seed", -1, "Random seed; negative picks a time-based seed.")
	flagProgress = flag.Bool("progress", false, "Show a progress bar on stderr while writing.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	nodes, edges, err := cliutil.ParseCounts(flag.Args(), defaultNodes, defaultEdges)
	if err != nil {
		klog.Exitf("writeedges: %v", err)
	}
	if err = run(*flagOutput, nodes, edges, cliutil.ResolveSeed(*flagSeed), *flagProgress); err != nil {
		klog.Exitf("writeedges: %+v", err)
	}
	cliutil.LogWritten(*flagOutput)
}

// run samples edges and writes them to path.
func run(path string, nodes, edges int, seed int64, progress bool) error {
	sampled, err := builder.BuildEdges(
		[]builder.BuilderOption{builder.WithSeed(seed)},
		builder.RandomEdges(nodes, edges),
	)
	if err != nil {
		return errors.Wrapf(err, "sampling %d edges over %d nodes", edges, nodes)
	}
	klog.V(1).Infof("sampled %d edges over %d nodes", len(sampled), nodes)

	bar := cliutil.NewProgress(len(sampled), "writing edges", progress)
	defer bar.Finish()
	return edgelist.WriteFile(path, sampled, edgelist.WithOnWrite(func(core.Edge) { bar.Add(1) }))
}
