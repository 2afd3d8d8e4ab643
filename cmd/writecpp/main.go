// writecpp generates a C++ program that builds a random 100-vertex,
// 200-edge gl::MGraph and prints it as TikZ.
//
// Each sampled edge appears as two identical g.setEdge calls. The output is
// C++ source despite the default .txt name; it is never compiled here.
package main

import (
	"flag"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/edgegen/builder"
	"github.com/katalvlaran/edgegen/cppgen"
	"github.com/katalvlaran/edgegen/internal/cliutil"
)

const (
	nodeCount = 100
	edgeCount = 200
)

var (
	flagOutput = flag.String("o", "edges.txt", "Output C++ source path.")
	flagSeed   = flag.Int64("seed", -1, "Random seed; negative picks a time-based seed.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	if err := run(*flagOutput, cliutil.ResolveSeed(*flagSeed)); err != nil {
		klog.Exitf("writecpp: %+v", err)
	}
	cliutil.LogWritten(*flagOutput)
}

func run(path string, seed int64) error {
	edges, err := builder.BuildEdges(
		[]builder.BuilderOption{builder.WithSeed(seed)},
		builder.RandomEdges(nodeCount, edgeCount),
	)
	if err != nil {
		return errors.Wrap(err, "sampling edges")
	}
	return cppgen.WriteFile(path, cppgen.NewProgram(nodeCount, edges))
}
