// rendergraph loads an edge-list fixture into an adjacency matrix and renders
// it as text, TikZ or Graphviz DOT, or runs one graph analysis on it.
//
// Usage:
//
//	rendergraph [flags] <edge-list>
//
// The graph is sized by -nodes, or by the largest vertex index in the file
// when -nodes is 0. Repeated edges collapse into one; the last weight wins.
//
// At most one analysis flag may be given: -closure, -bfs, -dfs, -shortest,
// -mst, -cycles, -topo or -degrees. An analysis prints plain text and
// replaces rendering, so it cannot be combined with a -format other than
// text. -mst needs an undirected (symmetric) edge list, as does -cycles with
// -undirected.
package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/edgegen/converters"
	"github.com/katalvlaran/edgegen/core"
	"github.com/katalvlaran/edgegen/dfs"
	"github.com/katalvlaran/edgegen/dijkstra"
	"github.com/katalvlaran/edgegen/edgelist"
	"github.com/katalvlaran/edgegen/internal/cliutil"
	"github.com/katalvlaran/edgegen/prim_kruskal"
	"github.com/katalvlaran/edgegen/tikz"
)

// Output formats.
const (
	FormatText = "text"
	FormatTikz = "tikz"
	FormatDOT  = "dot"
)

// ErrFlagConflict is returned for flag combinations that cannot be honoured
// together.
var ErrFlagConflict = errors.New("conflicting flags")

var (
	flagFormat        = flag.String("format", FormatText, "Output format: text, tikz or dot. Analyses accept only text.")
	flagNodes         = flag.Int("nodes", 0, "Vertex count; 0 sizes the graph from the file.")
	flagOutput        = flag.String("o", "", "Output path; empty writes to stdout.")
	flagCounterLabels = flag.Bool("counter_labels", false, "TikZ: label edges by emission order instead of weight.")
	flagUnit          = flag.Int("unit", tikz.DefaultGraphUnit, "TikZ: vertex spacing.")

	flagClosure    = flag.Int("closure", -1, "If ≥ 0, print the vertices reachable from this vertex, ascending.")
	flagBFS        = flag.Int("bfs", -1, "If ≥ 0, print the breadth-first order from this vertex.")
	flagDFS        = flag.Int("dfs", -1, "If ≥ 0, print the depth-first pre-order from this vertex.")
	flagShortest   = flag.Int("shortest", -1, "If ≥ 0, print shortest path lengths and routes from this vertex.")
	flagMST        = flag.Bool("mst", false, "Print a minimum spanning tree (forest if disconnected) and its cost.")
	flagCycles     = flag.Bool("cycles", false, "Print whether the graph has cycles and list them.")
	flagUndirected = flag.Bool("undirected", false, "With -cycles: read the graph as undirected.")
	flagTopo       = flag.Bool("topo", false, "Print a topological order; fails on a cycle.")
	flagDegrees    = flag.Bool("degrees", false, "Print vertex degrees, the degree sequence and whether it is graphic.")
)

type renderConfig struct {
	format        string
	nodes         int
	counterLabels bool
	unit          int

	closure    int
	bfs        int
	dfs        int
	shortest   int
	mst        bool
	cycles     bool
	undirected bool
	topo       bool
	degrees    bool
}

// analyses lists the analysis flags that are set.
func (c renderConfig) analyses() []string {
	var set []string
	for _, a := range []struct {
		name string
		on   bool
	}{
		{"-closure", c.closure >= 0},
		{"-bfs", c.bfs >= 0},
		{"-dfs", c.dfs >= 0},
		{"-shortest", c.shortest >= 0},
		{"-mst", c.mst},
		{"-cycles", c.cycles},
		{"-topo", c.topo},
		{"-degrees", c.degrees},
	} {
		if a.on {
			set = append(set, a.name)
		}
	}
	return set
}

func (c renderConfig) validate() error {
	set := c.analyses()
	if len(set) > 1 {
		return errors.Wrapf(ErrFlagConflict, "%s are mutually exclusive", strings.Join(set, ", "))
	}
	if len(set) == 1 && c.format != FormatText {
		return errors.Wrapf(ErrFlagConflict, "%s prints text and cannot use -format=%s", set[0], c.format)
	}
	if c.undirected && !c.cycles {
		return errors.Wrap(ErrFlagConflict, "-undirected applies only to -cycles")
	}
	return nil
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	if flag.NArg() != 1 {
		klog.Exitf("rendergraph: expected exactly one edge-list path, got %d arguments", flag.NArg())
	}
	cfg := renderConfig{
		format:        *flagFormat,
		nodes:         *flagNodes,
		counterLabels: *flagCounterLabels,
		unit:          *flagUnit,
		closure:       *flagClosure,
		bfs:           *flagBFS,
		dfs:           *flagDFS,
		shortest:      *flagShortest,
		mst:           *flagMST,
		cycles:        *flagCycles,
		undirected:    *flagUndirected,
		topo:          *flagTopo,
		degrees:       *flagDegrees,
	}
	if err := cfg.validate(); err != nil {
		klog.Exitf("rendergraph: %v", err)
	}

	err := cliutil.WriteOutput(*flagOutput, func(w io.Writer) error {
		return run(w, flag.Arg(0), cfg)
	})
	if err != nil {
		klog.Exitf("rendergraph: %+v", err)
	}
	if *flagOutput != "" {
		cliutil.LogWritten(*flagOutput)
	}
}

// load reads path into a MatrixGraph of the requested (or inferred) size.
func load(path string, nodes int) (*core.MatrixGraph, error) {
	edges, err := edgelist.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if nodes <= 0 {
		nodes = edgelist.MaxVertex(edges) + 1
	}
	g, err := core.NewMatrixGraph(nodes)
	if err != nil {
		return nil, err
	}
	if err = core.Populate(g, edges); err != nil {
		return nil, errors.Wrapf(err, "%s does not fit in %d nodes", path, nodes)
	}
	klog.V(1).Infof("loaded %d edge lines from %s into %d nodes / %d distinct edges",
		len(edges), path, nodes, core.CountEdges(g))
	return g, nil
}

func run(w io.Writer, path string, cfg renderConfig) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	g, err := load(path, cfg.nodes)
	if err != nil {
		return err
	}

	switch {
	case cfg.closure >= 0:
		reach, err := core.TransitiveClosure(g, cfg.closure)
		if err != nil {
			return err
		}
		return writeLine(w, reach, "closure")
	case cfg.bfs >= 0:
		order, err := core.BFS(g, cfg.bfs)
		if err != nil {
			return err
		}
		return writeLine(w, order, "bfs")
	case cfg.dfs >= 0:
		order, err := dfs.DFS(g, cfg.dfs)
		if err != nil {
			return err
		}
		return writeLine(w, order, "dfs")
	case cfg.shortest >= 0:
		return writeShortest(w, g, cfg.shortest)
	case cfg.mst:
		return writeMST(w, g)
	case cfg.cycles:
		return writeCycles(w, g, cfg.undirected)
	case cfg.topo:
		order, err := dfs.TopologicalSort(g)
		if err != nil {
			return err
		}
		return writeLine(w, order, "topo")
	case cfg.degrees:
		return writeDegrees(w, g)
	}

	switch cfg.format {
	case FormatText:
		return core.Format(w, g)
	case FormatTikz:
		opts := []tikz.Option{tikz.WithGraphUnit(cfg.unit)}
		if cfg.counterLabels {
			opts = append(opts, tikz.WithCounterLabels())
		}
		return tikz.Write(w, g, opts...)
	case FormatDOT:
		dropped, err := converters.WriteDOT(w, g, "edges")
		if dropped > 0 {
			klog.Warningf("DOT output omits %d self-loop(s)", dropped)
		}
		return err
	default:
		return errors.Errorf("unknown format %q (want %s, %s or %s)", cfg.format, FormatText, FormatTikz, FormatDOT)
	}
}

func joinInts(vs []int, sep string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, sep)
}

func writeLine(w io.Writer, vs []int, what string) error {
	_, err := fmt.Fprintln(w, joinInts(vs, " "))
	return errors.Wrapf(err, "write %s", what)
}

// writeShortest prints "dest<TAB>length<TAB>route" per vertex; unreachable
// vertices get length -1 and route "-".
func writeShortest(w io.Writer, g core.Graph, src int) error {
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
	if err != nil {
		return err
	}
	for v := 0; v < g.NumNodes(); v++ {
		length, route := "-1", "-"
		if p, err := res.Path(v); err == nil {
			length, route = core.FormatWeight(res.Dist[v]), joinInts(p, "->")
		} else if !errors.Is(err, dijkstra.ErrNoPath) {
			return err
		}
		if _, err = fmt.Fprintf(w, "%d\t%s\t%s\n", v, length, route); err != nil {
			return errors.Wrap(err, "write shortest paths")
		}
	}
	return nil
}

func writeMST(w io.Writer, g core.Graph) error {
	forest, cost, err := prim_kruskal.SpanningForest(g)
	if err != nil {
		return err
	}
	if n := g.NumNodes(); n > 0 && len(forest) < n-1 {
		klog.Warningf("graph is disconnected: spanning forest has %d trees", n-len(forest))
	}
	for _, e := range forest {
		if _, err = fmt.Fprintf(w, "%d-%d (%s)\n", e.From, e.To, core.FormatWeight(e.Weight)); err != nil {
			return errors.Wrap(err, "write mst")
		}
	}
	_, err = fmt.Fprintf(w, "MST Cost: %s\n", core.FormatWeight(cost))
	return errors.Wrap(err, "write mst")
}

func writeCycles(w io.Writer, g core.Graph, undirected bool) error {
	var opts []dfs.Option
	if undirected {
		opts = append(opts, dfs.WithUndirected())
	}
	has, cycles, err := dfs.DetectCycles(g, opts...)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(w, "hasCycle: %t\n", has); err != nil {
		return errors.Wrap(err, "write cycles")
	}
	for _, c := range cycles {
		if err = writeLine(w, c, "cycles"); err != nil {
			return err
		}
	}
	return nil
}

// writeDegrees prints out-degrees; for undirected graphs also the sorted
// degree sequence and whether it is graphic.
func writeDegrees(w io.Writer, g core.Graph) error {
	if _, err := fmt.Fprintf(w, "degrees: %s\n", joinInts(core.Degrees(g), " ")); err != nil {
		return errors.Wrap(err, "write degrees")
	}
	seq, err := core.DegreeSequence(g)
	if errors.Is(err, core.ErrAsymmetric) {
		klog.V(1).Info("graph is directed; skipping degree sequence")
		return nil
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "sequence: %s\ngraphic: %t\n", joinInts(seq, " "), core.IsGraphic(seq))
	return errors.Wrap(err, "write degrees")
}
