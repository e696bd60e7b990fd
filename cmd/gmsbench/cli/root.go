// Package cli implements gmsbench's command-line surface: flag parsing
// via cobra, default-overlay via the sibling config package, graph
// construction from a file or a generator, and the @@@-prefixed trial
// reporting loop.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gmsgo/gms/bronkerbosch"
	"github.com/gmsgo/gms/clique"
	"github.com/gmsgo/gms/cmd/gmsbench/config"
	"github.com/gmsgo/gms/coloring"
	"github.com/gmsgo/gms/csr"
	"github.com/gmsgo/gms/gen"
	"github.com/gmsgo/gms/internal/workers"
	"github.com/gmsgo/gms/ioedgelist"
	"github.com/gmsgo/gms/order"
	"github.com/gmsgo/gms/set"
	"github.com/gmsgo/gms/setgraph"
	"github.com/gmsgo/gms/verify"
)

// exit codes, per the CLI's external-interface contract.
const (
	exitSuccess  = 0
	exitBadCLI   = 100
	exitBadState = 101
)

var opts struct {
	file        string
	gen         string
	scale       int
	degree      int
	undirected  bool
	verify      bool
	threads     int
	numTrials   int
	params      []string
	kernel      string
	configFile  string
	relabel     bool
	autoRelabel bool
	kernelParam map[string]string
}

// cliError wraps an error with the exit code main() should use.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }

func badCLI(format string, args ...any) error {
	return &cliError{code: exitBadCLI, err: fmt.Errorf(format, args...)}
}

func badState(format string, args ...any) error {
	return &cliError{code: exitBadState, err: fmt.Errorf(format, args...)}
}

// ExitCode extracts the exit code an error returned by Execute should map
// to. A nil error maps to exitSuccess; any error cobra itself raised
// (flag parsing, unknown command) that never reached a *cliError
// classification is treated as a CLI-usage error.
func ExitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if ce, ok := err.(*cliError); ok {
		return ce.code
	}
	return exitBadCLI
}

var rootCmd = &cobra.Command{
	Use:   "gmsbench",
	Short: "Parallel graph mining kernel benchmark harness",
	Long: `gmsbench loads or generates a graph and runs one of the coloring,
k-clique, or maximal-clique-enumeration kernels against it for a
configurable number of trials, optionally verifying each trial's output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&opts.file, "file", "f", "", "load graph from an edge-list or .sg snapshot file")
	f.StringVarP(&opts.gen, "gen", "g", "", "synthesize a graph: uniform or kronecker")
	f.IntVar(&opts.scale, "scale", 10, "generator scale: the graph has 2^scale vertices")
	f.IntVar(&opts.degree, "deg", 16, "generator average degree")
	f.BoolVarP(&opts.undirected, "undirected", "u", false, "do not symmetrize when reading a directed file")
	f.BoolVarP(&opts.verify, "verify", "v", false, "run the verifier after each trial")
	f.IntVarP(&opts.threads, "threads", "t", 0, "worker thread count (0 = hardware concurrency)")
	f.IntVarP(&opts.numTrials, "num-trials", "n", 0, "trial repetitions (0 = use config/default of 1)")
	f.StringSliceVarP(&opts.params, "param", "p", nil, "kernel-specific named parameters, name=value[,name=value...]")
	f.StringVarP(&opts.kernel, "kernel", "k", "color", "kernel to run: color, clique, or mce")
	f.StringVar(&opts.configFile, "config", "", "optional config file overlaying --threads/--num-trials defaults")
	f.BoolVar(&opts.relabel, "relabel", false, "relabel vertices by descending degree before running the kernel")
	f.BoolVar(&opts.autoRelabel, "auto-relabel", false, "relabel only when the degree-skew heuristic recommends it")
}

// Execute parses os.Args and runs the selected kernel; ExitCode maps the
// returned error, if any, to main()'s exit code. Errors raised by cobra
// itself are not *cliError values.
func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	defaults, err := config.Load(opts.configFile)
	if err != nil {
		return badCLI("loading config: %v", err)
	}
	if !cmd.Flags().Changed("threads") && defaults.Threads > 0 {
		opts.threads = defaults.Threads
	}
	if !cmd.Flags().Changed("num-trials") && defaults.NumTrials > 0 {
		opts.numTrials = defaults.NumTrials
	}
	if opts.numTrials <= 0 {
		opts.numTrials = 1
	}

	opts.kernelParam, err = parseParams(opts.params)
	if err != nil {
		return badCLI("%v", err)
	}

	g, err := loadGraph()
	if err != nil {
		return err
	}
	if opts.relabel || (opts.autoRelabel && csr.ShouldRelabel(g)) {
		g, _ = csr.RelabelByDegree(g)
	}

	cfg := workers.Config{Threads: opts.threads}

	switch opts.kernel {
	case "color":
		return runColor(cmd.OutOrStdout(), g, cfg)
	case "clique":
		return runClique(cmd.OutOrStdout(), g, cfg)
	case "mce":
		return runMCE(cmd.OutOrStdout(), g, cfg)
	default:
		return badCLI("unknown kernel %q: want color, clique, or mce", opts.kernel)
	}
}

func parseParams(raw []string) (map[string]string, error) {
	out := make(map[string]string, len(raw))
	for _, p := range raw {
		name, value, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("malformed -p parameter %q: want name=value", p)
		}
		out[name] = value
	}
	return out, nil
}

func loadGraph() (*csr.Graph, error) {
	switch {
	case opts.file != "":
		f, err := os.Open(opts.file)
		if err != nil {
			return nil, badState("opening %s: %v", opts.file, err)
		}
		defer f.Close()
		if strings.HasSuffix(opts.file, ".sg") {
			g, err := ioedgelist.ReadSnapshot(f)
			if err != nil {
				return nil, badState("reading snapshot %s: %v", opts.file, err)
			}
			return g, nil
		}
		g, err := ioedgelist.ReadEdgeList(f, opts.undirected, workers.DefaultConfig())
		if err != nil {
			return nil, badState("reading edge list %s: %v", opts.file, err)
		}
		return g, nil
	case opts.gen != "":
		n := 1 << uint(opts.scale)
		switch opts.gen {
		case "uniform":
			p := float64(opts.degree) / float64(n-1)
			return gen.Uniform(n, p, 1), nil
		case "kronecker":
			return gen.Kronecker(opts.scale, opts.degree, 1), nil
		default:
			return nil, badCLI("unknown generator %q: want uniform or kronecker", opts.gen)
		}
	default:
		return nil, badCLI("one of --file or --gen is required")
	}
}

// report prints one @@@ trial line: the trial index, elapsed seconds, the
// kernel's result summary, and (if -v was given) a PASS/FAIL tag.
func report(w io.Writer, trial int, elapsed time.Duration, summary string, verified *bool) {
	tag := ""
	if verified != nil {
		if *verified {
			tag = " PASS"
		} else {
			tag = " FAIL"
		}
	}
	fmt.Fprintf(w, "@@@ trial=%d seconds=%.6f %s%s\n", trial, elapsed.Seconds(), summary, tag)
}

func runColor(w io.Writer, g *csr.Graph, cfg workers.Config) error {
	engine := opts.kernelParam["engine"]
	if engine == "" {
		engine = "barenboim"
	}

	for trial := 1; trial <= opts.numTrials; trial++ {
		var res coloring.Result
		start := time.Now()
		switch engine {
		case "barenboim":
			bcfg := coloring.DefaultBarenboimConfig()
			bcfg.Workers = cfg
			res = coloring.Barenboim(g, bcfg)
		case "elkin":
			ecfg := coloring.DefaultElkinConfig()
			ecfg.Workers = cfg
			res = coloring.Elkin(g, ecfg)
		case "johansson":
			jcfg := coloring.DefaultJohanssonConfig()
			jcfg.Workers = cfg
			res = coloring.Johansson(g, jcfg)
		case "jones-v1":
			jcfg := coloring.DefaultJonesV1Config()
			jcfg.Workers = cfg
			res = coloring.JonesV1(g, jcfg)
		case "jones-v3":
			jcfg := coloring.DefaultJonesV3Config()
			jcfg.Workers = cfg
			res = coloring.JonesV3(g, jcfg)
		case "jones-v4":
			jcfg := coloring.DefaultJonesV4Config()
			jcfg.Workers = cfg
			res = coloring.JonesV4(g, jcfg)
		case "densesparse":
			dcfg := coloring.DefaultDenseSparseConfig()
			dcfg.Workers = cfg
			res = coloring.DenseSparse(g, dcfg)
		default:
			return badCLI("unknown color engine %q: want barenboim, elkin, johansson, jones-v1, jones-v3, jones-v4, or densesparse", engine)
		}
		elapsed := time.Since(start)

		var ok *bool
		if opts.verify {
			v := verify.Coloring(g, res.Colors)
			ok = &v
		}
		report(w, trial, elapsed, fmt.Sprintf("kernel=color engine=%s delta=%d", engine, res.Delta), ok)
	}
	return nil
}

func runClique(w io.Writer, g *csr.Graph, cfg workers.Config) error {
	k := 3
	if v, ok := opts.kernelParam["clique-size"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return badCLI("bad clique-size %q: %v", v, err)
		}
		k = n
	}

	dcfg := clique.DefaultDriverConfig()
	dcfg.Workers = cfg
	dg := order.Direct(g, order.Degeneracy(g))

	for trial := 1; trial <= opts.numTrials; trial++ {
		start := time.Now()
		count := clique.CountNodeParallel(dg, k, dcfg)
		elapsed := time.Since(start)

		var ok *bool
		if opts.verify {
			v := verify.CliqueCount(g, k, count)
			ok = &v
		}
		report(w, trial, elapsed, fmt.Sprintf("kernel=clique k=%d count=%d", k, count), ok)
	}
	return nil
}

func runMCE(w io.Writer, g *csr.Graph, cfg workers.Config) error {
	variant := opts.kernelParam["variant"]
	if variant == "" {
		variant = "eppstein"
	}

	ranking := order.Degeneracy(g)

	for trial := 1; trial <= opts.numTrials; trial++ {
		var count int64
		start := time.Now()
		switch variant {
		case "tomita":
			sg := setgraph.FromCSR(g, set.Sorted)
			sink, result := bronkerbosch.CountSink()
			bronkerbosch.Tomita(sg, set.Sorted, sink)
			count = int64(result())
		case "eppstein":
			ecfg := bronkerbosch.DefaultEppsteinConfig()
			ecfg.Workers = cfg
			res := bronkerbosch.Eppstein(g, ranking, ecfg)
			count = res.Count
		case "subgraph":
			scfg := bronkerbosch.DefaultSubgraphConfig()
			scfg.Workers = cfg
			res := bronkerbosch.Subgraph(g, ranking, scfg)
			count = res.Count
		default:
			return badCLI("unknown mce variant %q: want tomita, eppstein, or subgraph", variant)
		}
		elapsed := time.Since(start)

		report(w, trial, elapsed, fmt.Sprintf("kernel=mce variant=%s cliques=%d", variant, count), nil)
	}
	return nil
}
