package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/aymericzip/benchmark-intl/benchmark"
	"github.com/aymericzip/benchmark-intl/implementations"
	"github.com/aymericzip/benchmark-intl/locales"
	"github.com/aymericzip/benchmark-intl/render"
	"github.com/aymericzip/benchmark-intl/tui"
	"github.com/aymericzip/benchmark-intl/workload"
)

type options struct {
	batches   int
	batchSize int
	seed      uint64
	logLevel  string
	runs      int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "benchmark-intl",
		Short: "Measure formatter construction cost inside a live render cycle",
		Long: `benchmark-intl measures the wall-clock cost of two interchangeable
strategies for producing locale-aware date formatters: one that constructs
a fresh formatter on every render and one that reuses instances from a
locale+options-keyed cache. Each trigger forces a full remount of the same
pre-generated locale dataset and reports the render-to-commit duration.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := setupLogging(opts.logLevel)
			if err != nil {
				return err
			}
			return runTUI(opts, logger)
		},
	}

	pf := cmd.PersistentFlags()
	pf.IntVar(&opts.batches, "batches", 20, "number of dataset batches")
	pf.IntVar(&opts.batchSize, "batch-size", 50, "locales per batch, sampled without replacement")
	pf.Uint64Var(&opts.seed, "seed", 0, "RNG seed for shuffle and locale switching (0 = clock)")
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark headless and print a comparison table",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := setupLogging(opts.logLevel)
			if err != nil {
				return err
			}
			return runHeadless(opts, logger)
		},
	}
	runCmd.Flags().IntVar(&opts.runs, "runs", 10, "triggers per strategy")
	cmd.AddCommand(runCmd)

	return cmd
}

func setupLogging(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger, nil
}

// harness bundles the process-wide benchmark state: the dataset is
// generated exactly once here and shared by reference with both variants.
type harness struct {
	dataset    workload.Dataset
	controller *benchmark.Controller
	strategies [2]benchmark.FormatterStrategy
	trees      [2]*render.Tree
	names      [2]string
}

func newHarness(opts *options, logger *slog.Logger) (*harness, error) {
	dataset, err := workload.Generate(locales.Catalog(), opts.batchSize, opts.batches, opts.seed)
	if err != nil {
		return nil, err
	}

	uncached := implementations.NewUncachedStrategy()
	cached, err := implementations.NewCachedStrategy()
	if err != nil {
		return nil, fmt.Errorf("initialize cached strategy: %w", err)
	}

	fopts := benchmark.DefaultOptions()
	h := &harness{
		dataset:    dataset,
		controller: benchmark.NewController(locales.DisplayAlternatives(), opts.seed, logger),
	}
	h.strategies[benchmark.Uncached] = uncached
	h.strategies[benchmark.Cached] = cached
	h.trees[benchmark.Uncached] = render.NewTree(uncached, fopts)
	h.trees[benchmark.Cached] = render.NewTree(cached, fopts)
	h.names[benchmark.Uncached] = uncached.Name()
	h.names[benchmark.Cached] = cached.Name()

	logger.Info("dataset generated",
		slog.String("session_id", h.controller.SessionID()),
		slog.Int("batches", opts.batches),
		slog.Int("batch_size", opts.batchSize),
	)
	return h, nil
}

func (h *harness) close() {
	for _, s := range h.strategies {
		_ = s.Close()
	}
}

func runTUI(opts *options, logger *slog.Logger) error {
	h, err := newHarness(opts, logger)
	if err != nil {
		return err
	}
	defer h.close()

	model := tui.NewModel(h.controller, h.dataset, h.trees, h.names)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func runHeadless(opts *options, logger *slog.Logger) error {
	h, err := newHarness(opts, logger)
	if err != nil {
		return err
	}
	defer h.close()

	runner := benchmark.NewRunner(h.controller, logger)
	variants := []benchmark.Variant{benchmark.Uncached, benchmark.Cached}

	results := make([]benchmark.Result, 0, len(variants))
	for _, v := range variants {
		subtree := render.VariantSubtree{Tree: h.trees[v], Dataset: h.dataset}
		result, err := runner.Run(v, h.names[v], subtree, opts.runs)
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	printComparison(results)
	return nil
}

func printComparison(results []benchmark.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight|tabwriter.Debug)
	fmt.Fprintln(w, "Strategy\tRuns\tLabels Built\tAvg (ms)\tP95 (ms)\t")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.1f\t%.1f\t\n",
			r.StrategyName,
			r.Runs,
			r.Constructed,
			float64(r.Avg().Microseconds())/1000.0,
			float64(r.P95().Microseconds())/1000.0,
		)
	}
	w.Flush()
}
