package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecexpr"
	"github.com/hupe1980/vecexpr/internal/bench"
	"github.com/hupe1980/vecexpr/internal/promcollector"
)

// BenchOptions holds flags for the bench command.
type BenchOptions struct {
	*RootOptions
	ConfigPath string
	Config     BenchConfig
}

// NewBenchCommand creates the bench command.
func NewBenchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BenchOptions{RootOptions: rootOpts, Config: DefaultBenchConfig()}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time eager and lazy evaluation of a four-operand sum",
		Long: `Repeatedly evaluate sum += (a + b) + (c + d) with a = b = c = ones,
d = zeros and sum = ones, once per strategy, and report the elapsed time.

Strategies:
  eager    allocate a temporary vector per operator
  lazy     build an expression tree and accumulate it
  program  accumulate an arena-backed expression built once

Example:
  vecexpr bench
  vecexpr bench -n 1000000 --dim 64 --strategy lazy --strategy program
  vecexpr bench --config bench.yaml --metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.resolve(cmd); err != nil {
				return err
			}
			return runBench(cmd.Context(), opts, cmd)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.ConfigPath, "config", "", "YAML config file (flags override it)")
	f.IntVarP(&opts.Config.Iterations, "iterations", "n", opts.Config.Iterations, "accumulations per strategy")
	f.IntVar(&opts.Config.Dimension, "dim", opts.Config.Dimension, fmt.Sprintf("vector dimension, one of %v", bench.SupportedDimensions()))
	f.StringArrayVar(&opts.Config.Strategies, "strategy", nil, "strategy to run (eager|lazy|program), repeatable; default all")
	f.BoolVar(&opts.Config.Metrics, "metrics", false, "write Prometheus metrics to stderr")
	f.BoolVar(&opts.Config.PerAccumulate, "per-accumulate", false, "time every accumulate call (implies overhead)")

	return cmd
}

// resolve merges the config file under the explicitly set flags.
func (o *BenchOptions) resolve(cmd *cobra.Command) error {
	if o.ConfigPath != "" {
		fileCfg, err := LoadBenchConfig(o.ConfigPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid config", err)
		}

		f := cmd.Flags()
		if !f.Changed("iterations") {
			o.Config.Iterations = fileCfg.Iterations
		}
		if !f.Changed("dim") {
			o.Config.Dimension = fileCfg.Dimension
		}
		if !f.Changed("strategy") {
			o.Config.Strategies = fileCfg.Strategies
		}
		if !f.Changed("metrics") {
			o.Config.Metrics = fileCfg.Metrics
		}
		if !f.Changed("per-accumulate") {
			o.Config.PerAccumulate = fileCfg.PerAccumulate
		}
	}

	if err := o.Config.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid bench settings", err)
	}
	return nil
}

func runBench(ctx context.Context, opts *BenchOptions, cmd *cobra.Command) error {
	out := newOutput(opts.RootOptions, cmd)
	logger := opts.newLogger(out.ErrWriter)

	strategies, err := bench.ParseStrategies(opts.Config.Strategies)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid strategy", err)
	}

	var (
		metrics   vecexpr.MetricsCollector = vecexpr.NoopMetricsCollector{}
		collector *promcollector.Collector
	)
	if opts.Config.Metrics {
		collector = promcollector.New()
		metrics = collector
	}

	report, err := bench.RunDim(ctx, opts.Config.Dimension,
		bench.WithIterations(opts.Config.Iterations),
		bench.WithStrategies(strategies...),
		bench.WithLogger(logger),
		bench.WithMetricsCollector(metrics),
		bench.WithPerAccumulateMetrics(opts.Config.PerAccumulate),
	)
	if err != nil {
		var ide *vecexpr.ErrInvalidDimension
		if errors.As(err, &ide) {
			return WrapExitError(ExitCommandError, "unsupported dimension", err)
		}
		return WrapExitError(ExitFailure, "bench failed", err)
	}

	if err := out.Report(report); err != nil {
		return err
	}

	if collector != nil {
		if err := collector.WriteText(out.ErrWriter); err != nil {
			return WrapExitError(ExitFailure, "write metrics", err)
		}
	}

	want := bench.Expected(opts.Config.Iterations)
	for _, res := range report.Results {
		if res.First != want {
			return NewExitError(ExitFailure,
				fmt.Sprintf("strategy %s: sum[0] = %g, want %g", res.Strategy, res.First, want))
		}
	}

	return nil
}
