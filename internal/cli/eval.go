package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecexpr"
	"github.com/hupe1980/vecexpr/internal/bench"
)

// EvalResult is the JSON payload of the eval command.
type EvalResult struct {
	Strategy   bench.Strategy `json:"strategy"`
	Dimension  int            `json:"dimension"`
	Iterations int            `json:"iterations"`
	Values     []float64      `json:"values"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		dim        int
		iterations int
		strategy   string
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Print sum after accumulating (a + b) + (c + d)",
		Long: `Start from sum = ones, accumulate (a + b) + (c + d) with a = b = c = ones
and d = zeros the given number of times and print sum.

Example:
  vecexpr eval
  vecexpr eval --dim 8 -n 3 --strategy program`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newOutput(rootOpts, cmd)

			s, err := bench.ParseStrategy(strategy)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid strategy", err)
			}

			values, err := bench.Evaluate(dim, s, iterations)
			if err != nil {
				var ide *vecexpr.ErrInvalidDimension
				if errors.As(err, &ide) || errors.Is(err, bench.ErrInvalidIterations) {
					return WrapExitError(ExitCommandError, "invalid eval settings", err)
				}
				return WrapExitError(ExitFailure, "eval failed", err)
			}

			if out.Format == "json" {
				return out.JSON(EvalResult{
					Strategy:   s,
					Dimension:  dim,
					Iterations: iterations,
					Values:     values,
				})
			}
			return out.Textf("%s\n", formatValues(values))
		},
	}

	f := cmd.Flags()
	f.IntVar(&dim, "dim", 4, fmt.Sprintf("vector dimension, one of %v", bench.SupportedDimensions()))
	f.IntVarP(&iterations, "iterations", "n", 1, "number of accumulations")
	f.StringVar(&strategy, "strategy", string(bench.StrategyLazy), "strategy (eager|lazy|program)")

	return cmd
}

func formatValues(values []float64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}
