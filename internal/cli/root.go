package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/hupe1980/vecexpr"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the vecexpr CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "vecexpr",
		Short: "Lazy element-wise vector expressions",
		Long: `vecexpr evaluates element-wise vector sums lazily, without
temporary vectors, and compares that against eager evaluation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", DefaultFormat(os.Stdout), "output format (json|text)")

	cmd.AddCommand(NewBenchCommand(opts))
	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// DefaultFormat returns "text" when w is a terminal and "json" otherwise.
func DefaultFormat(w io.Writer) string {
	f, ok := w.(*os.File)
	if !ok {
		return "json"
	}
	fd := f.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return "text"
	}
	return "json"
}

// newLogger builds the diagnostic logger. Logs always go to w (stderr).
func (o *RootOptions) newLogger(w io.Writer) *vecexpr.Logger {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	if o.Format == "json" {
		return vecexpr.NewJSONLogger(w, level)
	}
	return vecexpr.NewTextLogger(w, level)
}
