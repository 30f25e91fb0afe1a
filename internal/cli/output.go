package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/hupe1980/vecexpr/internal/bench"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

// output handles JSON vs text output for CLI commands.
type output struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
}

func newOutput(opts *RootOptions, cmd *cobra.Command) *output {
	return &output{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}
}

// JSON writes v as indented JSON.
func (o *output) JSON(v any) error {
	enc := json.NewEncoder(o.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Textf writes formatted text.
func (o *output) Textf(format string, args ...any) error {
	_, err := fmt.Fprintf(o.Writer, format, args...)
	return err
}

// Report writes a benchmark report.
func (o *output) Report(r *bench.Report) error {
	if o.Format == "json" {
		return o.JSON(r)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("strategy", "dim", "iterations", "depth", "elapsed", "ns/op", "sum[0]", "run id")
	for _, res := range r.Results {
		t.Row(
			string(res.Strategy),
			strconv.Itoa(res.Dimension),
			strconv.Itoa(res.Iterations),
			strconv.Itoa(res.Depth),
			res.Elapsed.String(),
			strconv.FormatFloat(res.NsPerOp, 'f', 1, 64),
			strconv.FormatFloat(res.First, 'g', -1, 64),
			res.RunID,
		)
	}

	cpu := fmt.Sprintf("%s/%s, %d cpus, isa=%s", r.CPU.GOOS, r.CPU.GOARCH, r.CPU.NumCPU, r.CPU.BestName)
	return o.Textf("%s\n%s\n%s\n", titleStyle.Render("vecexpr bench"), mutedStyle.Render(cpu), t.String())
}
