package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

// VersionInfo is the payload of the version command.
type VersionInfo struct {
	Version string `json:"version"`
	Go      string `json:"go"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newOutput(rootOpts, cmd)
			info := VersionInfo{Version: Version, Go: runtime.Version()}
			if out.Format == "json" {
				return out.JSON(info)
			}
			return out.Textf("vecexpr %s (%s)\n", info.Version, info.Go)
		},
	}
}
