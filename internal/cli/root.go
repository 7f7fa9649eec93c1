package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/trovekit/trove/pkg/buildinfo"
)

// Execute runs the trovegen CLI and returns an error if any command fails.
//
// The root command wires up the generate, diff, and cache subcommands,
// configures logging from the --verbose flag, and attaches the logger to the
// command context for all subcommands.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:           "trovegen",
		Short:         "trovegen maintains the generated trove classifier catalog",
		Long:          `trovegen regenerates the Go classifier table in pkg/trove from the authoritative PyPI catalog, and reports drift between the built-in snapshot and upstream.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newDiffCmd())
	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}
