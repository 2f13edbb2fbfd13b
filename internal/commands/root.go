package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendview-dev/spendview/internal/buildinfo"
	"github.com/spendview-dev/spendview/internal/logging"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	log := logging.New()

	rootCmd := &cobra.Command{
		Use:     "spendview",
		Short:   "Normalize, categorize and summarize bank statement exports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newReportCommand(log))
	rootCmd.AddCommand(newExportCommand(log))

	return rootCmd
}
