package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendview-dev/spendview/internal/config"
	"github.com/spendview-dev/spendview/internal/parser"
)

func newScanCommand() *cobra.Command {
	var dir string
	var days int

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List recent statement exports in the download directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.Scan.Dir
			}
			if days <= 0 {
				days = cfg.Scan.Days
			}

			files, err := parser.FindRecent(dir, days)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory to scan (default ~/Downloads)")
	cmd.Flags().IntVar(&days, "days", 0, "lookback window in days")

	return cmd
}
