package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/spendview-dev/spendview/internal/export"
)

func newExportCommand(log zerolog.Logger) *cobra.Command {
	var opts pipelineOptions
	var out string

	cmd := &cobra.Command{
		Use:   "export [files...]",
		Short: "Parse, categorize and export the normalized transaction table",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, res, err := runPipeline(log, args, opts)
			if err != nil {
				return err
			}
			for _, f := range res.Failures {
				log.Warn().Str("file", f.File).Err(f.Err).Msg("file skipped")
			}

			switch strings.ToLower(filepath.Ext(out)) {
			case ".csv":
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				if err := export.WriteCSV(f, table); err != nil {
					return err
				}
			case ".xlsx":
				if err := export.WriteXLSX(out, table); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unsupported output format %q (want .csv or .xlsx)", filepath.Ext(out))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d transactions to %s\n", len(table), out)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "transactions.csv", "output file (.csv or .xlsx)")

	return cmd
}
