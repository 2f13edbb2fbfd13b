package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spendview-dev/spendview/internal/categorize"
	"github.com/spendview-dev/spendview/internal/config"
)

// taxonomyFileName is the category taxonomy written next to the config.
const taxonomyFileName = "taxonomy.yaml"

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default spendview.yaml and taxonomy.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(absDir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized spendview config at %s\n", absDir)
			return nil
		},
	}
	return cmd
}

func runInit(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	taxonomyPath := filepath.Join(dir, taxonomyFileName)
	if err := categorize.Save(taxonomyPath, categorize.Default()); err != nil {
		return fmt.Errorf("writing taxonomy: %w", err)
	}

	cfg := config.Default()
	cfg.Taxonomy.Path = taxonomyPath
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
