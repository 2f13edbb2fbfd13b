package commands

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/spendview-dev/spendview/internal/categorize"
	"github.com/spendview-dev/spendview/internal/config"
	"github.com/spendview-dev/spendview/internal/model"
	"github.com/spendview-dev/spendview/internal/parser"
)

// pipelineOptions are the flags shared by report and export.
type pipelineOptions struct {
	dir      string
	days     int
	taxonomy string
	from     string
	to       string
}

func (o *pipelineOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.dir, "dir", "", "directory to scan when no files are given (default ~/Downloads)")
	cmd.Flags().IntVar(&o.days, "days", 0, "discovery lookback window in days")
	cmd.Flags().StringVar(&o.taxonomy, "taxonomy", "", "path to a taxonomy YAML (default built-in)")
	cmd.Flags().StringVar(&o.from, "from", "", "start date filter (YYYY-MM-DD)")
	cmd.Flags().StringVar(&o.to, "to", "", "end date filter (YYYY-MM-DD)")
}

// runPipeline parses, categorizes and date-filters the input statements.
// Files come from the arguments, or from a discovery scan when none are
// given. Per-file failures ride along in the BatchResult.
func runPipeline(log zerolog.Logger, args []string, opts pipelineOptions) (model.Table, parser.BatchResult, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, parser.BatchResult{}, err
	}

	files := args
	if len(files) == 0 {
		dir := opts.dir
		if dir == "" {
			dir = cfg.Scan.Dir
		}
		days := opts.days
		if days <= 0 {
			days = cfg.Scan.Days
		}
		files, err = parser.FindRecent(dir, days)
		if err != nil {
			return nil, parser.BatchResult{}, err
		}
	}

	dispatcher := parser.NewDispatcher(log)
	res, err := dispatcher.ParseFiles(files)
	if err != nil {
		return nil, res, err
	}

	tax := categorize.Default()
	taxPath := opts.taxonomy
	if taxPath == "" {
		taxPath = cfg.Taxonomy.Path
	}
	if taxPath != "" {
		tax, err = categorize.Load(taxPath)
		if err != nil {
			return nil, res, err
		}
	}
	matcher, err := categorize.NewMatcher(tax)
	if err != nil {
		return nil, res, err
	}
	table, _ := matcher.Apply(res.Transactions)

	from, to, err := parseDateRange(opts.from, opts.to)
	if err != nil {
		return nil, res, err
	}
	if !from.IsZero() || !to.IsZero() {
		table = table.Between(from, to)
	}

	return table, res, nil
}

func parseDateRange(from, to string) (time.Time, time.Time, error) {
	var f, t time.Time
	var err error
	if from != "" {
		f, err = time.Parse("2006-01-02", from)
		if err != nil {
			return f, t, fmt.Errorf("parsing --from %q: %w", from, err)
		}
	}
	if to != "" {
		t, err = time.Parse("2006-01-02", to)
		if err != nil {
			return f, t, fmt.Errorf("parsing --to %q: %w", to, err)
		}
	}
	return f, t, nil
}
