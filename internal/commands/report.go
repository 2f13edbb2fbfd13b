package commands

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/spendview-dev/spendview/internal/pivot"
)

func newReportCommand(log zerolog.Logger) *cobra.Command {
	var opts pipelineOptions
	var by string

	cmd := &cobra.Command{
		Use:   "report [files...]",
		Short: "Parse, categorize and summarize statement exports",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, res, err := runPipeline(log, args, opts)
			if err != nil {
				return err
			}
			for _, f := range res.Failures {
				log.Warn().Str("file", f.File).Err(f.Err).Msg("file skipped")
			}

			out := cmd.OutOrStdout()
			total := table.Sum()
			avg := decimal.Zero
			if len(table) > 0 {
				avg = total.Div(decimal.NewFromInt(int64(len(table)))).Round(2)
			}
			fmt.Fprintf(out, "Transactions: %d  Total: %s  Average: %s\n\n",
				len(table), total.StringFixed(2), avg.StringFixed(2))

			switch by {
			case "category":
				renderCategoryPivot(out, pivot.ByCategoryMonth(table))
			case "merchant":
				renderMerchantPivot(out, pivot.ByMerchantMonth(table))
			case "drilldown":
				renderDrilldown(out, pivot.ByCategoryMerchant(table))
			default:
				return fmt.Errorf("unknown --by value %q (want category, merchant or drilldown)", by)
			}
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&by, "by", "category", "pivot to render: category, merchant or drilldown")

	return cmd
}

func renderCategoryPivot(w io.Writer, p pivot.CategoryPivot) {
	tw := tablewriter.NewWriter(w)
	header := append([]string{"Category"}, p.Months...)
	tw.SetHeader(append(header, pivot.TotalLabel))

	for _, row := range p.Rows {
		cells := []string{row.Category}
		for _, m := range p.Months {
			cells = append(cells, row.ByMonth[m].StringFixed(2))
		}
		tw.Append(append(cells, row.Total.StringFixed(2)))
	}

	footer := []string{pivot.TotalLabel}
	for _, m := range p.Months {
		footer = append(footer, p.MonthTotals[m].StringFixed(2))
	}
	tw.Append(append(footer, p.GrandTotal.StringFixed(2)))

	tw.Render()
}

func renderMerchantPivot(w io.Writer, p pivot.MerchantPivot) {
	tw := tablewriter.NewWriter(w)
	header := append([]string{"Merchant", "Category"}, p.Months...)
	tw.SetHeader(append(header, pivot.TotalLabel))

	for _, row := range p.Rows {
		cells := []string{row.Merchant, row.Category}
		for _, m := range p.Months {
			cells = append(cells, row.ByMonth[m].StringFixed(2))
		}
		tw.Append(append(cells, row.Total.StringFixed(2)))
	}

	tw.Render()
}

func renderDrilldown(w io.Writer, totals []pivot.MerchantTotal) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Category", "Merchant", "Amount"})

	for _, t := range totals {
		tw.Append([]string{t.Category, t.Merchant, t.Amount.StringFixed(2)})
	}

	tw.Render()
}
