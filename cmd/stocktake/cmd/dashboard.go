package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/stocktake/stocktake/internal/cmd/output"
	"github.com/stocktake/stocktake/internal/cmd/table"
	"github.com/stocktake/stocktake/pkg/query"
)

// NewDashboardCommand creates the dashboard command.
func NewDashboardCommand(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		GroupID: "inventory",
		Short:   "Show stock totals, per-type breakdown, and the priciest products",
		Aliases: []string{"stats"},
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := rt.Store()
			if err != nil {
				return err
			}

			summary := query.Dashboard(store.Products())

			format := output.DetectFormat(rt.OutputFormat())
			formatter := output.NewFormatter(format)

			var data any
			switch format {
			case output.FormatTable:
				data = table.SummaryToTableData(summary)
			default:
				data = summary
			}
			return formatter.Format(os.Stdout, data)
		},
	}
}
