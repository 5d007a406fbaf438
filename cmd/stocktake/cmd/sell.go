package cmd

import (
	"os"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/stocktake/stocktake/internal/cmd/output"
	"github.com/stocktake/stocktake/internal/cmd/table"
	"github.com/stocktake/stocktake/pkg/audit"
	"github.com/stocktake/stocktake/pkg/errors"
	"github.com/stocktake/stocktake/pkg/ledger"
)

// NewSellCommand creates the sell command.
func NewSellCommand(rt Runtime) *cobra.Command {
	var student bool

	cmd := &cobra.Command{
		Use:     "sell <id> <quantity>",
		GroupID: "inventory",
		Short:   "Sell units of a product and print the invoice",
		Long: `Sell decrements stock, applies the per-variant discount (plus the
student discount when requested), prints the invoice, and appends the
sale to the sales history file.`,
		Args: cobra.ExactArgs(2),
		Example: `  stocktake sell LP01 3
  stocktake sell PH02 1 --student`,
		RunE: func(_ *cobra.Command, args []string) error {
			quantity, err := cast.ToIntE(args[1])
			if err != nil {
				return errors.WrapParse("quantity", args[1], err)
			}
			return sellProduct(rt, args[0], quantity, student)
		},
	}

	cmd.Flags().BoolVar(&student, "student", false, "Apply the student discount")
	return cmd
}

// sellProduct executes the sale, appends the ledger record, persists
// the catalog, and prints the invoice.
func sellProduct(rt Runtime, id string, quantity int, student bool) error {
	store, err := rt.Store()
	if err != nil {
		return err
	}

	receipt, err := store.Sell(id, quantity, student)
	if err != nil {
		_ = rt.Audit().Logf(audit.ActionSellFail, "%s x%d: %v", id, quantity, err)
		return err
	}
	_ = rt.Audit().Log(audit.ActionSell, ledger.FormatRecord(receipt))

	if err := rt.Ledger().Append(receipt); err != nil {
		// The sale is already committed in memory; report but keep going
		// so the invoice and catalog save still happen.
		rt.Logger().Error().Err(err).Str("path", rt.Ledger().Path()).
			Msg("Failed to append sales history record")
	}

	if err := rt.SaveStore(); err != nil {
		return err
	}

	format := output.DetectFormat(rt.OutputFormat())
	formatter := output.NewFormatter(format)

	var data any
	switch format {
	case output.FormatTable:
		data = table.ReceiptToTableData(receipt)
	default:
		data = receipt
	}
	if err := formatter.Format(os.Stdout, data); err != nil {
		return err
	}

	if format == output.FormatTable {
		rt.Console().Success("Total due: %s", table.FormatMoney(receipt.FinalAmount))
	}
	return nil
}
