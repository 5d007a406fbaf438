package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/stocktake/stocktake/internal/cmd/output"
	"github.com/stocktake/stocktake/internal/cmd/table"
	"github.com/stocktake/stocktake/pkg/product"
)

// NewListCommand creates the list command.
func NewListCommand(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		GroupID: "inventory",
		Short:   "List all products in the catalog",
		Long: `List displays every product in the catalog sorted by ID, and warns
about products that are low on stock.`,
		Aliases: []string{"ls"},
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := rt.Store()
			if err != nil {
				return err
			}
			return renderProducts(rt, store.Products(), true)
		},
	}
}

// renderProducts writes products in the configured output format and,
// for table output, appends low-stock warnings.
func renderProducts(rt Runtime, products []product.Product, warnLowStock bool) error {
	if len(products) == 0 {
		rt.Console().Info("No products in catalog")
		return nil
	}

	format := output.DetectFormat(rt.OutputFormat())
	formatter := output.NewFormatter(format)

	var data any
	switch format {
	case output.FormatTable:
		data = table.ProductsToTableData(products)
	default:
		data = products
	}

	if err := formatter.Format(os.Stdout, data); err != nil {
		return err
	}

	if !rt.Quiet() {
		rt.Console().Line("%d products", len(products))
	}

	if warnLowStock && format == output.FormatTable {
		for _, p := range lowStock(products, rt.LowStockThreshold()) {
			b := p.Common()
			rt.Console().Warning("Low stock: %s (%s) has only %d left", b.Name, b.ID, b.Quantity)
		}
	}
	return nil
}

// lowStock returns products with 0 < quantity < threshold.
func lowStock(products []product.Product, threshold int) []product.Product {
	var low []product.Product
	for _, p := range products {
		q := p.Common().Quantity
		if q > 0 && q < threshold {
			low = append(low, p)
		}
	}
	return low
}
