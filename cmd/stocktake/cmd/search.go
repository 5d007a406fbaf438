package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stocktake/stocktake/pkg/audit"
	"github.com/stocktake/stocktake/pkg/query"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(rt Runtime) *cobra.Command {
	var (
		keyword  string
		kind     string
		minPrice float64
		maxPrice float64
	)

	cmd := &cobra.Command{
		Use:     "search",
		GroupID: "inventory",
		Short:   "Search the catalog by keyword, type, and price range",
		Example: `  stocktake search --keyword thinkpad
  stocktake search --type phone --max-price 800
  stocktake search --min-price 500 --max-price 1500`,
		RunE: func(_ *cobra.Command, _ []string) error {
			kindFilter, ok := query.ParseKindFilter(kind)
			if !ok {
				return fmt.Errorf("unknown product type %q (want all, laptop, or phone)", kind)
			}

			criteria := query.Criteria{
				Keyword:  keyword,
				Kind:     kindFilter,
				MinPrice: minPrice,
				MaxPrice: maxPrice,
			}
			return searchProducts(rt, criteria)
		},
	}

	cmd.Flags().StringVar(&keyword, "keyword", "", "Case-insensitive substring over name and brand")
	cmd.Flags().StringVar(&kind, "type", "all", "Product type: all, laptop, phone")
	cmd.Flags().Float64Var(&minPrice, "min-price", query.Unbounded, "Minimum price (-1 for unbounded)")
	cmd.Flags().Float64Var(&maxPrice, "max-price", query.Unbounded, "Maximum price (-1 for unbounded)")

	return cmd
}

func searchProducts(rt Runtime, criteria query.Criteria) error {
	store, err := rt.Store()
	if err != nil {
		return err
	}

	results, err := query.Filter(store.Products(), criteria)
	if err != nil {
		return err
	}

	detail := fmt.Sprintf("keyword=%q type=%s min=%v max=%v -> %d hits",
		criteria.Keyword, criteria.Kind, criteria.MinPrice, criteria.MaxPrice, len(results))
	if len(results) == 0 {
		_ = rt.Audit().Log(audit.ActionSearchEmpty, detail)
		rt.Console().Info("No products matched")
		return nil
	}
	_ = rt.Audit().Log(audit.ActionSearch, detail)

	return renderProducts(rt, results, false)
}
