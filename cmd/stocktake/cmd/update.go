package cmd

import (
	"github.com/spf13/cobra"

	"github.com/stocktake/stocktake/pkg/audit"
	"github.com/stocktake/stocktake/pkg/catalog"
	"github.com/stocktake/stocktake/pkg/product"
)

// NewUpdateCommand creates the update command. Only flags the user
// actually set are applied; everything else is left unchanged.
func NewUpdateCommand(rt Runtime) *cobra.Command {
	var (
		name     string
		brand    string
		price    float64
		quantity int
		active   bool
		warranty int
		has5G    bool
	)

	cmd := &cobra.Command{
		Use:     "update <id>",
		GroupID: "inventory",
		Short:   "Update fields of an existing product",
		Args:    cobra.ExactArgs(1),
		Example: `  stocktake update LP01 --price 1299.00
  stocktake update PH02 --quantity 8 --active=false`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			var u catalog.Update
			if cmd.Flags().Changed("name") {
				u.Name = &name
			}
			if cmd.Flags().Changed("brand") {
				u.Brand = &brand
			}
			if cmd.Flags().Changed("price") {
				u.Price = &price
			}
			if cmd.Flags().Changed("quantity") {
				u.Quantity = &quantity
			}
			if cmd.Flags().Changed("active") {
				u.Active = &active
			}
			if cmd.Flags().Changed("warranty") {
				u.WarrantyMonths = &warranty
			}
			if cmd.Flags().Changed("5g") {
				u.Support5G = &has5G
			}

			if u.IsZero() {
				rt.Console().Info("Nothing to update for %s", id)
				return nil
			}

			return updateProduct(rt, id, u)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New product name")
	cmd.Flags().StringVar(&brand, "brand", "", "New brand")
	cmd.Flags().Float64Var(&price, "price", 0, "New unit price")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "New stock quantity")
	cmd.Flags().BoolVar(&active, "active", true, "Listed for sale")
	cmd.Flags().IntVar(&warranty, "warranty", 0, "New warranty period in months (laptops only)")
	cmd.Flags().BoolVar(&has5G, "5g", false, "Phone supports 5G (phones only)")

	return cmd
}

// updateProduct applies the partial update, persists the catalog, and
// audits the outcome.
func updateProduct(rt Runtime, id string, u catalog.Update) error {
	store, err := rt.Store()
	if err != nil {
		return err
	}

	updated, err := store.Update(id, u)
	if err != nil {
		_ = rt.Audit().Logf(audit.ActionUpdateFail, "%s: %v", id, err)
		return err
	}
	_ = rt.Audit().Log(audit.ActionUpdate, product.Encode(updated))

	if err := rt.SaveStore(); err != nil {
		return err
	}

	rt.Console().Success("Updated %s", updated)
	return nil
}
