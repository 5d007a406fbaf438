package cmd

import (
	"github.com/spf13/cobra"

	"github.com/stocktake/stocktake/pkg/audit"
	"github.com/stocktake/stocktake/pkg/product"
)

// NewAddCommand creates the add command with its laptop and phone
// subcommands.
func NewAddCommand(rt Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add",
		GroupID: "inventory",
		Short:   "Add a product to the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newAddLaptopCommand(rt))
	cmd.AddCommand(newAddPhoneCommand(rt))
	return cmd
}

// addFlags holds the fields shared by both product variants.
type addFlags struct {
	id       string
	name     string
	brand    string
	price    float64
	quantity int
	inactive bool
}

func registerAddFlags(cmd *cobra.Command, f *addFlags) {
	cmd.Flags().StringVar(&f.id, "id", "", "Product ID (unique, case-insensitive)")
	cmd.Flags().StringVar(&f.name, "name", "", "Product name")
	cmd.Flags().StringVar(&f.brand, "brand", "", "Brand")
	cmd.Flags().Float64Var(&f.price, "price", 0, "Unit price")
	cmd.Flags().IntVar(&f.quantity, "quantity", 0, "Units in stock")
	cmd.Flags().BoolVar(&f.inactive, "inactive", false, "Create the product delisted")

	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("brand")
	_ = cmd.MarkFlagRequired("price")
}

func newAddLaptopCommand(rt Runtime) *cobra.Command {
	var (
		flags    addFlags
		warranty int
	)

	cmd := &cobra.Command{
		Use:   "laptop",
		Short: "Add a laptop",
		Example: `  stocktake add laptop --id LP01 --name "ThinkPad X1" --brand Lenovo \
      --price 1499.50 --quantity 5 --warranty 24`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := product.NewLaptop(flags.id, flags.name, flags.brand,
				flags.price, flags.quantity, !flags.inactive, warranty)
			if err != nil {
				return err
			}
			return addProduct(rt, p)
		},
	}

	registerAddFlags(cmd, &flags)
	cmd.Flags().IntVar(&warranty, "warranty", 0, "Warranty period in months")
	return cmd
}

func newAddPhoneCommand(rt Runtime) *cobra.Command {
	var (
		flags     addFlags
		support5G bool
	)

	cmd := &cobra.Command{
		Use:   "phone",
		Short: "Add a phone",
		Example: `  stocktake add phone --id PH01 --name "Pixel 9" --brand Google \
      --price 799 --quantity 10 --5g`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := product.NewPhone(flags.id, flags.name, flags.brand,
				flags.price, flags.quantity, !flags.inactive, support5G)
			if err != nil {
				return err
			}
			return addProduct(rt, p)
		},
	}

	registerAddFlags(cmd, &flags)
	cmd.Flags().BoolVar(&support5G, "5g", false, "Phone supports 5G")
	return cmd
}

// addProduct inserts the product, persists the catalog, and audits the
// outcome.
func addProduct(rt Runtime, p product.Product) error {
	store, err := rt.Store()
	if err != nil {
		return err
	}

	if err := store.Add(p); err != nil {
		_ = rt.Audit().Logf(audit.ActionAddFail, "%s: %v", p.Common().ID, err)
		return err
	}
	_ = rt.Audit().Log(audit.ActionAdd, product.Encode(p))

	if err := rt.SaveStore(); err != nil {
		return err
	}

	rt.Console().Success("Added %s", p)
	return nil
}
