package cmd

import (
	"github.com/spf13/cobra"

	"github.com/stocktake/stocktake/pkg/audit"
	"github.com/stocktake/stocktake/pkg/product"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		GroupID: "inventory",
		Short:   "Remove a product from the catalog",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return deleteProduct(rt, args[0])
		},
	}
}

func deleteProduct(rt Runtime, id string) error {
	store, err := rt.Store()
	if err != nil {
		return err
	}

	removed, err := store.Delete(id)
	if err != nil {
		_ = rt.Audit().Logf(audit.ActionDeleteFail, "%s: %v", id, err)
		return err
	}
	_ = rt.Audit().Log(audit.ActionDelete, product.Encode(removed))

	if err := rt.SaveStore(); err != nil {
		return err
	}

	rt.Console().Success("Deleted %s (%s)", removed.Common().Name, removed.Common().ID)
	return nil
}
