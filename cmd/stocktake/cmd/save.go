package cmd

import (
	"github.com/spf13/cobra"
)

// NewSaveCommand creates the save command.
func NewSaveCommand(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "save",
		GroupID: "inventory",
		Short:   "Write the catalog back to its file",
		RunE: func(_ *cobra.Command, _ []string) error {
			// Load first so an empty session still rewrites the file in
			// canonical sorted form.
			if _, err := rt.Store(); err != nil {
				return err
			}
			if err := rt.SaveStore(); err != nil {
				return err
			}
			rt.Console().Success("Saved catalog to %s", rt.CatalogPath())
			return nil
		},
	}
}
