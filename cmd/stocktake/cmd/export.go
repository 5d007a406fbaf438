package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stocktake/stocktake/internal/cmd/output"
	"github.com/stocktake/stocktake/internal/cmd/table"
	"github.com/stocktake/stocktake/pkg/audit"
	"github.com/stocktake/stocktake/pkg/constants"
	"github.com/stocktake/stocktake/pkg/errors"
	"github.com/stocktake/stocktake/pkg/product"
)

// NewExportCommand creates the export command.
func NewExportCommand(rt Runtime) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:     "export",
		GroupID: "inventory",
		Short:   "Write a human-readable inventory snapshot file",
		RunE: func(_ *cobra.Command, _ []string) error {
			if path == "" {
				path = rt.ExportPath()
			}

			store, err := rt.Store()
			if err != nil {
				return err
			}

			if err := exportInventory(rt, store.Products(), path); err != nil {
				_ = rt.Audit().Logf(audit.ActionExportError, "%s: %v", path, err)
				return err
			}
			_ = rt.Audit().Logf(audit.ActionExport, "%s (%d products)", path, store.Len())

			rt.Console().Success("Exported inventory to %s", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "file", "", "Destination file (defaults to the configured export file)")
	return cmd
}

// exportInventory renders the full, untruncated product table and
// overwrites the snapshot file.
func exportInventory(rt Runtime, products []product.Product, path string) error {
	var sb strings.Builder
	formatter := output.NewFormatter(output.FormatTable)
	if err := formatter.Format(&sb, table.SnapshotToTableData(products)); err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(sb.String()), constants.FilePermissions); err != nil {
		return errors.WrapIO("export", path, err)
	}
	return nil
}
