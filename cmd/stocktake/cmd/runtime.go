// Package cmd implements the stocktake subcommands. Commands receive
// their dependencies through the Runtime interface so they stay
// decoupled from the app wiring and easy to test.
package cmd

import (
	"github.com/rs/zerolog"

	"github.com/stocktake/stocktake/internal/cmd/ui"
	"github.com/stocktake/stocktake/pkg/audit"
	"github.com/stocktake/stocktake/pkg/catalog"
	"github.com/stocktake/stocktake/pkg/ledger"
)

// Runtime is the dependency surface commands need from the application.
type Runtime interface {
	// Logger returns the application logger.
	Logger() *zerolog.Logger

	// Console returns the styled console writer.
	Console() *ui.Console

	// Store returns the catalog store, loading the catalog file on
	// first use.
	Store() (*catalog.Store, error)

	// SaveStore writes the catalog back to its file.
	SaveStore() error

	// Ledger returns the sales history writer.
	Ledger() *ledger.Writer

	// Audit returns the audit log writer.
	Audit() *audit.Logger

	// CatalogPath returns the catalog file path.
	CatalogPath() string

	// ExportPath returns the inventory snapshot file path.
	ExportPath() string

	// LowStockThreshold returns the quantity below which list output warns.
	LowStockThreshold() int

	// OutputFormat returns the requested output format ("" means auto).
	OutputFormat() string

	// Quiet reports whether summary chatter should be suppressed.
	Quiet() bool
}
