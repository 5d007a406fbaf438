// Package ledger appends completed sales to the append-only sales
// history file.
package ledger

import (
	"fmt"
	"os"

	"github.com/stocktake/stocktake/pkg/constants"
	"github.com/stocktake/stocktake/pkg/errors"
	"github.com/stocktake/stocktake/pkg/pricing"
)

// Writer appends sale records to one ledger file. The file is opened,
// appended, and closed per record, matching the single-user synchronous
// model: a crash between sales never loses earlier records.
type Writer struct {
	path string
}

// New creates a ledger writer for the given file path.
func New(path string) *Writer {
	if path == "" {
		path = constants.DefaultLedgerFile
	}
	return &Writer{path: path}
}

// Path returns the ledger file path.
func (w *Writer) Path() string { return w.path }

// Append writes one sale record:
//
//	time | ID=.. | Type=.. | Name=.. | Qty=.. | Origin=.. | ProdDiscount=.. | TotalDiscount=.. | Final=..
//
// with two-decimal fixed formatting on all money fields.
func (w *Writer) Append(r pricing.Receipt) error {
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("append", w.path, err)
	}
	defer f.Close()

	line := FormatRecord(r)
	if _, err := f.WriteString(line + "\n"); err != nil {
		return errors.WrapIO("append", w.path, err)
	}
	return nil
}

// FormatRecord renders one receipt as a ledger line.
func FormatRecord(r pricing.Receipt) string {
	return fmt.Sprintf(
		"%s | ID=%s | Type=%s | Name=%s | Qty=%d | Origin=%.2f | ProdDiscount=%.2f | TotalDiscount=%.2f | Final=%.2f",
		r.Time.Format(constants.TimeFormatLedger),
		r.ProductID,
		r.ProductKind,
		r.ProductName,
		r.Quantity,
		r.Subtotal,
		r.ProductDiscount,
		r.TotalDiscount,
		r.FinalAmount,
	)
}
