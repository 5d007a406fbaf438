// Package constants provides shared constants used throughout the stocktake codebase.
// This includes file names, permissions, discount rates, and other configuration
// values that should be consistent across the application.
package constants

// Default file names for the flat-file data layout. All of them live in
// the configured data directory (current working directory by default).
const (
	// DefaultCatalogFile is the catalog file, rewritten on every save
	DefaultCatalogFile = "products.txt"

	// DefaultLedgerFile is the append-only sales history file
	DefaultLedgerFile = "sales_history.txt"

	// DefaultAuditFile is the append-only audit log file
	DefaultAuditFile = "input_log.txt"

	// DefaultExportFile is the human-readable inventory snapshot file
	DefaultExportFile = "inventory_list.txt"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Discount rates applied by the pricing engine
const (
	// LaptopDiscountRate is the fixed per-sale discount for laptops
	LaptopDiscountRate = 0.10

	// PhoneDiscountRate is the fixed per-sale discount for phones
	PhoneDiscountRate = 0.05

	// StudentDiscountRate is applied on the already-discounted amount
	// for sales flagged as student purchases
	StudentDiscountRate = 0.05
)

// Inventory thresholds and limits
const (
	// DefaultLowStockThreshold flags products with fewer units in stock
	DefaultLowStockThreshold = 3

	// DashboardTopN is how many products the dashboard ranks by price
	DashboardTopN = 3

	// RecordFieldCount is the number of fields in one catalog line
	RecordFieldCount = 8
)

// Format constants
const (
	// TimeFormatLedger is the timestamp format of ledger and audit lines
	TimeFormatLedger = "2006-01-02 15:04:05"

	// RecordSeparator delimits fields within one catalog line
	RecordSeparator = ";"
)
