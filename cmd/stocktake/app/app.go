// Package app provides the application context and dependency management
// for the stocktake CLI. It centralizes configuration, dependency
// injection, and lifecycle management for the command handlers.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/stocktake/stocktake/internal/cmd/ui"
	"github.com/stocktake/stocktake/pkg/audit"
	"github.com/stocktake/stocktake/pkg/catalog"
	"github.com/stocktake/stocktake/pkg/errors"
	"github.com/stocktake/stocktake/pkg/ledger"
)

// App represents the stocktake application with all its dependencies.
// It provides a centralized place for configuration, logging, the
// catalog store, and the append-only ledger and audit writers.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Console renderer
	console *ui.Console

	// Catalog store (lazy-initialized, singleton), plus the ledger and
	// audit writers that share its lifetime.
	mu     sync.RWMutex
	store  *catalog.Store
	ledger *ledger.Writer
	audit  *audit.Logger
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapIO("load", "config", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version string.
func (a *App) Version() string { return a.version }

// Commit returns the git commit hash.
func (a *App) Commit() string { return a.commit }

// Date returns the build date.
func (a *App) Date() string { return a.date }

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string { return a.builtBy }

// Config returns the application configuration.
func (a *App) Config() *Config { return a.config }

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger { return a.logger }

// Console returns the styled console writer, creating it lazily so the
// final NoColor flag value is honored.
func (a *App) Console() *ui.Console {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.console == nil {
		var opts []ui.Option
		if a.config.NoColor {
			opts = append(opts, ui.WithNoColor())
		}
		a.console = ui.New(opts...)
	}
	return a.console
}

// Store returns the catalog store, creating it lazily and loading the
// catalog file on first use. This is thread-safe and ensures only one
// store is created per process.
func (a *App) Store() (*catalog.Store, error) {
	a.mu.RLock()
	if a.store != nil {
		st := a.store
		a.mu.RUnlock()
		return st, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.store != nil {
		return a.store, nil
	}

	st, err := catalog.New(
		catalog.WithReadOnly(a.config.ReadOnly),
		catalog.WithLogger(a.logger),
	)
	if err != nil {
		return nil, err
	}

	path := a.config.CatalogPath()
	n, err := st.Load(path)
	if err != nil {
		// An IO failure on load is reported but never fatal: the
		// session continues with whatever made it into memory.
		_ = a.auditLocked().Logf(audit.ActionLoadError, "%s: %v", path, err)
		a.logger.Error().Err(err).Str("path", path).
			Msg("Failed to load catalog, continuing with in-memory state")
	} else {
		_ = a.auditLocked().Logf(audit.ActionLoad, "%s (%d products)", path, n)
	}

	a.store = st
	return st, nil
}

// SaveStore writes the catalog back to its file.
func (a *App) SaveStore() error {
	a.mu.RLock()
	st := a.store
	a.mu.RUnlock()

	if st == nil {
		// Nothing loaded, nothing to persist.
		return nil
	}

	path := a.config.CatalogPath()
	if err := st.Save(path); err != nil {
		_ = a.Audit().Logf(audit.ActionSaveError, "%s: %v", path, err)
		return err
	}
	return a.Audit().Logf(audit.ActionSave, "%s (%d products)", path, st.Len())
}

// Ledger returns the sales history writer.
func (a *App) Ledger() *ledger.Writer {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ledger == nil {
		a.ledger = ledger.New(a.config.LedgerPath())
	}
	return a.ledger
}

// Audit returns the audit log writer.
func (a *App) Audit() *audit.Logger {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.auditLocked()
}

func (a *App) auditLocked() *audit.Logger {
	if a.audit == nil {
		a.audit = audit.New(a.config.AuditPath(), audit.WithLogger(a.logger))
	}
	return a.audit
}

// CatalogPath returns the catalog file path.
func (a *App) CatalogPath() string { return a.config.CatalogPath() }

// ExportPath returns the inventory snapshot file path.
func (a *App) ExportPath() string { return a.config.ExportPath() }

// LowStockThreshold returns the quantity below which list output warns.
func (a *App) LowStockThreshold() int { return a.config.LowStockThreshold }

// OutputFormat returns the requested output format ("" means auto).
func (a *App) OutputFormat() string { return a.config.Output }

// Quiet reports whether summary chatter should be suppressed.
func (a *App) Quiet() bool { return a.config.Quiet }

// Shutdown performs graceful shutdown of the application. It persists
// the catalog if one was loaded and mutated during the session.
func (a *App) Shutdown(_ context.Context) error {
	return a.SaveStore()
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithStore sets a custom catalog store (useful for testing).
func WithStore(st *catalog.Store) Option {
	return func(a *App) error {
		a.store = st
		return nil
	}
}
