// Package audit appends structured events to the append-only audit log.
// Every core operation and every failure diagnostic produces one line:
//
//	[time] ACTION_TAG   | detail free text
//
// Audit writes are best effort: a failed append is surfaced to the
// process log but never fails the operation being audited.
package audit

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/stocktake/stocktake/pkg/constants"
	"github.com/stocktake/stocktake/pkg/errors"
	"github.com/stocktake/stocktake/pkg/logging"
)

// Action tags written by the core operations.
const (
	ActionAdd         = "ADD"
	ActionAddFail     = "ADD_FAIL"
	ActionUpdate      = "UPDATE"
	ActionUpdateFail  = "UPDATE_FAIL"
	ActionDelete      = "DELETE"
	ActionDeleteFail  = "DELETE_FAIL"
	ActionSell        = "SELL"
	ActionSellFail    = "SELL_FAIL"
	ActionSearch      = "SEARCH"
	ActionSearchEmpty = "SEARCH_EMPTY"
	ActionLoad        = "LOAD_FILE"
	ActionLoadError   = "LOAD_FILE_ERROR"
	ActionSave        = "SAVE_FILE"
	ActionSaveError   = "SAVE_FILE_ERROR"
	ActionExport      = "EXPORT_INVENTORY"
	ActionExportError = "EXPORT_INVENTORY_ERROR"
	ActionInfo        = "INFO"
)

// Logger appends audit events to one log file.
type Logger struct {
	path   string
	clock  func() string
	logger *zerolog.Logger
}

// Option configures a Logger.
type Option func(*Logger)

// WithClock overrides the timestamp source. Intended for tests.
func WithClock(clock func() string) Option {
	return func(l *Logger) {
		if clock != nil {
			l.clock = clock
		}
	}
}

// WithLogger sets the process logger used to report append failures.
func WithLogger(logger *zerolog.Logger) Option {
	return func(l *Logger) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates an audit logger for the given file path.
func New(path string, opts ...Option) *Logger {
	if path == "" {
		path = constants.DefaultAuditFile
	}
	l := &Logger{
		path:   path,
		clock:  defaultClock,
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the audit log file path.
func (l *Logger) Path() string { return l.path }

// Log appends one event. The returned error is informational; callers
// that treat audit as best effort may ignore it.
func (l *Logger) Log(action, detail string) error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		l.logger.Warn().Err(err).Str("path", l.path).Msg("Cannot write audit log")
		return errors.WrapIO("append", l.path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "[%s] %-12s | %s\n", l.clock(), action, detail); err != nil {
		l.logger.Warn().Err(err).Str("path", l.path).Msg("Cannot write audit log")
		return errors.WrapIO("append", l.path, err)
	}
	return nil
}

// Logf appends one event with a formatted detail string.
func (l *Logger) Logf(action, format string, args ...any) error {
	return l.Log(action, fmt.Sprintf(format, args...))
}

func defaultClock() string {
	return time.Now().Format(constants.TimeFormatLedger)
}
