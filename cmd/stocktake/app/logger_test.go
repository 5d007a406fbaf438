package app

import (
	"testing"
)

// TestDetermineLogLevel tests the log level precedence logic.
func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default level when no flags set",
			config:   &Config{},
			expected: "info",
		},
		{
			name:     "verbose flag sets debug",
			config:   &Config{Verbose: true},
			expected: "debug",
		},
		{
			name:     "quiet flag sets warn",
			config:   &Config{Quiet: true},
			expected: "warn",
		},
		{
			name:     "explicit log-level overrides verbose",
			config:   &Config{LogLevel: "error", Verbose: true},
			expected: "error",
		},
		{
			name:     "explicit log-level overrides quiet",
			config:   &Config{LogLevel: "trace", Quiet: true},
			expected: "trace",
		},
		{
			name:     "both verbose and quiet prefers quiet",
			config:   &Config{Verbose: true, Quiet: true},
			expected: "warn",
		},
		{
			name:     "invalid level falls back to info",
			config:   &Config{LogLevel: "loud"},
			expected: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := determineLogLevel(tt.config)
			if got != tt.expected {
				t.Errorf("determineLogLevel() = %s, want %s", got, tt.expected)
			}
		})
	}
}

// TestValidateLogLevel tests level validation.
func TestValidateLogLevel(t *testing.T) {
	valid := []string{"trace", "debug", "info", "warn", "error"}
	for _, level := range valid {
		if got := validateLogLevel(level); got != level {
			t.Errorf("validateLogLevel(%s) = %s, want %s", level, got, level)
		}
	}

	invalid := []string{"", "verbose", "WARNING", "fatal2"}
	for _, level := range invalid {
		if got := validateLogLevel(level); got != "info" {
			t.Errorf("validateLogLevel(%s) = %s, want info", level, got)
		}
	}
}

// TestNewLogger verifies a logger can be built from every level.
func TestNewLogger(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		config := &Config{LogLevel: level, LogFormat: "json", LogOutput: "stderr"}
		logger := NewLogger(config)
		logger.Debug().Msg("logger constructed") // must not panic
	}
}
