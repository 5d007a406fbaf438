package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/stocktake/stocktake/pkg/constants"
)

// Config holds the application configuration loaded from config files,
// environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Output  string

	// Config file
	ConfigFile string

	// Inventory configuration
	DataDir           string
	CatalogFile       string
	LedgerFile        string
	AuditFile         string
	ExportFile        string
	ReadOnly          bool
	LowStockThreshold int

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (handled by cobra)
//  2. Environment variables
//  3. .env files
//  4. Config file (~/.stocktake.yaml)
//  5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("STOCKTAKE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".stocktake")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	config := &Config{
		// Global flags (may be overridden by cobra flags later)
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Output:  viper.GetString("output"),

		ConfigFile: viper.ConfigFileUsed(),

		// Inventory configuration
		DataDir:           viper.GetString("data_dir"),
		CatalogFile:       viper.GetString("catalog_file"),
		LedgerFile:        viper.GetString("ledger_file"),
		AuditFile:         viper.GetString("audit_file"),
		ExportFile:        viper.GetString("export_file"),
		ReadOnly:          viper.GetBool("read_only"),
		LowStockThreshold: viper.GetInt("low_stock_threshold"),

		// Logging configuration
		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	config.applyDefaults()

	return config, nil
}

// applyDefaults fills unset fields with the flat-file layout defaults.
func (c *Config) applyDefaults() {
	if c.CatalogFile == "" {
		c.CatalogFile = constants.DefaultCatalogFile
	}
	if c.LedgerFile == "" {
		c.LedgerFile = constants.DefaultLedgerFile
	}
	if c.AuditFile == "" {
		c.AuditFile = constants.DefaultAuditFile
	}
	if c.ExportFile == "" {
		c.ExportFile = constants.DefaultExportFile
	}
	if c.LowStockThreshold <= 0 {
		c.LowStockThreshold = constants.DefaultLowStockThreshold
	}
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags so flag values take
// precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, output, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if output != "" {
		c.Output = output
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// CatalogPath returns the catalog file path under the data directory.
func (c *Config) CatalogPath() string { return c.resolve(c.CatalogFile) }

// LedgerPath returns the sales history file path.
func (c *Config) LedgerPath() string { return c.resolve(c.LedgerFile) }

// AuditPath returns the audit log file path.
func (c *Config) AuditPath() string { return c.resolve(c.AuditFile) }

// ExportPath returns the inventory snapshot file path.
func (c *Config) ExportPath() string { return c.resolve(c.ExportFile) }

func (c *Config) resolve(name string) string {
	if c.DataDir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
