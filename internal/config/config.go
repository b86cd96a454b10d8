// =============================================================================
// Hotel Cache Toolkit - Configuration Module
// =============================================================================
//
// This module loads and validates the application configuration. One YAML
// file drives the CLI: where the unpacked cache download lives, where
// reports go, logging, processing concurrency, and the two tables that vary
// between deployments - supplier-registry extensions and self-imposed
// certification budgets.
//
// The schema tables of the cache format itself are NOT configuration: the
// wire format is versioned by the wholesaler, so field layouts are compiled
// into internal/records.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the application configuration, loaded from config.yaml.
type MainConfig struct {
	// DestinationsDir is the root the bulk download unpacks to. Each
	// subdirectory is one destination IATA code holding that destination's
	// cache files.
	// Default: "./DESTINATIONS"
	DestinationsDir string `yaml:"destinations_dir"`

	// ReportsDir is where XLSX summary reports are written.
	// Default: "./reports"
	ReportsDir string `yaml:"reports_dir"`

	// ArchiveDir is where processed cache files are moved after a
	// successful parse. Empty disables archiving.
	ArchiveDir string `yaml:"archive_dir"`

	// LogFile is the path to the application log file.
	// Default: "./logs/hotelcache.log"
	LogFile string `yaml:"log_file"`

	// LogLevel controls verbosity: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// MaxConcurrency is the number of cache files parsed concurrently by
	// the parse command. Parses share no state, so this is purely a
	// throughput knob.
	// Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`

	// ContinueOnError keeps the parse command going when one file fails.
	// Default: true
	ContinueOnError *bool `yaml:"continue_on_error"`

	// Certification holds self-imposed budgets below the wholesaler's
	// published limits.
	Certification CertificationSettings `yaml:"certification"`

	// ExtraSuppliers extends the built-in external-supplier ID table
	// (ID -> display name). Built-ins are never overridden.
	ExtraSuppliers map[string]string `yaml:"extra_suppliers"`
}

// CertificationSettings lowers the certification limits for this
// deployment. Zero means "use the published limit"; values above the
// published limit are ignored (the program caps are not negotiable).
type CertificationSettings struct {
	MaxHotelsPerSearch int `yaml:"max_hotels_per_search"`
	MaxRatesPerCall    int `yaml:"max_rates_per_call"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads and validates the configuration file at configPath.
func Load(configPath string) (*MainConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg MainConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file exists. The
// CLI falls back to this so `hotelcache parse <file>` works without setup.
func Default() *MainConfig {
	cfg := &MainConfig{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills unset options.
func applyDefaults(cfg *MainConfig) {
	if cfg.DestinationsDir == "" {
		cfg.DestinationsDir = "./DESTINATIONS"
	}
	if cfg.ReportsDir == "" {
		cfg.ReportsDir = "./reports"
	}
	if cfg.LogFile == "" {
		cfg.LogFile = "./logs/hotelcache.log"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.MaxConcurrency == 0 {
		cfg.MaxConcurrency = 4
	}
	if cfg.ContinueOnError == nil {
		t := true
		cfg.ContinueOnError = &t
	}
}

// validate rejects configurations the commands cannot run with.
func validate(cfg *MainConfig) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}

	if cfg.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be at least 1, got %d", cfg.MaxConcurrency)
	}

	if cfg.Certification.MaxHotelsPerSearch < 0 {
		return fmt.Errorf("certification.max_hotels_per_search must not be negative")
	}
	if cfg.Certification.MaxRatesPerCall < 0 {
		return fmt.Errorf("certification.max_rates_per_call must not be negative")
	}

	for id, name := range cfg.ExtraSuppliers {
		if id == "" || name == "" {
			return fmt.Errorf("extra_suppliers entries need both an ID and a name")
		}
	}

	return nil
}
