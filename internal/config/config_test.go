package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadDefaults checks unset options take their documented defaults.
func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "destinations_dir: /data/DESTINATIONS\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DestinationsDir != "/data/DESTINATIONS" {
		t.Errorf("DestinationsDir = %q", cfg.DestinationsDir)
	}
	if cfg.ReportsDir != "./reports" {
		t.Errorf("ReportsDir = %q, want default", cfg.ReportsDir)
	}
	if cfg.LogLevel != "info" || cfg.MaxConcurrency != 4 {
		t.Errorf("LogLevel/MaxConcurrency = %q/%d, want info/4", cfg.LogLevel, cfg.MaxConcurrency)
	}
	if cfg.ContinueOnError == nil || !*cfg.ContinueOnError {
		t.Error("ContinueOnError should default to true")
	}
}

// TestLoadFull checks a fully populated file round-trips.
func TestLoadFull(t *testing.T) {
	path := writeConfig(t, `
destinations_dir: ./dl
reports_dir: ./out
archive_dir: ./done
log_level: debug
max_concurrency: 8
continue_on_error: false
certification:
  max_hotels_per_search: 500
  max_rates_per_call: 5
extra_suppliers:
  ID_B2B_31: Nordrooms
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ArchiveDir != "./done" || cfg.MaxConcurrency != 8 {
		t.Errorf("ArchiveDir/MaxConcurrency = %q/%d", cfg.ArchiveDir, cfg.MaxConcurrency)
	}
	if *cfg.ContinueOnError {
		t.Error("ContinueOnError = true, want false")
	}
	if cfg.Certification.MaxHotelsPerSearch != 500 || cfg.Certification.MaxRatesPerCall != 5 {
		t.Errorf("Certification = %+v", cfg.Certification)
	}
	if cfg.ExtraSuppliers["ID_B2B_31"] != "Nordrooms" {
		t.Errorf("ExtraSuppliers = %v", cfg.ExtraSuppliers)
	}
}

// TestLoadRejectsBadValues checks validation failures.
func TestLoadRejectsBadValues(t *testing.T) {
	bad := []string{
		"log_level: noisy\n",
		"max_concurrency: -1\n",
		"certification:\n  max_rates_per_call: -2\n",
		"extra_suppliers:\n  \"\": Nameless\n",
	}

	for _, content := range bad {
		if _, err := Load(writeConfig(t, content)); err == nil {
			t.Errorf("Load accepted %q", content)
		}
	}
}

// TestDefault checks the no-config fallback is itself valid.
func TestDefault(t *testing.T) {
	cfg := Default()
	if err := validate(cfg); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
}
