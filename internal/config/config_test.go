package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}

	if cfg.DataDir != "data" || cfg.OutputDir != "data" {
		t.Errorf("default dirs = %s/%s, want data/data", cfg.DataDir, cfg.OutputDir)
	}

	if cfg.Workers != 1 {
		t.Errorf("default Workers = %d, want 1", cfg.Workers)
	}

	if !cfg.Domains.Loans || !cfg.Domains.Scholarships {
		t.Error("both domains must be enabled by default")
	}

	if cfg.SQLitePath != "" {
		t.Error("sqlite mirror must be disabled by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("default level = %s, want info", cfg.Logging.Level)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
data_dir: /srv/finaid/in
output_dir: /srv/finaid/out
sqlite_path: /srv/finaid/finaid.db
workers: 4
domains:
  loans: true
  scholarships: false
logging:
  level: debug
  file: /var/log/cleaner.log
  max_size_mb: 25
  max_backups: 5
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.DataDir != "/srv/finaid/in" {
		t.Errorf("DataDir = %s", cfg.DataDir)
	}

	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}

	if !cfg.Domains.Loans || cfg.Domains.Scholarships {
		t.Error("domain toggles not applied")
	}

	if cfg.Logging.Level != "debug" || cfg.Logging.MaxSizeMb != 25 {
		t.Errorf("logging not applied: %+v", cfg.Logging)
	}
}

func TestLoadConfig_DefaultsForOmittedFields(t *testing.T) {
	path := writeConfig(t, "workers: 2\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}

	if cfg.DataDir != "data" {
		t.Errorf("omitted DataDir should keep default, got %s", cfg.DataDir)
	}

	if cfg.Logging.MaxSizeMb != 10 || cfg.Logging.MaxBackups != 3 {
		t.Errorf("omitted logging fields should keep defaults: %+v", cfg.Logging)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "workers: [not a number\n")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"missing data dir", func(c *Config) { c.DataDir = "" }, ErrMissingDataDir},
		{"missing output dir", func(c *Config) { c.OutputDir = "" }, ErrMissingOutputDir},
		{"no domains", func(c *Config) { c.Domains = DomainsConfig{} }, ErrNoDomainsEnabled},
		{"zero workers", func(c *Config) { c.Workers = 0 }, ErrInvalidWorkers},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, ErrInvalidLogLevel},
		{"bad size", func(c *Config) { c.Logging.MaxSizeMb = 0 }, ErrInvalidLogSize},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestValidate_NoLogFileSkipsSizeCheck(t *testing.T) {
	cfg := Default()
	cfg.Logging.File = ""
	cfg.Logging.MaxSizeMb = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("size check must not apply without a log file, got %v", err)
	}
}
