// Package config provides configuration management for the cleaning
// runner.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingDataDir   = errors.New("data_dir is required")
	ErrMissingOutputDir = errors.New("output_dir is required")
	ErrNoDomainsEnabled = errors.New("at least one domain must be enabled")
	ErrInvalidWorkers   = errors.New("workers must be at least 1")
	ErrInvalidLogLevel  = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogSize   = errors.New("logging.max_size_mb must be at least 1")
)

// Config represents the complete cleaner configuration.
type Config struct {
	DataDir    string        `yaml:"data_dir"`
	OutputDir  string        `yaml:"output_dir"`
	SQLitePath string        `yaml:"sqlite_path"`
	Workers    int           `yaml:"workers"`
	Domains    DomainsConfig `yaml:"domains"`
	Logging    LoggingConfig `yaml:"logging"`
}

// DomainsConfig enables or disables the two cleaning pipelines.
type DomainsConfig struct {
	Loans        bool `yaml:"loans"`
	Scholarships bool `yaml:"scholarships"`
}

// LoggingConfig defines logging behavior. An empty File disables the
// rotating log file.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMb  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Default returns the configuration used when no config file is
// given: both domains enabled, data in ./data, logs under ./logs.
func Default() *Config {
	return &Config{
		DataDir:   "data",
		OutputDir: "data",
		Workers:   1,
		Domains: DomainsConfig{
			Loans:        true,
			Scholarships: true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			File:       filepath.Join("logs", "cleaner.log"),
			MaxSizeMb:  10,
			MaxBackups: 3,
		},
	}
}

// LoadConfig loads configuration from a YAML file, applying defaults
// for omitted fields.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return ErrMissingDataDir
	}

	if c.OutputDir == "" {
		return ErrMissingOutputDir
	}

	if !c.Domains.Loans && !c.Domains.Scholarships {
		return ErrNoDomainsEnabled
	}

	if c.Workers < 1 {
		return ErrInvalidWorkers
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Logging.File != "" && c.Logging.MaxSizeMb < 1 {
		return ErrInvalidLogSize
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{DataDir: %s, OutputDir: %s, Workers: %d, Loans: %t, Scholarships: %t}",
		c.DataDir,
		c.OutputDir,
		c.Workers,
		c.Domains.Loans,
		c.Domains.Scholarships,
	)
}
