// Package main provides the master cleaner command that runs the
// scholarship and loan normalization pipelines.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"finaid/internal/cleaner"
	"finaid/internal/config"
	"finaid/internal/dataset"
	"finaid/internal/logger"
	"finaid/internal/models"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file (built-in defaults apply when omitted)")
	dataDir := flag.String("data", "", "Data directory holding the scraped CSV files (overrides config)")
	outputDir := flag.String("out", "", "Output directory for cleaned CSVs and reports (overrides config)")
	workers := flag.Int("workers", 0, "Worker count for per-row stages (overrides config)")
	flag.Parse()

	cfg := config.Default()

	if *configFile != "" {
		fmt.Printf("⚙️  Loading configuration from: %s\n", *configFile)

		loaded, err := config.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("❌ Failed to load config: %v\n", err)
		}

		cfg = loaded
	}

	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if *workers > 0 {
		cfg.Workers = *workers
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v\n", err)
	}

	logg := newLogger(cfg)

	fmt.Println("======================================================================")
	fmt.Println("MASTER DATA CLEANER")
	fmt.Println("======================================================================")
	logg.Info("starting master data cleaner", "config", cfg.String())

	loader := dataset.NewLoader(cfg.DataDir, logg)
	sink := dataset.NewFileSink(cfg.OutputDir, cfg.SQLitePath, logg)

	var domains []*models.Domain

	if cfg.Domains.Scholarships {
		domains = append(domains, models.Scholarships())
	}

	if cfg.Domains.Loans {
		domains = append(domains, models.Loans())
	}

	ctx := context.Background()
	failed := 0

	for _, domain := range domains {
		fmt.Printf("\n▶ Running %s data cleaner...\n", domain.Name)

		startTime := time.Now()

		pipeline := cleaner.New(domain, loader, sink, logg, cleaner.WithWorkers(cfg.Workers))

		result, err := pipeline.Run(ctx)
		if err != nil {
			logg.Error("cleaning pipeline failed", "domain", domain.Name, "error", err)
			fmt.Printf("✗ %s cleaning failed: %v\n", domain.Name, err)

			failed++

			continue
		}

		fmt.Print(result.Report)
		fmt.Printf("✓ %s cleaning completed: %d -> %d records in %v\n",
			domain.Name, result.Original, result.Final, time.Since(startTime).Round(time.Millisecond))
	}

	fmt.Println("\n======================================================================")
	fmt.Println("CLEANING SUMMARY")
	fmt.Println("======================================================================")
	fmt.Printf("Pipelines run: %d, failed: %d\n", len(domains), failed)

	if failed > 0 {
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *logger.Logger {
	if cfg.Logging.File == "" {
		return logger.NewLogger(cfg.Logging.Level)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Logging.File), 0755); err != nil {
		log.Fatalf("❌ Failed to create log directory: %v\n", err)
	}

	return logger.NewFileLogger(cfg.Logging.Level, logger.FileOptions{
		Path:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMb,
		MaxBackups: cfg.Logging.MaxBackups,
	})
}
