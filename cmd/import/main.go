package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"cloud-dictionary-api/internal/config"
	"cloud-dictionary-api/internal/migration"
	"cloud-dictionary-api/pkg/server"

	"github.com/sirupsen/logrus"
)

func main() {
	var (
		file    = flag.String("file", "./data/terms.json", "JSON file holding an array of term records")
		store   = flag.String("store", "", "Store type override: dynamodb, sqlite, memory")
		dryRun  = flag.Bool("dry-run", false, "Validate records without writing them")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if *store != "" {
		cfg.Store.Type = *store
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}

	absFile, err := filepath.Abs(*file)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to get absolute file path")
	}

	container, err := server.NewContainer(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize container")
	}
	defer container.Close()
	logger := container.Logger

	logger.WithFields(logrus.Fields{
		"file":    absFile,
		"store":   cfg.Store.Type,
		"table":   cfg.Store.TableName,
		"dry_run": *dryRun,
	}).Info("Starting term import")

	terms, err := migration.LoadFile(absFile)
	if err != nil {
		logger.WithError(err).Fatal("Failed to read term file")
	}

	result, err := migration.NewTermImporter(container.Store, logger).Import(context.Background(), terms, *dryRun)
	if result != nil {
		printResult(result)
	}
	if err != nil {
		logger.WithError(err).Fatal("Import failed")
	}
	if len(result.Errors) > 0 {
		logger.WithField("errors", len(result.Errors)).Fatal("Import completed with invalid records")
	}
}

func printResult(result *migration.ImportResult) {
	fmt.Printf("\n=== Import Results ===\n")
	fmt.Printf("Records read:    %d\n", result.Read)
	fmt.Printf("Records written: %d\n", result.Written)
	fmt.Printf("Records skipped: %d\n", result.Skipped)

	if len(result.Warnings) > 0 {
		fmt.Printf("\nWarnings (%d):\n", len(result.Warnings))
		for _, warning := range result.Warnings {
			fmt.Printf("  ⚠ %s\n", warning)
		}
	}

	if len(result.Errors) > 0 {
		fmt.Printf("\nErrors (%d):\n", len(result.Errors))
		for _, errMsg := range result.Errors {
			fmt.Printf("  ✗ %s\n", errMsg)
		}
	}
}
