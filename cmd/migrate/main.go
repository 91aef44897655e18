package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"cloud-dictionary-api/internal/config"
	"cloud-dictionary-api/internal/database"

	"github.com/sirupsen/logrus"
)

func main() {
	var (
		dbPath  = flag.String("db", config.GetEnv("SQLITE_PATH", "./data/terms.db"), "Database file path")
		action  = flag.String("action", "up", "Migration action: up, down, version")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	// Setup logger
	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	absDBPath, err := filepath.Abs(*dbPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to get absolute database path")
	}

	logger.WithFields(logrus.Fields{
		"db_path": absDBPath,
		"action":  *action,
	}).Info("Starting migration tool")

	connCfg := database.DefaultConnectionConfig()
	connCfg.DatabasePath = absDBPath
	connCfg.RunMigrations = false
	connCfg.Logger = logger

	connectionManager := database.NewConnectionManager(connCfg)
	if err := connectionManager.Connect(); err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer connectionManager.Close()

	migrationManager := connectionManager.GetMigrationManager()

	switch *action {
	case "up":
		if err := migrationManager.RunMigrations(); err != nil {
			logger.WithError(err).Fatal("Migration up failed")
		}
	case "down":
		if err := migrationManager.RollbackMigration(); err != nil {
			logger.WithError(err).Fatal("Migration down failed")
		}
	case "version":
		status, err := migrationManager.GetMigrationStatus()
		if err != nil {
			logger.WithError(err).Fatal("Failed to get migration status")
		}
		fmt.Printf("Migration Status:\n")
		fmt.Printf("  Version: %d\n", status.Version)
		fmt.Printf("  Applied: %t\n", status.Applied)
		fmt.Printf("  Dirty: %t\n", status.Dirty)
	default:
		logger.WithField("action", *action).Fatal("Unknown action. Use: up, down, version")
	}

	logger.Info("Migration tool completed successfully")
}
