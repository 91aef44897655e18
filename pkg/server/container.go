package server

import (
	"context"
	"fmt"

	"cloud-dictionary-api/internal/config"
	"cloud-dictionary-api/internal/database"
	"cloud-dictionary-api/internal/metrics"
	"cloud-dictionary-api/internal/repositories"
	dynamorepo "cloud-dictionary-api/internal/repositories/dynamodb"
	"cloud-dictionary-api/internal/repositories/memory"
	sqliterepo "cloud-dictionary-api/internal/repositories/sqlite"
	"cloud-dictionary-api/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

// MetricsNamespace prefixes every exported metric
const MetricsNamespace = "cloud_dictionary"

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logrus.Logger
	Registry    *prometheus.Registry
	Store       repositories.TermStore
	TermService services.TermService

	db *database.ConnectionManager
}

// NewContainer creates a new dependency injection container, opening the
// store selected by cfg.Store.Type
func NewContainer(cfg *config.Config) (*Container, error) {
	logger := config.NewLogger(cfg.Log)

	var (
		store repositories.TermStore
		db    *database.ConnectionManager
	)

	switch cfg.Store.Type {
	case config.StoreDynamoDB:
		client, err := dynamorepo.NewClient(context.Background(), dynamorepo.ClientConfig{
			Region:   cfg.Store.Region,
			Endpoint: cfg.Store.Endpoint,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
		}
		store = dynamorepo.NewTermRepository(client, cfg.Store.TableName, logger)

	case config.StoreSQLite:
		connCfg := database.DefaultConnectionConfig()
		connCfg.DatabasePath = cfg.Store.SQLitePath
		connCfg.Logger = logger

		db = database.NewConnectionManager(connCfg)
		if err := db.Connect(); err != nil {
			return nil, fmt.Errorf("failed to open term database: %w", err)
		}
		store = sqliterepo.NewTermRepository(db.GetDB(), logger)

	case config.StoreMemory:
		store = memory.NewTermRepository()

	default:
		return nil, fmt.Errorf("unsupported store type: %q", cfg.Store.Type)
	}

	container, err := newContainer(cfg, logger, store)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}
	container.db = db

	logger.WithFields(logrus.Fields{
		"store":      cfg.Store.Type,
		"table":      cfg.Store.TableName,
		"match_mode": cfg.Search.MatchMode,
	}).Info("Container initialized")

	return container, nil
}

// NewContainerWithStore builds a container around an existing store
func NewContainerWithStore(cfg *config.Config, store repositories.TermStore) (*Container, error) {
	return newContainer(cfg, config.NewLogger(cfg.Log), store)
}

func newContainer(cfg *config.Config, logger *logrus.Logger, store repositories.TermStore) (*Container, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	serviceContainer, err := services.NewServiceContainer(store, &services.ServiceConfig{
		MatchMode: cfg.Search.MatchMode,
		Metrics:   metrics.New(MetricsNamespace, registry),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	return &Container{
		Config:      cfg,
		Logger:      logger,
		Registry:    registry,
		Store:       store,
		TermService: serviceContainer.TermService,
	}, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			return fmt.Errorf("failed to close store: %w", err)
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
