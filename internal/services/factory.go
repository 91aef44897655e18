package services

import (
	"fmt"

	"cloud-dictionary-api/internal/metrics"
	"cloud-dictionary-api/internal/models"
	"cloud-dictionary-api/internal/repositories"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	TermService TermService
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	MatchMode models.MatchMode
	Metrics   *metrics.Recorder
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(repo repositories.TermRepository, config *ServiceConfig) (*ServiceContainer, error) {
	if repo == nil {
		return nil, fmt.Errorf("term repository cannot be nil")
	}

	if config == nil {
		config = &ServiceConfig{MatchMode: models.MatchFolded}
	}

	return &ServiceContainer{
		TermService: NewTermService(repo, config.MatchMode, config.Metrics),
	}, nil
}
