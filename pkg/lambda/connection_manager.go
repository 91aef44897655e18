package lambda

import (
	"context"
	"errors"
	"sync"
	"time"

	"cloud-dictionary-api/internal/config"
	"cloud-dictionary-api/pkg/server"

	"github.com/sirupsen/logrus"
)

// staleAfter is how long a warm container may sit idle before IsHealthy reports it stale
const staleAfter = 5 * time.Minute

// ConnectionManager keeps one service container per Lambda execution
// environment so warm invocations reuse the store client
type ConnectionManager struct {
	mu        sync.RWMutex
	container *server.Container
	lastUsed  time.Time
	closed    bool
	loadFn    func() (*config.Config, error)
}

// ErrClosed is returned by GetContainer after Cleanup
var ErrClosed = errors.New("connection manager is closed")

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = NewConnectionManager(config.GetOptimizedConfig)
	})
	return globalConnectionManager
}

// NewConnectionManager creates a manager that loads its configuration with loadFn
// on first use
func NewConnectionManager(loadFn func() (*config.Config, error)) *ConnectionManager {
	return &ConnectionManager{loadFn: loadFn}
}

// Initialize builds the container from cfg. It is a no-op once a container
// exists; a failed attempt leaves the manager empty so the next call retries.
func (cm *ConnectionManager) Initialize(cfg *config.Config) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.closed {
		return ErrClosed
	}
	if cm.container != nil {
		return nil
	}

	container, err := server.NewContainer(cfg)
	if err != nil {
		return err
	}

	sc := config.GetServerlessConfig()
	container.Logger.WithFields(logrus.Fields{
		"function": sc.FunctionName,
		"stage":    sc.Stage,
		"region":   sc.Region,
		"store":    cfg.Store.Type,
	}).Info("Lambda container initialized")

	cm.container = container
	cm.lastUsed = time.Now()
	return nil
}

// GetContainer returns the service container, initializing it on the cold start
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*server.Container, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cm.mu.RLock()
	container, closed := cm.container, cm.closed
	cm.mu.RUnlock()

	if closed {
		return nil, ErrClosed
	}
	if container == nil {
		cfg, err := cm.loadFn()
		if err != nil {
			return nil, err
		}
		if err := cm.Initialize(cfg); err != nil {
			return nil, err
		}
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()
	if cm.container == nil {
		return nil, ErrClosed
	}
	cm.lastUsed = time.Now()
	return cm.container, nil
}

// IsHealthy reports whether a container exists and was used recently
func (cm *ConnectionManager) IsHealthy() bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	if cm.container == nil {
		return false
	}
	return time.Since(cm.lastUsed) < staleAfter
}

// Cleanup closes the container. The manager cannot be re-initialized afterwards.
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	cm.closed = true
	if cm.container != nil {
		if err := cm.container.Close(); err != nil {
			return err
		}
		cm.container = nil
	}
	return nil
}
