package database

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestConfig(t *testing.T) *ConnectionConfig {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	config := DefaultConnectionConfig()
	config.DatabasePath = filepath.Join(t.TempDir(), "terms.db")
	config.Logger = logger
	return config
}

func TestConnectionManager_ConnectRunsMigrations(t *testing.T) {
	cm := NewConnectionManager(newTestConfig(t))
	if err := cm.Connect(); err != nil {
		t.Fatalf("Connect() failed: %v", err)
	}
	defer cm.Close()

	var count int
	query := `SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='CloudTerms'`
	if err := cm.GetDB().QueryRow(query).Scan(&count); err != nil {
		t.Fatalf("Failed to inspect schema: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected CloudTerms table to exist, got count %d", count)
	}

	status, err := cm.GetMigrationManager().GetMigrationStatus()
	if err != nil {
		t.Fatalf("GetMigrationStatus() failed: %v", err)
	}
	if !status.Applied || status.Version != 1 || status.Dirty {
		t.Errorf("Unexpected migration status: %+v", status)
	}
}

func TestConnectionManager_Lifecycle(t *testing.T) {
	cm := NewConnectionManager(newTestConfig(t))

	if cm.GetDB() != nil {
		t.Error("GetDB() should return nil before Connect()")
	}
	if cm.GetMigrationManager() != nil {
		t.Error("GetMigrationManager() should return nil before Connect()")
	}
	if err := cm.Ping(); err == nil {
		t.Error("Ping() should fail before Connect()")
	}

	if err := cm.Connect(); err != nil {
		t.Fatalf("Connect() failed: %v", err)
	}
	if err := cm.Connect(); err == nil {
		t.Error("Connect() should fail when already connected")
	}
	if err := cm.Ping(); err != nil {
		t.Errorf("Ping() failed: %v", err)
	}

	if err := cm.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
	if err := cm.Close(); err != nil {
		t.Errorf("Second Close() should be a no-op, got: %v", err)
	}
}

func TestMigrationManager_RollbackAndReapply(t *testing.T) {
	cm := NewConnectionManager(newTestConfig(t))
	if err := cm.Connect(); err != nil {
		t.Fatalf("Connect() failed: %v", err)
	}
	defer cm.Close()

	mm := cm.GetMigrationManager()
	if err := mm.RollbackMigration(); err != nil {
		t.Fatalf("RollbackMigration() failed: %v", err)
	}

	status, err := mm.GetMigrationStatus()
	if err != nil {
		t.Fatalf("GetMigrationStatus() failed: %v", err)
	}
	if status.Applied {
		t.Errorf("Expected no applied migrations after rollback, got %+v", status)
	}

	if err := mm.RollbackMigration(); err == nil {
		t.Error("RollbackMigration() should fail with nothing to roll back")
	}

	if err := mm.RunMigrations(); err != nil {
		t.Fatalf("RunMigrations() failed: %v", err)
	}
	if err := mm.RunMigrations(); err != nil {
		t.Errorf("RunMigrations() should be idempotent, got: %v", err)
	}
}
