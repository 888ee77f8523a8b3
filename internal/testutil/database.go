// Package testutil provides test helpers for setting up record stores,
// creating fixtures, and making assertions.
package testutil

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pocketledger/internal/repository"
	"pocketledger/internal/store"
)

// TestKeyPrefix namespaces every collection written by test records.
const TestKeyPrefix = "test"

// SetupTestRecords returns collections backed by a fresh in-memory store.
func SetupTestRecords(t *testing.T) *repository.Records {
	t.Helper()
	return repository.New(store.NewMemory(), TestKeyPrefix)
}

// SetupTestDB creates an in-memory SQLite database with the records table migrated.
// Every call gets its own database so tests never see each other's rows.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", nextID())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&store.Record{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// SetupTestDBRecords returns collections backed by a GormStore on a fresh test database.
func SetupTestDBRecords(t *testing.T) (*repository.Records, *gorm.DB) {
	t.Helper()
	db := SetupTestDB(t)
	return repository.New(store.NewGorm(db), TestKeyPrefix), db
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}
