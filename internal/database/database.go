package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pocketledger/internal/config"
	"pocketledger/internal/logger"
	"pocketledger/internal/repository"
	"pocketledger/internal/store"
)

// Manager owns the key-value store behind the ledger collections.
type Manager struct {
	cfg   *Config
	db    *gorm.DB
	store store.Store
}

// NewManager opens the store selected by config.Driver. The memory driver
// needs no connection.
func NewManager(cfg *Config) (*Manager, error) {
	switch cfg.Driver {
	case config.StoreMemory:
		return &Manager{cfg: cfg, store: store.NewMemory()}, nil

	case config.StoreSQLite:
		db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return &Manager{cfg: cfg, db: db, store: store.NewGorm(db)}, nil

	case config.StorePostgres:
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DSN(),
			PreferSimpleProtocol: true,
		}), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying DB: %w", err)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)

		return &Manager{cfg: cfg, db: db, store: store.NewGorm(db)}, nil
	}

	return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
}

// RunMigrations prepares the records table. Postgres applies the SQL files
// under migrations/; SQLite uses GORM's AutoMigrate.
func (m *Manager) RunMigrations() error {
	switch m.cfg.Driver {
	case config.StoreSQLite:
		return m.store.(*store.GormStore).AutoMigrate()
	case config.StorePostgres:
		return runPostgresMigrations(m.cfg)
	}
	return nil
}

func runPostgresMigrations(cfg *Config) error {
	log := logger.Get()
	log.Info("Running database migrations...")

	mig, err := migrate.New(cfg.MigrationsPath, cfg.MigrateURL())
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			log.Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			log.Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Info("Database migrations completed successfully")
	return nil
}

// Records returns the ledger collections namespaced under prefix.
func (m *Manager) Records(prefix string) *repository.Records {
	return repository.New(m.store, prefix)
}

// DB returns the underlying GORM database instance, nil for the memory driver.
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close releases the database connection.
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
