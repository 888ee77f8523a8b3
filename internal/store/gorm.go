package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is a single row of the records table.
type Record struct {
	Key       string    `gorm:"primaryKey;size:191"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName pins the table name used by migrations.
func (Record) TableName() string {
	return "records"
}

// GormStore persists records in a SQL table through GORM. Each call is its
// own statement; no transaction spans calls.
type GormStore struct {
	db *gorm.DB
}

// NewGorm creates a GormStore on top of an open connection.
func NewGorm(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// AutoMigrate creates the records table. Used for SQLite, where SQL migrations
// are not shipped.
func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(&Record{})
}

// Get loads the value stored under key.
func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var rec Record
	if err := s.db.WithContext(ctx).Where("key = ?", key).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec.Value, nil
}

// Set upserts the value stored under key.
func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	rec := Record{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}

// Delete removes the row stored under key.
func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("key = ?", key).Delete(&Record{}).Error
}
