package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// documentRecord is the GORM model backing the document store
type documentRecord struct {
	Key       string `gorm:"primaryKey;type:varchar(100)"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (documentRecord) TableName() string {
	return "documents"
}

// DocumentStore persists collection documents in a local SQLite database
type DocumentStore struct {
	db *gorm.DB
}

// NewDocumentStore opens (or creates) the SQLite database at path and ensures
// the documents table exists
func NewDocumentStore(path string) (*DocumentStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage database: %w", err)
	}

	if err := db.AutoMigrate(&documentRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate storage schema: %w", err)
	}

	return &DocumentStore{db: db}, nil
}

// Get returns the document stored under key, or ok=false if absent
func (s *DocumentStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var record documentRecord
	err := s.db.WithContext(ctx).First(&record, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read document %q: %w", key, err)
	}
	return record.Value, true, nil
}

// Set stores the document under key, replacing any previous value
func (s *DocumentStore) Set(ctx context.Context, key string, value []byte) error {
	record := documentRecord{Key: key, Value: value, UpdatedAt: time.Now()}
	if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
		return fmt.Errorf("failed to write document %q: %w", key, err)
	}
	return nil
}

// Remove deletes the document under key. Removing an absent key is a no-op.
func (s *DocumentStore) Remove(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&documentRecord{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to remove document %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database connection
func (s *DocumentStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Ensure DocumentStore implements Store
var _ Store = (*DocumentStore)(nil)
