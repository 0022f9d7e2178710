// Package stores keeps the durable local mirror of the browsing session:
// a flat key-value snapshot so a restart does not lose an in-progress
// table commitment. Last write wins; there is no cross-process locking.
package stores

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/minhtran-dev/canteen-client/models"
	"github.com/minhtran-dev/canteen-client/utils"
)

// Snapshot keys used by the session.
const (
	KeySelectedTable       = "selected_table"
	KeySelectedReservation = "selected_reservation"
	KeyAccessToken         = "access_token"
)

type snapshotEntry struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (snapshotEntry) TableName() string { return "session_snapshots" }

// SnapshotStore is a sqlite-backed key-value store for session snapshots.
type SnapshotStore struct {
	mu sync.Mutex
	db *gorm.DB
}

// Open opens (or creates) the snapshot database at path. ":memory:" gives
// an ephemeral store, which the tests use.
func Open(path string) (*SnapshotStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}
	if err := db.AutoMigrate(&snapshotEntry{}); err != nil {
		return nil, fmt.Errorf("migrate snapshot store: %w", err)
	}
	return &SnapshotStore{db: db}, nil
}

// Get returns the raw value for key, or models.ErrSnapshotMissing.
func (s *SnapshotStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entry snapshotEntry
	err := s.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", models.ErrSnapshotMissing
	}
	if err != nil {
		return "", fmt.Errorf("read snapshot %q: %w", key, err)
	}
	return entry.Value, nil
}

// Set writes key to value, overwriting any previous entry.
func (s *SnapshotStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := snapshotEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("write snapshot %q: %w", key, err)
	}
	return nil
}

// Remove deletes the entry for key. Removing an absent key is not an error.
func (s *SnapshotStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Delete(&snapshotEntry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("remove snapshot %q: %w", key, err)
	}
	return nil
}

// LoadJSON decodes the entry for key into out. A corrupt entry is discarded
// and reported as absent rather than crashing the session. The bool result
// says whether out was populated.
func (s *SnapshotStore) LoadJSON(key string, out interface{}) (bool, error) {
	value, err := s.Get(key)
	if errors.Is(err, models.ErrSnapshotMissing) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		utils.ErrorLogger.Printf("discarding corrupt snapshot %q: %v", key, err)
		_ = s.Remove(key)
		return false, nil
	}
	return true, nil
}

// SaveJSON encodes v and stores it under key.
func (s *SnapshotStore) SaveJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode snapshot %q: %w", key, err)
	}
	return s.Set(key, string(data))
}
