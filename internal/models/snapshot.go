package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot is the durable workspace snapshot: one row per storage key
// holding the JSON-serialized persisted subset of the in-memory state.
type Snapshot struct {
	Key       string    `gorm:"primaryKey;size:100" json:"key"`
	Data      []byte    `gorm:"type:blob" json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Snapshot) TableName() string { return "snapshots" }

// SnapshotRepo reads and writes the snapshot blob under a fixed key.
type SnapshotRepo struct {
	db  *gorm.DB
	key string
}

func NewSnapshotRepo(db *gorm.DB, key string) *SnapshotRepo {
	return &SnapshotRepo{db: db, key: key}
}

// Save upserts the snapshot blob.
func (r *SnapshotRepo) Save(data []byte) error {
	snap := Snapshot{Key: r.key, Data: data, UpdatedAt: time.Now()}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&snap).Error
}

// Load returns the stored blob, or (nil, nil) when no snapshot exists yet.
func (r *SnapshotRepo) Load() ([]byte, error) {
	var snap Snapshot
	if err := r.db.First(&snap, "key = ?", r.key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return snap.Data, nil
}
