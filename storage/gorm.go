package storage

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is the persistence row behind GormStore: one storefront key, one
// JSON document.
type KVEntry struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

func (KVEntry) TableName() string { return "storefront_state" }

// GormStore persists storefront state through GORM. Reads and writes go
// straight to the database; the store carries no cache, so the newest write
// always wins exactly as it does with the in-memory driver.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (g *GormStore) Get(key string) ([]byte, bool) {
	var entry KVEntry
	if err := g.db.First(&entry, "key = ?", key).Error; err != nil {
		return nil, false
	}
	return entry.Value, true
}

func (g *GormStore) Set(key string, value []byte) error {
	entry := KVEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (g *GormStore) Delete(key string) error {
	return g.db.Delete(&KVEntry{}, "key = ?", key).Error
}
