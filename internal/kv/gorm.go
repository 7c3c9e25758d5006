package kv

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one persisted collection snapshot in the kv_entries table.
type Entry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"type:jsonb;not null"`
}

func (Entry) TableName() string { return "kv_entries" }

// GormStore persists snapshots in a single Postgres table, for deployments
// that already run a relational database. Semantics are identical to the
// Redis backend: whole-collection upserts, last writer wins.
type GormStore struct {
	db     *gorm.DB
	prefix string
}

func NewGormStore(db *gorm.DB, prefix string) (*GormStore, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db, prefix: prefix}, nil
}

func (s *GormStore) key(k string) string { return s.prefix + ":" + k }

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var e Entry
	err := s.db.WithContext(ctx).First(&e, "key = ?", s.key(key)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e.Value, nil
}

func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	e := Entry{Key: s.key(key), Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&e).Error
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Entry{}, "key = ?", s.key(key)).Error
}
