package infra

import (
	"fmt"

	"github.com/Moskzow/StoreControl/internal/config"
	"github.com/Moskzow/StoreControl/internal/kv"
)

// NewStore builds the key-value store selected by STORAGE_BACKEND. The
// memory backend holds nothing across restarts and exists for local runs
// and tests.
func NewStore(cfg *config.Config) (kv.Store, error) {
	switch cfg.StorageBackend {
	case "redis":
		rdb, err := NewRedis(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("storage: redis: %w", err)
		}
		return kv.NewRedisStore(rdb, cfg.StoragePrefix), nil
	case "postgres":
		db, err := NewDatabase(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("storage: postgres: %w", err)
		}
		return kv.NewGormStore(db, cfg.StoragePrefix)
	case "memory":
		return kv.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("storage: unknown backend %q", cfg.StorageBackend)
}
