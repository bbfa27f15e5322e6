// ABOUTME: Settings store selection from configuration
// ABOUTME: Opens the memory, bolt, SQLite or Redis backend named by the settings config

package store

import (
	"fmt"

	"newsfeed-api/core/interfaces"
	"newsfeed-api/infrastructure/store/bolt"
	"newsfeed-api/infrastructure/store/memory"
	"newsfeed-api/infrastructure/store/redis"
	"newsfeed-api/infrastructure/store/sqlite"
	"newsfeed-api/pkg/config"
)

// Open creates the backend selected by cfg.Store
func Open(cfg config.SettingsConfig) (interfaces.KeyValueStore, error) {
	var (
		kv  interfaces.KeyValueStore
		err error
	)

	switch cfg.Store {
	case config.StoreMemory:
		return memory.NewStore(), nil
	case config.StoreBolt:
		var s *bolt.Store
		s, err = bolt.NewStore(cfg.Path)
		kv = s
	case config.StoreSQLite:
		var s *sqlite.Store
		s, err = sqlite.NewStore(cfg.Path)
		kv = s
	case config.StoreRedis:
		var s *redis.Store
		s, err = redis.NewStore(cfg.Redis)
		kv = s
	default:
		return nil, fmt.Errorf("unknown settings store %q", cfg.Store)
	}

	if err != nil {
		return nil, fmt.Errorf("opening %s settings store: %w", cfg.Store, err)
	}
	return kv, nil
}
