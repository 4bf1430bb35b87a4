// Package bootstrap assembles the application from configuration and tears
// it down again in order.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/FishingBot_Go/internal/config"
	"github.com/osse101/FishingBot_Go/internal/database"
	"github.com/osse101/FishingBot_Go/internal/database/postgres"
	"github.com/osse101/FishingBot_Go/internal/ledger"
	"github.com/osse101/FishingBot_Go/internal/logger"
)

// OpenStore builds the player store named by cfg.StorageBackend. Database
// backends sit behind the read-through cache.
func OpenStore(ctx context.Context, cfg *config.Config, starterRod string) (ledger.Store, error) {
	log := logger.FromContext(ctx)

	var store ledger.Store
	switch cfg.StorageBackend {
	case config.StorageMemory:
		log.Info(LogMsgStoreOpened, "backend", cfg.StorageBackend)
		return ledger.NewMemoryStore(starterRod), nil

	case config.StorageSQLite:
		s, err := ledger.OpenSQLite(cfg.SQLitePath, starterRod)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		store = s

	case config.StoragePostgres:
		dsn := cfg.GetDBConnString()
		if err := database.RunMigrations(ctx, dsn); err != nil {
			return nil, err
		}
		pool, err := database.NewPool(ctx, dsn, database.PoolConfig{MaxConns: cfg.DBMaxConns})
		if err != nil {
			return nil, err
		}
		store = postgres.NewPlayerRepository(pool, starterRod)

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	log.Info(LogMsgStoreOpened, "backend", cfg.StorageBackend)
	if cfg.CacheSize <= 0 {
		return store, nil
	}
	log.Info(LogMsgCacheEnabled, "size", cfg.CacheSize, "ttl", cfg.CacheTTL)
	return ledger.NewCachedStore(store, cfg.CacheSize, cfg.CacheTTL), nil
}
