package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/WellnessQuest_Go/internal/config"
	"github.com/osse101/WellnessQuest_Go/internal/database"
	"github.com/osse101/WellnessQuest_Go/internal/database/postgres"
	"github.com/osse101/WellnessQuest_Go/internal/mission"
	"github.com/osse101/WellnessQuest_Go/internal/storage"
)

// Store is the opened key/value backend plus the function that releases it
type Store struct {
	Gateway storage.Gateway
	close   func() error
}

// Close releases the backend's connections
func (s *Store) Close() {
	if s.close == nil {
		return
	}
	if err := s.close(); err != nil {
		slog.Error(LogMsgStorageCloseFailed, "error", err)
	}
}

// OpenStore opens the configured backend and wraps it in the read-through cache.
// Postgres has its migrations applied before use.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	var (
		gw      storage.Gateway
		closeFn func() error
	)

	switch cfg.StorageBackend {
	case config.StorageMemory:
		gw = storage.NewMemoryGateway()

	case config.StorageSQLite:
		sqlite, err := storage.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}
		gw, closeFn = sqlite, sqlite.Close

	case config.StoragePostgres:
		connString := cfg.GetDBConnString()
		if err := database.Migrate(ctx, connString); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}

		pool, err := database.NewPool(ctx, connString, cfg.PoolConfig())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		gw = postgres.NewKVGateway(pool)
		closeFn = func() error {
			pool.Close()
			return nil
		}

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorage, cfg.StorageBackend)
	}

	slog.Info(LogMsgStorageOpened, "backend", cfg.StorageBackend)
	return &Store{
		Gateway: storage.NewCachedGateway(gw, cfg.CacheSize, cfg.CacheTTL),
		close:   closeFn,
	}, nil
}

// LoadMissionCatalog returns the catalog override at path, or the built-in
// catalog when path is empty or the override cannot be used.
func LoadMissionCatalog(path string) *mission.Catalog {
	if path == "" {
		slog.Info(LogMsgCatalogBuiltin)
		return mission.DefaultCatalog()
	}

	slog.Info(LogMsgCatalogOverrideFound, "path", path)
	catalog, err := mission.LoadCatalog(path)
	if err != nil {
		slog.Warn(mission.LogMsgCatalogOverrideFailed, "path", path, "error", err)
		return mission.DefaultCatalog()
	}
	slog.Info(mission.LogMsgCatalogOverrideLoaded, "path", path, "objectives", len(catalog.Objectives()))
	return catalog
}
