// Package backend elige la implementación de storage.KV según la configuración.
package backend

import (
	"context"
	"fmt"

	"fauna-field-log/internal/adapters/storage/boltdb"
	"fauna-field-log/internal/adapters/storage/memory"
	"fauna-field-log/internal/adapters/storage/postgres"
	"fauna-field-log/internal/adapters/storage/sqlite"
	"fauna-field-log/internal/config"
	"fauna-field-log/internal/platform/logger"
	"fauna-field-log/internal/ports/storage"
)

// Open abre el backend de cfg.Driver. El llamador cierra el KV.
func Open(ctx context.Context, cfg config.StorageConfig, log logger.Logger) (storage.KV, error) {
	if log == nil {
		log = logger.Nop()
	}

	switch cfg.Driver {
	case config.StorageBolt, "":
		kv, err := boltdb.Open(cfg.Path)
		if err != nil {
			return nil, err
		}
		log.Info("storage ready", map[string]any{"driver": config.StorageBolt, "path": cfg.Path})
		return kv, nil

	case config.StorageSQLite:
		kv, err := sqlite.Open(cfg.Path)
		if err != nil {
			return nil, err
		}
		log.Info("storage ready", map[string]any{"driver": config.StorageSQLite, "path": cfg.Path})
		return kv, nil

	case config.StoragePostgres:
		db, err := postgres.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		kv := postgres.NewKV(db)
		if err := kv.EnsureSchema(ctx); err != nil {
			_ = kv.Close()
			return nil, err
		}
		log.Info("storage ready", map[string]any{"driver": config.StoragePostgres})
		return kv, nil

	case config.StorageMemory:
		log.Warn("using in-memory storage, data is lost on exit", nil)
		return memory.NewKV(), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
