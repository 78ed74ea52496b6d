// Seeds the demo fixtures into a durable database. The in-memory backend is
// seeded through POST /api/init-demo-data instead, since its data would
// vanish with this process.
package main

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/architect/bacprep-backend/internal/storage"
	"github.com/architect/bacprep-backend/pkg/config"
	"github.com/architect/bacprep-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	if err := logger.Init(cfg.Server.Env); err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	if cfg.Storage.Backend == "memory" {
		logger.Error("the memory backend cannot be seeded from a separate process; set STORAGE_BACKEND=sqlite or postgres, or call POST /api/init-demo-data on a running server")
		os.Exit(1)
	}

	if cfg.Storage.Backend == "sqlite" && cfg.Storage.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o755); err != nil {
			logger.Error("failed to create database directory", zap.Error(err))
			os.Exit(1)
		}
	}

	db, err := storage.Open(cfg.Storage.Backend, cfg.Storage.DSN)
	if err != nil {
		logger.Error("failed to open database", zap.Error(err))
		os.Exit(1)
	}

	store, err := storage.NewGormStore(db)
	if err != nil {
		logger.Error("failed to initialize store", zap.Error(err))
		os.Exit(1)
	}

	if err := store.InitializeDemoData(); err != nil {
		logger.Error("failed to seed demo data", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("demo data seeded", zap.String("backend", cfg.Storage.Backend))
}
