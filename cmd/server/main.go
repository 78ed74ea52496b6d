package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/architect/bacprep-backend/internal/ai"
	"github.com/architect/bacprep-backend/internal/server"
	"github.com/architect/bacprep-backend/internal/storage"
	"github.com/architect/bacprep-backend/pkg/config"
	"github.com/architect/bacprep-backend/pkg/logger"
	"github.com/architect/bacprep-backend/pkg/monitoring"
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

	monitoring.Init()

	store, db, err := buildStore(cfg)
	if err != nil {
		logger.Error("failed to initialize storage", zap.Error(err))
		os.Exit(1)
	}

	gateway := ai.NewGateway(ai.NewOpenAIClient(cfg.AI))
	router := server.New(cfg, store, gateway, db)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening",
			zap.String("addr", addr),
			zap.String("env", cfg.Server.Env),
			zap.String("storage", cfg.Storage.Backend),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}

// buildStore selects the storage backend. The returned *gorm.DB is nil for
// the in-memory backend.
func buildStore(cfg *config.Config) (storage.Store, *gorm.DB, error) {
	if cfg.Storage.Backend == "memory" {
		return storage.NewMemoryStore(), nil, nil
	}

	if cfg.Storage.Backend == "sqlite" && cfg.Storage.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o755); err != nil {
			return nil, nil, err
		}
	}

	db, err := storage.Open(cfg.Storage.Backend, cfg.Storage.DSN)
	if err != nil {
		return nil, nil, err
	}
	store, err := storage.NewGormStore(db)
	if err != nil {
		return nil, nil, err
	}
	return store, db, nil
}
