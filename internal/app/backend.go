package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"floodaware.app/internal/adapters/backend"
	"floodaware.app/internal/adapters/database"
	"floodaware.app/internal/adapters/infrastructure"
	"floodaware.app/internal/config"
	"floodaware.app/internal/core/subscription"
)

// BackendApplication is the alert subscription backend process
type BackendApplication struct {
	config *config.BackendConfig
	db     *gorm.DB
	server *backend.HTTPServerAdapter
}

// NewBackendApplication connects to postgres, migrates and wires the backend API
func NewBackendApplication(ctx context.Context, logger *slog.Logger) (*BackendApplication, error) {
	cfg, err := config.LoadBackendConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	slog.Info("Initializing database connection...")
	db, err := gorm.Open(postgres.Open(cfg.Database.GetDSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	app, err := NewBackendApplicationWithDB(ctx, cfg, db, logger)
	if err != nil {
		closeDB(db)
		return nil, err
	}
	return app, nil
}

// NewBackendApplicationWithDB wires the backend over an open database
func NewBackendApplicationWithDB(ctx context.Context, cfg *config.BackendConfig, db *gorm.DB, logger *slog.Logger) (*BackendApplication, error) {
	repo := database.NewSubscriptionRepositoryAdapter(db)
	if err := repo.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	portLogger := infrastructure.NewSlogLoggerAdapter(logger)
	registry, err := subscription.NewRegistry(subscription.RegistryDependencies{
		Repository: repo,
		Logger:     portLogger,
		Clock:      clockwork.NewRealClock(),
	})
	if err != nil {
		return nil, fmt.Errorf("create subscription registry: %w", err)
	}

	server, err := backend.NewHTTPServerAdapter(backend.ServerOptions{
		Port:     cfg.Port,
		Registry: registry,
		Health:   infrastructure.NewDatabaseHealthChecker(db),
		Logger:   portLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("create backend HTTP adapter: %w", err)
	}

	return &BackendApplication{config: cfg, db: db, server: server}, nil
}

// Start serves the backend API until ctx is cancelled
func (b *BackendApplication) Start(ctx context.Context) error {
	return b.server.Start(ctx)
}

// Shutdown closes the database connection
func (b *BackendApplication) Shutdown() {
	closeDB(b.db)
	slog.Info("Alert backend shutdown complete")
}

// Server returns the HTTP adapter for testing
func (b *BackendApplication) Server() *backend.HTTPServerAdapter {
	return b.server
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Warn("Error closing database", "error", err)
		}
	}
}
