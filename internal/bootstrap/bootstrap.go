package bootstrap

import (
	"context"
	"fmt"

	"insights-server/internal/auth"
	"insights-server/internal/cache"
	"insights-server/internal/config"
	metricsHandler "insights-server/internal/metrics/handler"
	metricsProcessor "insights-server/internal/metrics/processor"
	"insights-server/internal/observability"
	"insights-server/internal/store"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger
	Cache  *cache.Cache

	// Auth
	Authenticator auth.Authenticator

	// Handlers
	MetricsHandler metricsHandler.Handler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Database.Migrate {
		logger.Info(ctx, "applying pending schema migrations")
		if err := deps.Store.Migrate(); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Initialize the optional result cache
	deps.Cache = cache.New(cfg.Redis, logger)

	// Initialize auth
	deps.Authenticator = auth.New(cfg.Auth.JWTSecret, logger)

	// Initialize metrics processor and handler
	metricsProc := metricsProcessor.NewMetricsProcessor(&deps.Store, deps.Cache, logger)
	deps.MetricsHandler = metricsHandler.New(metricsProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.Cache != nil {
		_ = d.Cache.Close()
	}
	if db := d.Store.DB(); db != nil {
		_ = db.Close()
	}
}
