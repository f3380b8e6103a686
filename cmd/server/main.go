// @title           Inventory Console API
// @version         1.0
// @description     Product catalog, order stock updates and spreadsheet export for the inventory console.
// @BasePath        /api
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the session token.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/inventory-console/inventory-api/internal/api"
	"github.com/inventory-console/inventory-api/internal/core/ports"
	"github.com/inventory-console/inventory-api/internal/core/service"
	"github.com/inventory-console/inventory-api/internal/infrastructure/db/filestore"
	"github.com/inventory-console/inventory-api/internal/infrastructure/db/mongo"
	"github.com/inventory-console/inventory-api/internal/infrastructure/db/redis"
	"github.com/inventory-console/inventory-api/internal/pkg/config"
	"github.com/inventory-console/inventory-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "inventory-api",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	if cfg.UsesDevSecret() && !cfg.IsDevelopment() {
		log.Warn().Str("env", cfg.Env).Msg("JWT_SECRET not set, signing tokens with the development secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := closeStore(closeCtx); err != nil {
			log.Error().Err(err).Msg("close store")
		}
	}()

	if err := service.Bootstrap(ctx, store, logger.Component("bootstrap")); err != nil {
		return err
	}

	e, err := api.NewRouter(cfg, store, logger.Component("http"))
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("store", cfg.Store.Driver).
			Str("prefix", cfg.APIPrefix).
			Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStore connects the configured document backend. The returned func
// releases its connections.
func openStore(ctx context.Context, cfg *config.Config) (ports.DocumentStore, func(context.Context) error, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Store.Mongo.URI,
			Database: cfg.Store.Mongo.Database,
		})
		if err != nil {
			return nil, nil, err
		}
		return mongo.NewDocumentStore(db, cfg.Store.Mongo.Collection), client.Disconnect, nil

	case config.DriverRedis:
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return redis.NewDocumentStore(client, cfg.Store.Redis.Key), func(context.Context) error {
			return client.Close()
		}, nil

	default:
		return filestore.New(cfg.Store.Path), func(context.Context) error { return nil }, nil
	}
}
