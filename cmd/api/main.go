// Package main is the entry point for the CashEase API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/cashease/backend/config"
	"github.com/cashease/backend/internal/infra/db"
	"github.com/cashease/backend/internal/infra/dependency"
	"github.com/cashease/backend/internal/integration/cache"
	"github.com/cashease/backend/internal/integration/persistence"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server terminated", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()
	slog.SetDefault(newLogger(cfg.Log))
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	slog.Info("Starting CashEase API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.NewPostgresConnection(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.Migrate(); err != nil {
		return err
	}
	slog.Info("Database migrations completed successfully")

	resources := dependency.Resources{DB: database.DB()}
	if cfg.Redis.URL != "" {
		client, err := cache.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			return err
		}
		defer closeRedis(client)
		resources.Redis = client
		slog.Info("Streaks stored in Redis")
	}

	injector, err := dependency.NewInjector(cfg, resources)
	if err != nil {
		return err
	}

	if injector.EmailWorker != nil {
		go injector.EmailWorker.Start(ctx)
	}

	cleanupDone := make(chan struct{})
	defer close(cleanupDone)
	go injector.RateLimiter.RunCleanup(5*time.Minute, cleanupDone)
	go pruneRefreshTokens(ctx, injector.RefreshTokens, time.Hour)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      injector.Router.Setup(cfg.Server.Environment),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("Server exited properly")
	return nil
}

// pruneRefreshTokens deletes expired refresh tokens every interval until ctx is done.
func pruneRefreshTokens(ctx context.Context, tokens persistence.TokenRepository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := tokens.DeleteExpired(ctx, now.UTC())
			if err != nil {
				slog.Error("Failed to prune refresh tokens", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("Pruned expired refresh tokens", "count", n)
			}
		}
	}
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func closeRedis(client *redis.Client) {
	if err := client.Close(); err != nil {
		slog.Error("Failed to close redis client", "error", err)
	}
}
