// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pediatricdir/internal/cache"
	"pediatricdir/internal/categorypage"
	"pediatricdir/internal/database"
	"pediatricdir/internal/handlers"
	"pediatricdir/internal/middleware"
	"pediatricdir/internal/router"
	"pediatricdir/internal/store"
	"pediatricdir/internal/views"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Connects to PostgreSQL, applies pending migrations, seeds development data
when APP_ENV=development, and serves the category page until SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"category", cfg.CategorySlug,
		"trust_proxy", cfg.TrustProxy,
	)

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
	}

	// Valkey only backs the rate limiter; without it requests are not limited.
	var limiter *middleware.RateLimiter
	switch {
	case !cfg.ValkeyEnabled():
		slog.Warn("valkey not configured, rate limiting disabled")
	case cfg.RateLimitRequests == 0:
		slog.Info("rate limiting disabled by configuration")
	default:
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			return fmt.Errorf("connect valkey: %w", err)
		}
		defer valkeyClient.Close()
		limiter = middleware.NewRateLimiter(cache.NewWindowCounter(valkeyClient), cfg.RateLimitRequests, cfg.RateLimitWindow)
		slog.Info("rate limiting enabled", "requests", cfg.RateLimitRequests, "window", cfg.RateLimitWindow.String())
	}

	loader := categorypage.NewLoader(store.NewCategoryStore(db), store.NewArticleStore(db), cfg.CategorySlug)
	public := handlers.NewPublic(loader, views.SiteConfig{Name: cfg.SiteName, URL: cfg.SiteURL})
	r := router.New(public, handlers.NewHealth(db), limiter, cfg.TrustProxy)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
