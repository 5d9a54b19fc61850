// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the jewelry catalog API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"jewelrycatalog/internal/cache"
	"jewelrycatalog/internal/catalog"
	"jewelrycatalog/internal/config"
	"jewelrycatalog/internal/database"
	"jewelrycatalog/internal/handlers"
	"jewelrycatalog/internal/i18n"
	"jewelrycatalog/internal/middleware"
	"jewelrycatalog/internal/router"
	"jewelrycatalog/internal/storage"
	"jewelrycatalog/internal/store"
)

func main() {
	// Structured logger: text in development, JSON elsewhere.
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, nil)
	if os.Getenv("APP_ENV") == "" || os.Getenv("APP_ENV") == "development" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"languages", cfg.Languages,
		"default_language", cfg.LanguageCode,
		"fallback_language", cfg.FallbackLanguage,
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey for the response cache. The API keeps serving
	// uncached if Valkey is unreachable.
	var responseCache *cache.ResponseCache
	if cfg.CacheEnabled {
		valkeyClient, err := cache.ConnectValkey(context.Background(), cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Warn("valkey unavailable, response cache disabled", "error", err)
		} else {
			defer valkeyClient.Close()
			responseCache = cache.NewResponseCache(valkeyClient, cfg.CacheTTL)
		}
	}

	// Connect to S3-compatible object storage (optional, image keys are
	// served as stored without it).
	var urls catalog.URLResolver
	if cfg.HasStorage() {
		storageClient, err := storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		urls = storageClient
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", storageClient.Bucket())
	} else {
		slog.Warn("s3 storage not configured, image URLs fall back to stored keys")
	}

	// Initialize data stores and the catalog read service.
	svc := catalog.NewService(
		store.NewCategoryStore(db),
		store.NewProductStore(db),
		store.NewImageStore(db),
		urls,
		cfg.FallbackLanguage,
	)

	// Metrics registry with runtime collectors next to the HTTP ones.
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, cfg.DBName),
	)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute, cfg.TrustProxy)
	defer rateLimiter.Stop()

	r := router.New(
		handlers.NewCatalog(svc, responseCache, cfg.PageSize, cfg.TrustProxy),
		&i18n.Negotiator{Default: cfg.LanguageCode, Supported: cfg.Languages},
		router.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			RateLimiter:    rateLimiter,
			Metrics:        middleware.NewMetrics(reg),
			Gatherer:       reg,
			DB:             db,
		},
	)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
