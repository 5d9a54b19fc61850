// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"jewelrycatalog/internal/admin"
	"jewelrycatalog/internal/cache"
	"jewelrycatalog/internal/config"
	"jewelrycatalog/internal/database"
	"jewelrycatalog/internal/storage"
	"jewelrycatalog/internal/store"
)

// app opens connections on first use so that argument errors are reported
// without touching the database.
type app struct {
	cfg    *config.Config
	db     *sql.DB
	valkey *redis.Client

	cacheLog *store.CacheLogStore
	admin    *admin.Admin
}

// config loads the environment once.
func (a *app) config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	a.cfg = cfg
	return cfg, nil
}

// database connects to PostgreSQL and applies pending migrations.
func (a *app) database() (*sql.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	a.db = db
	return db, nil
}

// writer builds the admin service with everything it can reach. Valkey
// and object storage are optional.
func (a *app) writer(ctx context.Context) (*admin.Admin, error) {
	if a.admin != nil {
		return a.admin, nil
	}
	db, err := a.database()
	if err != nil {
		return nil, err
	}
	cfg := a.cfg

	var responses admin.Invalidator
	if cfg.CacheEnabled {
		client, err := cache.ConnectValkey(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Warn("valkey unavailable, cached responses expire on their own", "error", err)
		} else {
			a.valkey = client
			responses = cache.NewResponseCache(client, cfg.CacheTTL)
		}
	}

	var blobs admin.BlobStore
	if cfg.HasStorage() {
		client, err := storage.New(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicURL)
		if err != nil {
			return nil, fmt.Errorf("init storage: %w", err)
		}
		blobs = client
	}

	a.cacheLog = store.NewCacheLogStore(db)
	a.admin = admin.New(
		store.NewCategoryStore(db),
		store.NewProductStore(db),
		store.NewImageStore(db),
		responses,
		a.cacheLog,
		blobs,
	)
	return a.admin, nil
}

// close releases whatever was opened.
func (a *app) close() {
	if a.valkey != nil {
		a.valkey.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}
