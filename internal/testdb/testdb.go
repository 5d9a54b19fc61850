// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package testdb provides a PostgreSQL instance for integration tests.
// POSTGRES_TEST_DSN points tests at an existing server; otherwise a
// disposable container is started with testcontainers. Tests are skipped
// when neither is available.
package testdb

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	once   sync.Once
	dsn    string
	dsnErr error
)

// DSN returns a connection string for a test database. The container, if
// one is started, is shared by every test in the package binary and is
// reaped by testcontainers when the process exits.
func DSN(t *testing.T) string {
	t.Helper()

	if v := os.Getenv("POSTGRES_TEST_DSN"); v != "" {
		return v
	}

	testcontainers.SkipIfProviderIsNotHealthy(t)

	once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		container, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("catalog_test"),
			postgres.WithUsername("catalog"),
			postgres.WithPassword("catalog"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
		if err != nil {
			dsnErr = err
			return
		}
		dsn, dsnErr = container.ConnectionString(ctx, "sslmode=disable")
	})

	if dsnErr != nil {
		t.Skipf("skipping integration test: cannot start PostgreSQL: %v", dsnErr)
	}
	return dsn
}
