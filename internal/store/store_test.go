// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// store_test.go provides shared database and fixture helpers for the store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"jewelrycatalog/internal/database"
	"jewelrycatalog/internal/models"
	"jewelrycatalog/internal/testdb"
)

// testDB connects to the test database and runs migrations. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Connect(testdb.DSN(t))
	if err != nil {
		t.Skipf("skipping integration test: %v", err)
	}
	require.NoError(t, database.Migrate(db), "migrations")

	t.Cleanup(func() { db.Close() })
	return db
}

// uniq returns prefix with a random suffix so tests sharing a database
// never collide on slugs or SKUs.
func uniq(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

// categoryFixture describes a category to insert. Names maps language
// codes to translated names.
type categoryFixture struct {
	Parent   *int64
	Inactive bool
	Order    int
	Names    map[string]string
}

func createCategory(t *testing.T, db *sql.DB, f categoryFixture) *models.Category {
	t.Helper()

	c := &models.Category{
		Slug:      uniq("cat"),
		ParentID:  f.Parent,
		IsActive:  !f.Inactive,
		SortOrder: f.Order,
	}
	for lang, name := range f.Names {
		c.SetTranslation(lang, models.CategoryTranslation{Name: name})
	}

	created, err := NewCategoryStore(db).Create(context.Background(), c)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Exec("DELETE FROM products WHERE category_id = $1", created.ID)
		db.Exec("DELETE FROM categories WHERE id = $1", created.ID)
	})
	return created
}

// productFixture describes a product to insert.
type productFixture struct {
	CategoryID int64
	SKU        string
	Price      string
	Stock      int
	Inactive   bool
	Featured   bool
	Names      map[string]string
}

func createProduct(t *testing.T, db *sql.DB, f productFixture) *models.Product {
	t.Helper()

	sku := f.SKU
	if sku == "" {
		sku = uniq("SKU")
	}
	price := f.Price
	if price == "" {
		price = "100.00"
	}
	p := &models.Product{
		SKU:           sku,
		CategoryID:    f.CategoryID,
		Price:         decimal.RequireFromString(price),
		StockQuantity: f.Stock,
		IsActive:      !f.Inactive,
		IsFeatured:    f.Featured,
		Material:      "Gold",
	}
	for lang, name := range f.Names {
		p.SetTranslation(lang, models.ProductTranslation{Name: name, Description: name + " description"})
	}

	created, err := NewProductStore(db).Create(context.Background(), p)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Exec("DELETE FROM products WHERE id = $1", created.ID)
	})
	return created
}

func ptr[T any](v T) *T { return &v }
