// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with the demo jewelry catalog: five
// categories and fifteen products, translated into English, German and
// French. It is a no-op when any category already exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin tx: %w", err)
	}
	defer tx.Rollback()

	categoryIDs := make(map[string]int64, len(seedCategories))
	for _, c := range seedCategories {
		var id int64
		err := tx.QueryRow(`
			INSERT INTO categories (slug, sort_order) VALUES ($1, $2)
			RETURNING id
		`, c.Slug, c.Order).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed category %s: %w", c.Slug, err)
		}
		for lang, tr := range c.Translations {
			_, err := tx.Exec(`
				INSERT INTO category_translations (category_id, language_code, name, description)
				VALUES ($1, $2, $3, $4)
			`, id, lang, tr.Name, tr.Description)
			if err != nil {
				return fmt.Errorf("seed category %s/%s: %w", c.Slug, lang, err)
			}
		}
		categoryIDs[c.Slug] = id
	}

	for _, p := range seedProducts {
		var id int64
		err := tx.QueryRow(`
			INSERT INTO products (sku, category_id, price, material, weight, stock_quantity)
			VALUES ($1, $2, $3::numeric, $4, $5::numeric, 0)
			RETURNING id
		`, p.SKU, categoryIDs[p.Category], p.Price, p.Material, p.Weight).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed product %s: %w", p.SKU, err)
		}
		for lang, tr := range p.Translations {
			_, err := tx.Exec(`
				INSERT INTO product_translations (product_id, language_code, name, description)
				VALUES ($1, $2, $3, $4)
			`, id, lang, tr.Name, tr.Description)
			if err != nil {
				return fmt.Errorf("seed product %s/%s: %w", p.SKU, lang, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with demo catalog",
		"categories", len(seedCategories),
		"products", len(seedProducts),
	)
	return nil
}
