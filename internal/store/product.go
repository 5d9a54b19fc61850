// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"jewelrycatalog/internal/models"
)

// ProductStore manages products and their translations in the database.
type ProductStore struct {
	db *sql.DB
}

// NewProductStore returns a new ProductStore.
func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

// ProductFilter narrows a product listing. Zero values leave the
// corresponding column unconstrained.
type ProductFilter struct {
	// CategorySlugs must all match the product's category slug.
	CategorySlugs []string
	IsFeatured    *bool
	IsActive      *bool
	// MinPrice and MaxPrice are inclusive bounds on the list price.
	MinPrice decimal.NullDecimal
	MaxPrice decimal.NullDecimal
	InStock  bool
	// Search matches every whitespace-separated term against the
	// translated name or description (any language) or the SKU.
	Search string
}

const productColumns = `p.id, p.sku, p.category_id, p.price, p.discount_price,
	p.stock_quantity, p.is_active, p.is_featured, p.weight, p.material,
	p.created_at, p.updated_at`

var productOrdering = map[string]string{
	"price":          "p.price",
	"created_at":     "p.created_at",
	"stock_quantity": "p.stock_quantity",
}

// scanProduct scans a productColumns row into a Product struct.
func scanProduct(scanner interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	err := scanner.Scan(
		&p.ID, &p.SKU, &p.CategoryID, &p.Price, &p.DiscountPrice,
		&p.StockQuantity, &p.IsActive, &p.IsFeatured, &p.Weight, &p.Material,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// activeProductInLanguage restricts p to active products with a translation
// in lang or fallback.
func activeProductInLanguage(w *whereBuilder, lang, fallback string) {
	w.and("p.is_active")
	w.and(`EXISTS (SELECT 1 FROM product_translations t
		WHERE t.product_id = p.id AND t.language_code IN (` + w.arg(lang) + `, ` + w.arg(fallback) + `))`)
}

// List returns one page of active products translated into lang or
// fallback, narrowed by f and sorted by ordering ("price", "-created_at").
// Newest products come first by default. A non-positive limit returns all
// matches. The second result is the total number of matches.
func (s *ProductStore) List(ctx context.Context, lang, fallback string, f ProductFilter, ordering []string, limit, offset int) ([]models.Product, int, error) {
	w := &whereBuilder{}
	activeProductInLanguage(w, lang, fallback)
	if f.IsActive != nil {
		w.and("p.is_active = " + w.arg(*f.IsActive))
	}
	if f.IsFeatured != nil {
		w.and("p.is_featured = " + w.arg(*f.IsFeatured))
	}
	for _, slug := range f.CategorySlugs {
		w.and("cat.slug = " + w.arg(slug))
	}
	if f.MinPrice.Valid {
		w.and("p.price >= " + w.arg(f.MinPrice.Decimal))
	}
	if f.MaxPrice.Valid {
		w.and("p.price <= " + w.arg(f.MaxPrice.Decimal))
	}
	if f.InStock {
		w.and("p.stock_quantity > 0")
	}
	for _, term := range searchTerms(f.Search) {
		ph := w.arg(likePattern(term))
		w.and(`(p.sku ILIKE ` + ph + ` OR EXISTS (SELECT 1 FROM product_translations st
			WHERE st.product_id = p.id AND (st.name ILIKE ` + ph + ` OR st.description ILIKE ` + ph + `)))`)
	}

	from := ` FROM products p JOIN categories cat ON cat.id = p.category_id`

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*)`+from+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `SELECT ` + productColumns + from + w.sql() +
		orderBy(ordering, productOrdering, "p.created_at DESC", "p.id")
	args := w.args
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}

	items, err := s.query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return items, total, nil
}

// Featured returns up to limit active, featured products translated into
// lang or fallback, newest first.
func (s *ProductStore) Featured(ctx context.Context, lang, fallback string, limit int) ([]models.Product, error) {
	w := &whereBuilder{}
	activeProductInLanguage(w, lang, fallback)
	w.and("p.is_featured")
	query := `SELECT ` + productColumns + ` FROM products p` + w.sql() +
		` ORDER BY p.created_at DESC, p.id LIMIT ` + w.arg(limit)

	items, err := s.query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list featured products: %w", err)
	}
	return items, nil
}

// ByCategorySlug returns every active product of the category with the
// given slug that is translated into lang or fallback, newest first.
func (s *ProductStore) ByCategorySlug(ctx context.Context, lang, fallback, slug string) ([]models.Product, error) {
	items, _, err := s.List(ctx, lang, fallback, ProductFilter{CategorySlugs: []string{slug}}, nil, 0, 0)
	return items, err
}

// FindBySKU retrieves an active product by SKU. A missing translation does
// not hide the product. Returns nil if not found.
func (s *ProductStore) FindBySKU(ctx context.Context, sku string) (*models.Product, error) {
	items, err := s.query(ctx, `SELECT `+productColumns+` FROM products p
		WHERE p.sku = $1 AND p.is_active`, sku)
	if err != nil {
		return nil, fmt.Errorf("find product by sku: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

// IDBySKU resolves a SKU to a product id regardless of active state.
// Returns 0 if not found.
func (s *ProductStore) IDBySKU(ctx context.Context, sku string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM products WHERE sku = $1`, sku).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("find product id: %w", err)
	}
	return id, nil
}

// query runs a productColumns query and attaches translations to the rows.
func (s *ProductStore) query(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.attachTranslations(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// attachTranslations loads the translation records of items in one query.
func (s *ProductStore) attachTranslations(ctx context.Context, items []models.Product) error {
	if len(items) == 0 {
		return nil
	}
	byID := make(map[int64]*models.Product, len(items))
	ids := make([]int64, 0, len(items))
	for i := range items {
		items[i].Translations = make(map[string]models.ProductTranslation)
		byID[items[i].ID] = &items[i]
		ids = append(ids, items[i].ID)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT product_id, language_code, name, description, short_description,
		       meta_title, meta_description
		FROM product_translations
		WHERE product_id = ANY($1)
	`, ids)
	if err != nil {
		return fmt.Errorf("load product translations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int64
			lang string
			t    models.ProductTranslation
		)
		err := rows.Scan(&id, &lang, &t.Name, &t.Description, &t.ShortDescription,
			&t.MetaTitle, &t.MetaDescription)
		if err != nil {
			return fmt.Errorf("scan product translation: %w", err)
		}
		if p, ok := byID[id]; ok {
			p.SetTranslation(lang, t)
		}
	}
	return rows.Err()
}

// Create inserts a product together with its translations and returns the
// stored row.
func (s *ProductStore) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO products (sku, category_id, price, discount_price, stock_quantity,
			is_active, is_featured, weight, material)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, p.SKU, p.CategoryID, p.Price, p.DiscountPrice, p.StockQuantity,
		p.IsActive, p.IsFeatured, p.Weight, p.Material,
	).Scan(&id)
	if err != nil {
		return nil, wrapErr("create product", err)
	}

	for lang, t := range p.Translations {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO product_translations (product_id, language_code, name, description,
				short_description, meta_title, meta_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, id, lang, t.Name, t.Description, t.ShortDescription, t.MetaTitle, t.MetaDescription)
		if err != nil {
			return nil, wrapErr("create product translation", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit product: %w", err)
	}

	items, err := s.query(ctx, `SELECT `+productColumns+` FROM products p WHERE p.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("reload product %d: %w", id, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("reload product %d: %w", id, ErrNotFound)
	}
	return &items[0], nil
}

// UpdateStock sets the stock quantity of the product with the given SKU.
func (s *ProductStore) UpdateStock(ctx context.Context, sku string, quantity int) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE products SET stock_quantity = $1, updated_at = NOW() WHERE sku = $2
	`, quantity, sku)
	if err != nil {
		return wrapErr("update product stock", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update stock of %s: %w", sku, ErrNotFound)
	}
	return nil
}
