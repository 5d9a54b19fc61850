// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"jewelrycatalog/internal/models"
)

// CategoryStore manages categories and their translations in the database.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// CategoryFilter narrows a category listing. Nil pointers leave the
// corresponding column unconstrained.
type CategoryFilter struct {
	ParentID *int64
	IsActive *bool
	RootOnly bool
}

// categorySelect includes the counts shown in list projections: active
// children and active products.
const categorySelect = `
	SELECT c.id, c.slug, c.parent_id, c.is_active, c.sort_order,
	       c.created_at, c.updated_at,
	       (SELECT COUNT(*) FROM categories ch
	         WHERE ch.parent_id = c.id AND ch.is_active) AS children_count,
	       (SELECT COUNT(*) FROM products p
	         WHERE p.category_id = c.id AND p.is_active) AS products_count
	FROM categories c`

var categoryOrdering = map[string]string{
	"order":      "c.sort_order",
	"created_at": "c.created_at",
}

// scanCategory scans a categorySelect row into a Category struct.
func scanCategory(scanner interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	err := scanner.Scan(
		&c.ID, &c.Slug, &c.ParentID, &c.IsActive, &c.SortOrder,
		&c.CreatedAt, &c.UpdatedAt,
		&c.ChildrenCount, &c.ProductsCount,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// activeCategoryInLanguage restricts c to categories with a translation in lang
// or fallback.
func activeCategoryInLanguage(w *whereBuilder, lang, fallback string) {
	w.and(`EXISTS (SELECT 1 FROM category_translations t
		WHERE t.category_id = c.id AND t.language_code IN (` + w.arg(lang) + `, ` + w.arg(fallback) + `))`)
}

// List returns active categories that have a translation in lang or
// fallback, narrowed by f and sorted by ordering ("order", "-created_at").
// Default ordering is by sort order.
func (s *CategoryStore) List(ctx context.Context, lang, fallback string, f CategoryFilter, ordering []string) ([]models.Category, error) {
	w := &whereBuilder{}
	w.and("c.is_active")
	activeCategoryInLanguage(w, lang, fallback)
	if f.IsActive != nil {
		w.and("c.is_active = " + w.arg(*f.IsActive))
	}
	if f.ParentID != nil {
		w.and("c.parent_id = " + w.arg(*f.ParentID))
	}
	if f.RootOnly {
		w.and("c.parent_id IS NULL")
	}

	query := categorySelect + w.sql() + orderBy(ordering, categoryOrdering, "c.sort_order", "c.id")
	items, err := s.query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return items, nil
}

// FindBySlug retrieves an active category by slug. A missing translation
// does not hide the category. Returns nil if not found.
func (s *CategoryStore) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	row := s.db.QueryRowContext(ctx, categorySelect+` WHERE c.slug = $1 AND c.is_active`, slug)
	c, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by slug: %w", err)
	}
	if err := s.attachTranslations(ctx, []*models.Category{c}); err != nil {
		return nil, err
	}
	return c, nil
}

// FindByIDs returns the categories with the given ids keyed by id,
// regardless of their active flag.
func (s *CategoryStore) FindByIDs(ctx context.Context, ids []int64) (map[int64]*models.Category, error) {
	result := make(map[int64]*models.Category, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	items, err := s.query(ctx, categorySelect+` WHERE c.id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("find categories by id: %w", err)
	}
	for i := range items {
		result[items[i].ID] = &items[i]
	}
	return result, nil
}

// All returns every category with translations. It feeds the parent index
// used for path construction.
func (s *CategoryStore) All(ctx context.Context) ([]models.Category, error) {
	items, err := s.query(ctx, categorySelect+` ORDER BY c.sort_order, c.id`)
	if err != nil {
		return nil, fmt.Errorf("list all categories: %w", err)
	}
	return items, nil
}

// ActiveChildren returns the active direct children of the given parents,
// in display order.
func (s *CategoryStore) ActiveChildren(ctx context.Context, parentIDs []int64) ([]models.Category, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	items, err := s.query(ctx, categorySelect+`
		WHERE c.parent_id = ANY($1) AND c.is_active
		ORDER BY c.sort_order, c.id`, parentIDs)
	if err != nil {
		return nil, fmt.Errorf("list category children: %w", err)
	}
	return items, nil
}

// query runs a categorySelect query and attaches translations to the rows.
func (s *CategoryStore) query(ctx context.Context, query string, args ...any) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ptrs := make([]*models.Category, len(items))
	for i := range items {
		ptrs[i] = &items[i]
	}
	if err := s.attachTranslations(ctx, ptrs); err != nil {
		return nil, err
	}
	return items, nil
}

// attachTranslations loads the translation records of cats in one query.
func (s *CategoryStore) attachTranslations(ctx context.Context, cats []*models.Category) error {
	if len(cats) == 0 {
		return nil
	}
	byID := make(map[int64]*models.Category, len(cats))
	ids := make([]int64, 0, len(cats))
	for _, c := range cats {
		c.Translations = make(map[string]models.CategoryTranslation)
		byID[c.ID] = c
		ids = append(ids, c.ID)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category_id, language_code, name, description, meta_title, meta_description
		FROM category_translations
		WHERE category_id = ANY($1)
	`, ids)
	if err != nil {
		return fmt.Errorf("load category translations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int64
			lang string
			t    models.CategoryTranslation
		)
		if err := rows.Scan(&id, &lang, &t.Name, &t.Description, &t.MetaTitle, &t.MetaDescription); err != nil {
			return fmt.Errorf("scan category translation: %w", err)
		}
		if c, ok := byID[id]; ok {
			c.SetTranslation(lang, t)
		}
	}
	return rows.Err()
}

// Create inserts a category together with its translations and returns
// the stored row.
func (s *CategoryStore) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO categories (slug, parent_id, is_active, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, c.Slug, c.ParentID, c.IsActive, c.SortOrder).Scan(&id)
	if err != nil {
		return nil, wrapErr("create category", err)
	}

	for lang, t := range c.Translations {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO category_translations
				(category_id, language_code, name, description, meta_title, meta_description)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, id, lang, t.Name, t.Description, t.MetaTitle, t.MetaDescription)
		if err != nil {
			return nil, wrapErr("create category translation", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit category: %w", err)
	}

	items, err := s.query(ctx, categorySelect+` WHERE c.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("reload category %d: %w", id, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("reload category %d: %w", id, ErrNotFound)
	}
	return &items[0], nil
}

// SetParent moves a category under parentID, or to the root when parentID
// is nil. Assignments that would make the category its own ancestor fail
// with ErrCycle.
func (s *CategoryStore) SetParent(ctx context.Context, id int64, parentID *int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if parentID != nil {
		// Walk up from the new parent; reaching id means a cycle.
		var hit bool
		err := tx.QueryRowContext(ctx, `
			WITH RECURSIVE ancestors(id, parent_id) AS (
				SELECT id, parent_id FROM categories WHERE id = $1
				UNION
				SELECT c.id, c.parent_id FROM categories c
				JOIN ancestors a ON c.id = a.parent_id
			)
			SELECT EXISTS (SELECT 1 FROM ancestors WHERE id = $2)
		`, *parentID, id).Scan(&hit)
		if err != nil {
			return fmt.Errorf("check category ancestry: %w", err)
		}
		if hit {
			return fmt.Errorf("set parent of category %d to %d: %w", id, *parentID, ErrCycle)
		}
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE categories SET parent_id = $1, updated_at = NOW() WHERE id = $2
	`, parentID, id)
	if err != nil {
		return wrapErr("set category parent", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("set category parent %d: %w", id, ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit category parent: %w", err)
	}
	return nil
}

// Delete removes a category by ID. Descendants are removed with it
// (ON DELETE CASCADE); a category that still holds products is refused
// with ErrIntegrity.
func (s *CategoryStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return wrapErr("delete category", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete category %d: %w", id, ErrNotFound)
	}
	return nil
}

// IDBySlug resolves a slug to a category id regardless of active state.
// Returns 0 if not found.
func (s *CategoryStore) IDBySlug(ctx context.Context, slug string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM categories WHERE slug = $1`, slug).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("find category id: %w", err)
	}
	return id, nil
}
