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

// ImageStore handles product image records. The image files themselves
// live in object storage; rows hold only their keys.
type ImageStore struct {
	db *sql.DB
}

// NewImageStore creates a new ImageStore with the given database connection.
func NewImageStore(db *sql.DB) *ImageStore {
	return &ImageStore{db: db}
}

const imageColumns = `id, product_id, image, alt_text, sort_order, is_primary, created_at`

// scanImage scans an image row from the result set.
func scanImage(scanner interface{ Scan(...any) error }) (*models.ProductImage, error) {
	var img models.ProductImage
	err := scanner.Scan(
		&img.ID, &img.ProductID, &img.Image, &img.AltText,
		&img.SortOrder, &img.IsPrimary, &img.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// Create inserts a new image record. When img.IsPrimary is set, any other
// primary image of the same product is demoted in the same transaction.
func (s *ImageStore) Create(ctx context.Context, img *models.ProductImage) (*models.ProductImage, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if img.IsPrimary {
		if err := lockProduct(ctx, tx, img.ProductID); err != nil {
			return nil, err
		}
		if err := clearPrimary(ctx, tx, img.ProductID); err != nil {
			return nil, err
		}
	}

	row := tx.QueryRowContext(ctx, `
		INSERT INTO product_images (product_id, image, alt_text, sort_order, is_primary)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+imageColumns,
		img.ProductID, img.Image, img.AltText, img.SortOrder, img.IsPrimary,
	)
	created, err := scanImage(row)
	if err != nil {
		return nil, wrapErr("create product image", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit product image: %w", err)
	}
	return created, nil
}

// SetPrimary makes imageID the only primary image of productID. The product
// row is locked for the duration so concurrent calls for the same product
// serialize; the partial unique index on product_images backs this up.
func (s *ImageStore) SetPrimary(ctx context.Context, productID, imageID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := lockProduct(ctx, tx, productID); err != nil {
		return err
	}
	if err := clearPrimary(ctx, tx, productID); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE product_images SET is_primary = TRUE
		WHERE id = $1 AND product_id = $2
	`, imageID, productID)
	if err != nil {
		return wrapErr("set primary image", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("image %d of product %d: %w", imageID, productID, ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit primary image: %w", err)
	}
	return nil
}

// lockProduct takes a row lock on the product, failing with ErrNotFound
// when it does not exist.
func lockProduct(ctx context.Context, tx *sql.Tx, productID int64) error {
	var id int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM products WHERE id = $1 FOR UPDATE`, productID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("lock product: %w", err)
	}
	return nil
}

func clearPrimary(ctx context.Context, tx *sql.Tx, productID int64) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE product_images SET is_primary = FALSE
		WHERE product_id = $1 AND is_primary
	`, productID)
	if err != nil {
		return fmt.Errorf("clear primary images: %w", err)
	}
	return nil
}

// ListByProducts returns the images of the given products keyed by
// product id, each list in display order.
func (s *ImageStore) ListByProducts(ctx context.Context, productIDs []int64) (map[int64][]models.ProductImage, error) {
	result := make(map[int64][]models.ProductImage, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+imageColumns+`
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY sort_order, id
	`, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list product images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product image: %w", err)
		}
		result[img.ProductID] = append(result[img.ProductID], *img)
	}
	return result, rows.Err()
}

// Delete removes an image record and returns it so the caller can clean
// up the stored file. Returns nil if not found.
func (s *ImageStore) Delete(ctx context.Context, id int64) (*models.ProductImage, error) {
	row := s.db.QueryRowContext(ctx, `
		DELETE FROM product_images WHERE id = $1
		RETURNING `+imageColumns, id)
	img, err := scanImage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete product image: %w", err)
	}
	return img, nil
}
