// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package admin implements the catalog write operations used by the
// catalogctl tool. Every successful write purges the response cache and
// records the purge in the invalidation log.
package admin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"jewelrycatalog/internal/models"
	"jewelrycatalog/internal/slug"
	"jewelrycatalog/internal/storage"
	"jewelrycatalog/internal/store"
)

// ErrNoStorage is returned when a file upload is requested but object
// storage is not configured.
var ErrNoStorage = errors.New("object storage is not configured")

// CategoryWriter is the subset of store.CategoryStore used for writes.
type CategoryWriter interface {
	Create(ctx context.Context, c *models.Category) (*models.Category, error)
	SetParent(ctx context.Context, id int64, parentID *int64) error
	Delete(ctx context.Context, id int64) error
	IDBySlug(ctx context.Context, slug string) (int64, error)
}

// ProductWriter is the subset of store.ProductStore used for writes.
type ProductWriter interface {
	IDBySKU(ctx context.Context, sku string) (int64, error)
	UpdateStock(ctx context.Context, sku string, quantity int) error
}

// ImageWriter is the subset of store.ImageStore used for writes.
type ImageWriter interface {
	Create(ctx context.Context, img *models.ProductImage) (*models.ProductImage, error)
	SetPrimary(ctx context.Context, productID, imageID int64) error
	Delete(ctx context.Context, id int64) (*models.ProductImage, error)
}

// Invalidator purges cached API responses and reports how many were
// removed. *cache.ResponseCache satisfies it, including a nil one.
type Invalidator interface {
	InvalidateAll(ctx context.Context) int
}

// ChangeLog records cache invalidation events. *store.CacheLogStore
// satisfies it.
type ChangeLog interface {
	Log(ctx context.Context, entityType string, entityID int64, action string)
}

// BlobStore holds image files. *storage.Client satisfies it.
type BlobStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
}

// Admin performs catalog writes.
type Admin struct {
	categories CategoryWriter
	products   ProductWriter
	images     ImageWriter
	cache      Invalidator
	log        ChangeLog
	blobs      BlobStore

	now func() time.Time
}

// New creates an Admin. cache and blobs may be nil.
func New(categories CategoryWriter, products ProductWriter, images ImageWriter, cache Invalidator, log ChangeLog, blobs BlobStore) *Admin {
	return &Admin{
		categories: categories,
		products:   products,
		images:     images,
		cache:      cache,
		log:        log,
		blobs:      blobs,
		now:        time.Now,
	}
}

// NewCategory describes a category to create. The slug is derived from
// Name unless Slug is set.
type NewCategory struct {
	Name        string
	Description string
	Language    string
	Slug        string
	ParentSlug  string
	SortOrder   int
	Inactive    bool
}

// CreateCategory inserts a category with a single translation.
func (a *Admin) CreateCategory(ctx context.Context, in NewCategory) (*models.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("category name is required")
	}
	if in.Language == "" {
		return nil, errors.New("category language is required")
	}
	s := in.Slug
	if s == "" {
		s = slug.Generate(in.Name)
	}
	if s == "" {
		return nil, fmt.Errorf("cannot derive a slug from %q", in.Name)
	}

	parentID, err := a.categoryParent(ctx, in.ParentSlug)
	if err != nil {
		return nil, err
	}

	c := &models.Category{
		Slug:      s,
		ParentID:  parentID,
		IsActive:  !in.Inactive,
		SortOrder: in.SortOrder,
	}
	c.SetTranslation(in.Language, models.CategoryTranslation{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	})

	created, err := a.categories.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create category %q: %w", s, err)
	}
	a.invalidate(ctx, "category", created.ID, "create")
	return created, nil
}

// ReparentCategory moves the category under parentSlug, or to the root
// when parentSlug is empty.
func (a *Admin) ReparentCategory(ctx context.Context, categorySlug, parentSlug string) error {
	id, err := a.categoryID(ctx, categorySlug)
	if err != nil {
		return err
	}
	parentID, err := a.categoryParent(ctx, parentSlug)
	if err != nil {
		return err
	}
	if err := a.categories.SetParent(ctx, id, parentID); err != nil {
		return fmt.Errorf("reparent category %q: %w", categorySlug, err)
	}
	a.invalidate(ctx, "category", id, "reparent")
	return nil
}

// DeleteCategory removes the category and its descendants.
func (a *Admin) DeleteCategory(ctx context.Context, categorySlug string) error {
	id, err := a.categoryID(ctx, categorySlug)
	if err != nil {
		return err
	}
	if err := a.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category %q: %w", categorySlug, err)
	}
	a.invalidate(ctx, "category", id, "delete")
	return nil
}

// UpdateStock sets the stock quantity of a product.
func (a *Admin) UpdateStock(ctx context.Context, sku string, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("stock quantity must not be negative, got %d", quantity)
	}
	id, err := a.productID(ctx, sku)
	if err != nil {
		return err
	}
	if err := a.products.UpdateStock(ctx, sku, quantity); err != nil {
		return err
	}
	a.invalidate(ctx, "product", id, "stock")
	return nil
}

// NewImage describes an image to attach to a product. Either Body (with
// Filename and Size) is uploaded to object storage, or Key names an object
// that already exists.
type NewImage struct {
	SKU       string
	Body      io.Reader
	Filename  string
	Size      int64
	Key       string
	AltText   string
	SortOrder int
	Primary   bool
}

// AddImage attaches an image to a product, uploading the file first when
// one is given. A primary image demotes the product's previous primary.
func (a *Admin) AddImage(ctx context.Context, in NewImage) (*models.ProductImage, error) {
	productID, err := a.productID(ctx, in.SKU)
	if err != nil {
		return nil, err
	}

	key := in.Key
	uploaded := false
	if in.Body != nil {
		if a.blobs == nil {
			return nil, ErrNoStorage
		}
		contentType := models.ImageContentType(in.Filename)
		if contentType == "" {
			return nil, fmt.Errorf("unsupported image type %q", in.Filename)
		}
		key = storage.ImageKey(a.now(), in.Filename)
		if err := a.blobs.Upload(ctx, key, contentType, in.Body, in.Size); err != nil {
			return nil, err
		}
		uploaded = true
	}
	if key == "" {
		return nil, errors.New("an image file or object key is required")
	}

	img, err := a.images.Create(ctx, &models.ProductImage{
		ProductID: productID,
		Image:     key,
		AltText:   in.AltText,
		SortOrder: in.SortOrder,
		IsPrimary: in.Primary,
	})
	if err != nil {
		if uploaded {
			a.removeBlob(ctx, key)
		}
		return nil, fmt.Errorf("add image to %s: %w", in.SKU, err)
	}
	a.invalidate(ctx, "product", productID, "image")
	return img, nil
}

// SetPrimaryImage makes imageID the primary image of the product.
func (a *Admin) SetPrimaryImage(ctx context.Context, sku string, imageID int64) error {
	productID, err := a.productID(ctx, sku)
	if err != nil {
		return err
	}
	if err := a.images.SetPrimary(ctx, productID, imageID); err != nil {
		return fmt.Errorf("set primary image of %s: %w", sku, err)
	}
	a.invalidate(ctx, "product", productID, "primary_image")
	return nil
}

// DeleteImage removes an image record and, when it lives in our bucket,
// its file.
func (a *Admin) DeleteImage(ctx context.Context, imageID int64) error {
	img, err := a.images.Delete(ctx, imageID)
	if err != nil {
		return err
	}
	if img == nil {
		return fmt.Errorf("delete image %d: %w", imageID, store.ErrNotFound)
	}
	if !isURL(img.Image) {
		a.removeBlob(ctx, img.Image)
	}
	a.invalidate(ctx, "product", img.ProductID, "image_delete")
	return nil
}

// invalidate purges every cached response and logs the event.
func (a *Admin) invalidate(ctx context.Context, entityType string, entityID int64, action string) {
	purged := 0
	if a.cache != nil {
		purged = a.cache.InvalidateAll(ctx)
	}
	if a.log != nil {
		a.log.Log(ctx, entityType, entityID, action)
	}
	slog.Info("catalog changed", "entity", entityType, "id", entityID, "action", action, "purged", purged)
}

// removeBlob deletes a stored file. Failures are only logged.
func (a *Admin) removeBlob(ctx context.Context, key string) {
	if a.blobs == nil {
		return
	}
	if err := a.blobs.Delete(ctx, key); err != nil {
		slog.Warn("image file delete failed", "key", key, "error", err)
	}
}

func (a *Admin) categoryID(ctx context.Context, categorySlug string) (int64, error) {
	id, err := a.categories.IDBySlug(ctx, categorySlug)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, fmt.Errorf("category %q: %w", categorySlug, store.ErrNotFound)
	}
	return id, nil
}

// categoryParent resolves an optional parent slug. Empty means root.
func (a *Admin) categoryParent(ctx context.Context, parentSlug string) (*int64, error) {
	if parentSlug == "" {
		return nil, nil
	}
	id, err := a.categoryID(ctx, parentSlug)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (a *Admin) productID(ctx context.Context, sku string) (int64, error) {
	id, err := a.products.IDBySKU(ctx, sku)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, fmt.Errorf("product %q: %w", sku, store.ErrNotFound)
	}
	return id, nil
}

func isURL(key string) bool {
	return strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://")
}
