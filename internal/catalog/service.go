// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog answers the read queries of the catalog API. It combines
// the category, product and image stores, resolves the category hierarchy
// and projects models into the list and detail shapes served as JSON.
// Every operation takes the request language explicitly.
package catalog

import (
	"context"
	"fmt"

	"jewelrycatalog/internal/models"
	"jewelrycatalog/internal/store"
)

// DefaultFeaturedLimit caps the featured listing when no limit is given.
const DefaultFeaturedLimit = 10

// CategoryReader is the subset of store.CategoryStore the service reads.
type CategoryReader interface {
	List(ctx context.Context, lang, fallback string, f store.CategoryFilter, ordering []string) ([]models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	FindByIDs(ctx context.Context, ids []int64) (map[int64]*models.Category, error)
	All(ctx context.Context) ([]models.Category, error)
	ActiveChildren(ctx context.Context, parentIDs []int64) ([]models.Category, error)
}

// ProductReader is the subset of store.ProductStore the service reads.
type ProductReader interface {
	List(ctx context.Context, lang, fallback string, f store.ProductFilter, ordering []string, limit, offset int) ([]models.Product, int, error)
	Featured(ctx context.Context, lang, fallback string, limit int) ([]models.Product, error)
	ByCategorySlug(ctx context.Context, lang, fallback, slug string) ([]models.Product, error)
	FindBySKU(ctx context.Context, sku string) (*models.Product, error)
}

// ImageReader is the subset of store.ImageStore the service reads.
type ImageReader interface {
	ListByProducts(ctx context.Context, productIDs []int64) (map[int64][]models.ProductImage, error)
}

// URLResolver maps a stored image key to a public URL.
type URLResolver interface {
	FileURL(key string) string
}

// Service implements the catalog read operations.
type Service struct {
	categories CategoryReader
	products   ProductReader
	images     ImageReader
	urls       URLResolver
	fallback   string
}

// NewService creates a Service. urls may be nil, in which case image keys
// are served as-is.
func NewService(categories CategoryReader, products ProductReader, images ImageReader, urls URLResolver, fallback string) *Service {
	return &Service{
		categories: categories,
		products:   products,
		images:     images,
		urls:       urls,
		fallback:   fallback,
	}
}

func (s *Service) projector(lang string) projector {
	p := projector{lang: lang, fallback: s.fallback}
	if s.urls != nil {
		p.imageURL = s.urls.FileURL
	}
	return p
}

// ListCategories returns active categories translated into lang (or the
// fallback), narrowed by f.
func (s *Service) ListCategories(ctx context.Context, lang string, f store.CategoryFilter, ordering []string) ([]CategoryListView, error) {
	cats, err := s.categories.List(ctx, lang, s.fallback, f, ordering)
	if err != nil {
		return nil, err
	}
	p := s.projector(lang)
	views := make([]CategoryListView, 0, len(cats))
	for i := range cats {
		views = append(views, p.categoryList(&cats[i]))
	}
	return views, nil
}

// CategoryBySlug returns the detail view of an active category, or nil if
// there is none with that slug.
func (s *Service) CategoryBySlug(ctx context.Context, lang, slug string) (*CategoryDetailView, error) {
	c, err := s.categories.FindBySlug(ctx, slug)
	if err != nil || c == nil {
		return nil, err
	}
	views, err := s.categoryDetails(ctx, lang, []models.Category{*c})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// CategoryTree returns every active category translated into lang (or the
// fallback) in detail shape, each with one level of active children.
func (s *Service) CategoryTree(ctx context.Context, lang string) ([]CategoryDetailView, error) {
	cats, err := s.categories.List(ctx, lang, s.fallback, store.CategoryFilter{}, nil)
	if err != nil {
		return nil, err
	}
	return s.categoryDetails(ctx, lang, cats)
}

// categoryDetails projects cats into detail views, loading their children
// and the hierarchy index once for the whole batch.
func (s *Service) categoryDetails(ctx context.Context, lang string, cats []models.Category) ([]CategoryDetailView, error) {
	views := make([]CategoryDetailView, 0, len(cats))
	if len(cats) == 0 {
		return views, nil
	}

	all, err := s.categories.All(ctx)
	if err != nil {
		return nil, err
	}
	idx := NewIndex(all)

	ids := make([]int64, len(cats))
	for i := range cats {
		ids[i] = cats[i].ID
	}
	children, err := s.categories.ActiveChildren(ctx, ids)
	if err != nil {
		return nil, err
	}
	byParent := make(map[int64][]models.Category)
	for _, ch := range children {
		byParent[*ch.ParentID] = append(byParent[*ch.ParentID], ch)
	}

	p := s.projector(lang)
	for i := range cats {
		c := &cats[i]
		views = append(views, p.categoryDetail(c, byParent[c.ID], idx.FullPath(c, lang, s.fallback)))
	}
	return views, nil
}

// ListProducts returns one page of active products translated into lang
// (or the fallback), narrowed by f. Requesting a page past the last one
// yields ErrInvalidPage; the first page is always valid.
func (s *Service) ListProducts(ctx context.Context, lang string, f store.ProductFilter, ordering []string, page Page) (*PageResult[ProductListView], error) {
	if page.Number < 1 {
		return nil, fmt.Errorf("page %d: %w", page.Number, ErrInvalidPage)
	}
	items, total, err := s.products.List(ctx, lang, s.fallback, f, ordering, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}
	if len(items) == 0 && page.Number > 1 {
		return nil, fmt.Errorf("page %d: %w", page.Number, ErrInvalidPage)
	}
	views, err := s.productList(ctx, lang, items)
	if err != nil {
		return nil, err
	}
	return &PageResult[ProductListView]{Page: page, Count: total, Results: views}, nil
}

// FeaturedProducts returns up to limit active, featured products.
// A non-positive limit selects DefaultFeaturedLimit.
func (s *Service) FeaturedProducts(ctx context.Context, lang string, limit int) ([]ProductListView, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	items, err := s.products.Featured(ctx, lang, s.fallback, limit)
	if err != nil {
		return nil, err
	}
	return s.productList(ctx, lang, items)
}

// ProductsByCategory returns every active product of the category with
// the given slug. An unknown slug yields an empty list.
func (s *Service) ProductsByCategory(ctx context.Context, lang, slug string) ([]ProductListView, error) {
	items, err := s.products.ByCategorySlug(ctx, lang, s.fallback, slug)
	if err != nil {
		return nil, err
	}
	return s.productList(ctx, lang, items)
}

// ProductBySKU returns the detail view of an active product, or nil if
// there is none with that SKU.
func (s *Service) ProductBySKU(ctx context.Context, lang, sku string) (*ProductDetailView, error) {
	prod, err := s.products.FindBySKU(ctx, sku)
	if err != nil || prod == nil {
		return nil, err
	}
	items := []models.Product{*prod}
	if err := s.attach(ctx, items); err != nil {
		return nil, err
	}
	prod = &items[0]

	var category *CategoryDetailView
	if prod.Category != nil {
		views, err := s.categoryDetails(ctx, lang, []models.Category{*prod.Category})
		if err != nil {
			return nil, err
		}
		category = &views[0]
	}

	view := s.projector(lang).productDetail(prod, category)
	return &view, nil
}

func (s *Service) productList(ctx context.Context, lang string, items []models.Product) ([]ProductListView, error) {
	if err := s.attach(ctx, items); err != nil {
		return nil, err
	}
	p := s.projector(lang)
	views := make([]ProductListView, 0, len(items))
	for i := range items {
		views = append(views, p.productList(&items[i]))
	}
	return views, nil
}

// attach loads the categories and images of items in one query each.
func (s *Service) attach(ctx context.Context, items []models.Product) error {
	if len(items) == 0 {
		return nil
	}
	productIDs := make([]int64, 0, len(items))
	seen := make(map[int64]bool)
	var categoryIDs []int64
	for _, p := range items {
		productIDs = append(productIDs, p.ID)
		if !seen[p.CategoryID] {
			seen[p.CategoryID] = true
			categoryIDs = append(categoryIDs, p.CategoryID)
		}
	}

	cats, err := s.categories.FindByIDs(ctx, categoryIDs)
	if err != nil {
		return err
	}
	images, err := s.images.ListByProducts(ctx, productIDs)
	if err != nil {
		return err
	}
	for i := range items {
		items[i].Category = cats[items[i].CategoryID]
		items[i].Images = images[items[i].ID]
	}
	return nil
}
