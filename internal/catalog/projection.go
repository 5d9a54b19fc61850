// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"jewelrycatalog/internal/models"
)

// Every view carries the full translation bundle plus the fields resolved
// for the request language. The embedded translation struct flattens into
// the top-level JSON object.

// CategoryListView is the compact category shape used in listings.
type CategoryListView struct {
	ID           int64                                 `json:"id"`
	Slug         string                                `json:"slug"`
	Translations map[string]models.CategoryTranslation `json:"translations"`
	models.CategoryTranslation
	Parent        *int64 `json:"parent"`
	IsActive      bool   `json:"is_active"`
	Order         int    `json:"order"`
	ChildrenCount int    `json:"children_count"`
	ProductsCount int    `json:"products_count"`
}

// CategoryDetailView adds active children and the ancestry path.
type CategoryDetailView struct {
	ID           int64                                 `json:"id"`
	Slug         string                                `json:"slug"`
	Translations map[string]models.CategoryTranslation `json:"translations"`
	models.CategoryTranslation
	Parent    *int64             `json:"parent"`
	IsActive  bool               `json:"is_active"`
	Order     int                `json:"order"`
	Children  []CategoryListView `json:"children"`
	FullPath  string             `json:"full_path"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ImageView is a product image with its public URL.
type ImageView struct {
	ID        int64  `json:"id"`
	Image     string `json:"image"`
	AltText   string `json:"alt_text"`
	Order     int    `json:"order"`
	IsPrimary bool   `json:"is_primary"`
}

// ProductListView is the compact product shape used in listings.
type ProductListView struct {
	ID           int64                                `json:"id"`
	SKU          string                               `json:"sku"`
	Translations map[string]models.ProductTranslation `json:"translations"`
	models.ProductTranslation
	Category       *CategoryListView `json:"category"`
	Price          string            `json:"price"`
	DiscountPrice  *string           `json:"discount_price"`
	EffectivePrice string            `json:"effective_price"`
	StockQuantity  int               `json:"stock_quantity"`
	IsInStock      bool              `json:"is_in_stock"`
	IsFeatured     bool              `json:"is_featured"`
	PrimaryImage   *ImageView        `json:"primary_image"`
	Material       string            `json:"material"`
	Weight         *string           `json:"weight"`
}

// ProductDetailView adds the category detail, every image and timestamps.
type ProductDetailView struct {
	ID           int64                                `json:"id"`
	SKU          string                               `json:"sku"`
	Translations map[string]models.ProductTranslation `json:"translations"`
	models.ProductTranslation
	Category       *CategoryDetailView `json:"category"`
	Price          string              `json:"price"`
	DiscountPrice  *string             `json:"discount_price"`
	EffectivePrice string              `json:"effective_price"`
	StockQuantity  int                 `json:"stock_quantity"`
	IsInStock      bool                `json:"is_in_stock"`
	IsFeatured     bool                `json:"is_featured"`
	Images         []ImageView         `json:"images"`
	Material       string              `json:"material"`
	Weight         *string             `json:"weight"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// money renders an amount with exactly two decimal places.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func nullMoney(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := money(d.Decimal)
	return &s
}

func orEmpty[T any](m map[string]T) map[string]T {
	if m == nil {
		return map[string]T{}
	}
	return m
}

// projector turns models into views for one request language.
type projector struct {
	lang     string
	fallback string
	imageURL func(key string) string
}

func (p projector) categoryList(c *models.Category) CategoryListView {
	t, _ := c.Translation(p.lang, p.fallback)
	return CategoryListView{
		ID:                  c.ID,
		Slug:                c.Slug,
		Translations:        orEmpty(c.Translations),
		CategoryTranslation: t,
		Parent:              c.ParentID,
		IsActive:            c.IsActive,
		Order:               c.SortOrder,
		ChildrenCount:       c.ChildrenCount,
		ProductsCount:       c.ProductsCount,
	}
}

func (p projector) categoryDetail(c *models.Category, children []models.Category, fullPath string) CategoryDetailView {
	t, _ := c.Translation(p.lang, p.fallback)
	kids := make([]CategoryListView, 0, len(children))
	for i := range children {
		kids = append(kids, p.categoryList(&children[i]))
	}
	return CategoryDetailView{
		ID:                  c.ID,
		Slug:                c.Slug,
		Translations:        orEmpty(c.Translations),
		CategoryTranslation: t,
		Parent:              c.ParentID,
		IsActive:            c.IsActive,
		Order:               c.SortOrder,
		Children:            kids,
		FullPath:            fullPath,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func (p projector) image(img *models.ProductImage) ImageView {
	url := img.Image
	if p.imageURL != nil {
		url = p.imageURL(img.Image)
	}
	return ImageView{
		ID:        img.ID,
		Image:     url,
		AltText:   img.AltText,
		Order:     img.SortOrder,
		IsPrimary: img.IsPrimary,
	}
}

func (p projector) productList(prod *models.Product) ProductListView {
	t, _ := prod.Translation(p.lang, p.fallback)
	v := ProductListView{
		ID:                 prod.ID,
		SKU:                prod.SKU,
		Translations:       orEmpty(prod.Translations),
		ProductTranslation: t,
		Price:              money(prod.Price),
		DiscountPrice:      nullMoney(prod.DiscountPrice),
		EffectivePrice:     money(prod.EffectivePrice()),
		StockQuantity:      prod.StockQuantity,
		IsInStock:          prod.IsInStock(),
		IsFeatured:         prod.IsFeatured,
		Material:           prod.Material,
		Weight:             nullMoney(prod.Weight),
	}
	if prod.Category != nil {
		cv := p.categoryList(prod.Category)
		v.Category = &cv
	}
	if img := prod.PrimaryImage(); img != nil {
		iv := p.image(img)
		v.PrimaryImage = &iv
	}
	return v
}

func (p projector) productDetail(prod *models.Product, category *CategoryDetailView) ProductDetailView {
	t, _ := prod.Translation(p.lang, p.fallback)
	images := make([]ImageView, 0, len(prod.Images))
	for i := range prod.Images {
		images = append(images, p.image(&prod.Images[i]))
	}
	return ProductDetailView{
		ID:                 prod.ID,
		SKU:                prod.SKU,
		Translations:       orEmpty(prod.Translations),
		ProductTranslation: t,
		Category:           category,
		Price:              money(prod.Price),
		DiscountPrice:      nullMoney(prod.DiscountPrice),
		EffectivePrice:     money(prod.EffectivePrice()),
		StockQuantity:      prod.StockQuantity,
		IsInStock:          prod.IsInStock(),
		IsFeatured:         prod.IsFeatured,
		Images:             images,
		Material:           prod.Material,
		Weight:             nullMoney(prod.Weight),
		CreatedAt:          prod.CreatedAt,
		UpdatedAt:          prod.UpdatedAt,
	}
}
