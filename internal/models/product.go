// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable catalog item. The SKU is its public identifier.
type Product struct {
	ID            int64               `json:"id"`
	SKU           string              `json:"sku"`
	CategoryID    int64               `json:"category_id"`
	Price         decimal.Decimal     `json:"price"`
	DiscountPrice decimal.NullDecimal `json:"discount_price"`
	StockQuantity int                 `json:"stock_quantity"`
	IsActive      bool                `json:"is_active"`
	IsFeatured    bool                `json:"is_featured"`
	Weight        decimal.NullDecimal `json:"weight"`
	Material      string              `json:"material"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`

	Translations map[string]ProductTranslation `json:"translations"`

	// Populated by store methods that join related rows.
	Category *Category      `json:"category,omitempty"`
	Images   []ProductImage `json:"images,omitempty"`
}

// ProductTranslation holds the language-variant fields of a product.
type ProductTranslation struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description"`
	MetaTitle        string `json:"meta_title"`
	MetaDescription  string `json:"meta_description"`
}

// Translation returns the translation for lang, falling back once to fallback.
func (p *Product) Translation(lang, fallback string) (ProductTranslation, bool) {
	return lookup(p.Translations, lang, fallback)
}

// SetTranslation stores t under lang, replacing any existing record.
func (p *Product) SetTranslation(lang string, t ProductTranslation) {
	if p.Translations == nil {
		p.Translations = make(map[string]ProductTranslation)
	}
	p.Translations[lang] = t
}

// EffectivePrice returns the discount price when one is set, otherwise the
// list price.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice.Valid {
		return p.DiscountPrice.Decimal
	}
	return p.Price
}

// IsInStock reports whether at least one unit is available.
func (p *Product) IsInStock() bool {
	return p.StockQuantity > 0
}

// PrimaryImage returns the image flagged as primary, or the first image in
// display order when none is flagged. Images are expected to be sorted by
// (order, id). Returns nil when the product has no images.
func (p *Product) PrimaryImage() *ProductImage {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return &p.Images[i]
		}
	}
	if len(p.Images) > 0 {
		return &p.Images[0]
	}
	return nil
}
