// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Category represents a node of the catalog category tree. Names and
// descriptions live in per-language translation records.
type Category struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	ParentID  *int64    `json:"parent"`
	IsActive  bool      `json:"is_active"`
	SortOrder int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Translations map[string]CategoryTranslation `json:"translations"`

	// Virtual fields populated by store methods.
	ChildrenCount int `json:"children_count"`
	ProductsCount int `json:"products_count"`
}

// CategoryTranslation holds the language-variant fields of a category.
type CategoryTranslation struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
}

// Translation returns the translation for lang, or for fallback when lang
// has none. The second result is false when neither exists.
func (c *Category) Translation(lang, fallback string) (CategoryTranslation, bool) {
	return lookup(c.Translations, lang, fallback)
}

// SetTranslation stores t under lang, replacing any existing record.
func (c *Category) SetTranslation(lang string, t CategoryTranslation) {
	if c.Translations == nil {
		c.Translations = make(map[string]CategoryTranslation)
	}
	c.Translations[lang] = t
}

// IsRoot reports whether the category has no parent.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}
