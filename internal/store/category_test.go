// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categorySlugs(t *testing.T, s *CategoryStore, lang string, f CategoryFilter, ordering ...string) []string {
	t.Helper()
	items, err := s.List(context.Background(), lang, "en", f, ordering)
	require.NoError(t, err)
	var slugs []string
	for _, c := range items {
		slugs = append(slugs, c.Slug)
	}
	return slugs
}

func TestCategoryStoreListActiveInLanguage(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	root := createCategory(t, db, categoryFixture{Names: map[string]string{"en": "Root"}})
	german := createCategory(t, db, categoryFixture{Parent: &root.ID, Order: 1, Names: map[string]string{"de": "Ringe"}})
	french := createCategory(t, db, categoryFixture{Parent: &root.ID, Order: 2, Names: map[string]string{"fr": "Bagues"}})
	english := createCategory(t, db, categoryFixture{Parent: &root.ID, Order: 3, Names: map[string]string{"en": "Rings"}})
	createCategory(t, db, categoryFixture{Parent: &root.ID, Inactive: true, Names: map[string]string{"de": "Alt"}})

	f := CategoryFilter{ParentID: &root.ID}

	// German matches directly, English through the fallback.
	assert.Equal(t, []string{german.Slug, english.Slug}, categorySlugs(t, s, "de", f))
	assert.Equal(t, []string{french.Slug, english.Slug}, categorySlugs(t, s, "fr", f))
	assert.Equal(t, []string{english.Slug}, categorySlugs(t, s, "en", f))
}

func TestCategoryStoreListOrderingAndFilters(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	root := createCategory(t, db, categoryFixture{Names: map[string]string{"en": "Root"}})
	a := createCategory(t, db, categoryFixture{Parent: &root.ID, Order: 2, Names: map[string]string{"en": "A"}})
	b := createCategory(t, db, categoryFixture{Parent: &root.ID, Order: 1, Names: map[string]string{"en": "B"}})

	f := CategoryFilter{ParentID: &root.ID}
	assert.Equal(t, []string{b.Slug, a.Slug}, categorySlugs(t, s, "en", f))
	assert.Equal(t, []string{a.Slug, b.Slug}, categorySlugs(t, s, "en", f, "-order"))
	assert.Equal(t, []string{b.Slug, a.Slug}, categorySlugs(t, s, "en", f, "unknown"))

	f.IsActive = ptr(false)
	assert.Empty(t, categorySlugs(t, s, "en", f))

	roots := categorySlugs(t, s, "en", CategoryFilter{RootOnly: true})
	assert.Contains(t, roots, root.Slug)
	assert.NotContains(t, roots, a.Slug)
}

func TestCategoryStoreCounts(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	root := createCategory(t, db, categoryFixture{Names: map[string]string{"en": "Root"}})
	createCategory(t, db, categoryFixture{Parent: &root.ID, Names: map[string]string{"en": "Active"}})
	createCategory(t, db, categoryFixture{Parent: &root.ID, Inactive: true, Names: map[string]string{"en": "Hidden"}})
	createProduct(t, db, productFixture{CategoryID: root.ID, Names: map[string]string{"en": "Ring"}})
	createProduct(t, db, productFixture{CategoryID: root.ID, Inactive: true, Names: map[string]string{"en": "Old"}})

	got, err := s.FindBySlug(context.Background(), root.Slug)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.ChildrenCount)
	assert.Equal(t, 1, got.ProductsCount)
	assert.Equal(t, "Root", got.Translations["en"].Name)
}

func TestCategoryStoreFindBySlug(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)
	ctx := context.Background()

	inactive := createCategory(t, db, categoryFixture{Inactive: true, Names: map[string]string{"en": "Hidden"}})
	untranslated := createCategory(t, db, categoryFixture{})

	got, err := s.FindBySlug(ctx, inactive.Slug)
	require.NoError(t, err)
	assert.Nil(t, got, "inactive category should not be found")

	got, err = s.FindBySlug(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = s.FindBySlug(ctx, untranslated.Slug)
	require.NoError(t, err)
	require.NotNil(t, got, "detail lookup does not require a translation")
	assert.Empty(t, got.Translations)
}

func TestCategoryStoreSetParentRejectsCycles(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)
	ctx := context.Background()

	a := createCategory(t, db, categoryFixture{Names: map[string]string{"en": "A"}})
	b := createCategory(t, db, categoryFixture{Parent: &a.ID, Names: map[string]string{"en": "B"}})
	c := createCategory(t, db, categoryFixture{Parent: &b.ID, Names: map[string]string{"en": "C"}})

	assert.ErrorIs(t, s.SetParent(ctx, a.ID, &c.ID), ErrCycle)
	assert.ErrorIs(t, s.SetParent(ctx, a.ID, &a.ID), ErrCycle)
	assert.ErrorIs(t, s.SetParent(ctx, 0, &a.ID), ErrNotFound)

	require.NoError(t, s.SetParent(ctx, c.ID, nil))
	require.NoError(t, s.SetParent(ctx, a.ID, &c.ID))

	all, err := s.FindByIDs(ctx, []int64{a.ID})
	require.NoError(t, err)
	require.NotNil(t, all[a.ID].ParentID)
	assert.Equal(t, c.ID, *all[a.ID].ParentID)
}

func TestCategoryStoreDelete(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)
	ctx := context.Background()

	t.Run("cascades to children", func(t *testing.T) {
		parent := createCategory(t, db, categoryFixture{Names: map[string]string{"en": "P"}})
		child := createCategory(t, db, categoryFixture{Parent: &parent.ID, Names: map[string]string{"en": "C"}})

		require.NoError(t, s.Delete(ctx, parent.ID))
		id, err := s.IDBySlug(ctx, child.Slug)
		require.NoError(t, err)
		assert.Zero(t, id)
	})

	t.Run("refuses categories with products", func(t *testing.T) {
		cat := createCategory(t, db, categoryFixture{Names: map[string]string{"en": "Rings"}})
		createProduct(t, db, productFixture{CategoryID: cat.ID, Names: map[string]string{"en": "Ring"}})

		assert.ErrorIs(t, s.Delete(ctx, cat.ID), ErrIntegrity)
	})

	t.Run("missing", func(t *testing.T) {
		assert.ErrorIs(t, s.Delete(ctx, 0), ErrNotFound)
	})
}

func TestCategoryStoreCreateDuplicateSlug(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	existing := createCategory(t, db, categoryFixture{Names: map[string]string{"en": "Rings"}})
	dup := *existing
	dup.ID = 0

	_, err := s.Create(context.Background(), &dup)
	assert.ErrorIs(t, err, ErrIntegrity)
}

func TestCategoryStoreActiveChildren(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	root := createCategory(t, db, categoryFixture{Names: map[string]string{"en": "Root"}})
	second := createCategory(t, db, categoryFixture{Parent: &root.ID, Order: 2, Names: map[string]string{"fr": "Deux"}})
	first := createCategory(t, db, categoryFixture{Parent: &root.ID, Order: 1, Names: map[string]string{"en": "One"}})
	createCategory(t, db, categoryFixture{Parent: &root.ID, Inactive: true, Names: map[string]string{"en": "Off"}})

	children, err := s.ActiveChildren(context.Background(), []int64{root.ID})
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, first.Slug, children[0].Slug)
	assert.Equal(t, second.Slug, children[1].Slug)
	assert.Equal(t, "Deux", children[1].Translations["fr"].Name)
}
