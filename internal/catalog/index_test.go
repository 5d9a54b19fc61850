// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jewelrycatalog/internal/models"
)

func named(id int64, parent *int64, names map[string]string) models.Category {
	c := models.Category{ID: id, Slug: "c", ParentID: parent, IsActive: true}
	for lang, n := range names {
		c.SetTranslation(lang, models.CategoryTranslation{Name: n})
	}
	return c
}

func id(v int64) *int64 { return &v }

func TestIndexFullPath(t *testing.T) {
	cats := []models.Category{
		named(1, nil, map[string]string{"en": "A", "de": "A-de"}),
		named(2, id(1), map[string]string{"en": "B"}),
		named(3, id(2), map[string]string{"en": "C", "de": "C-de"}),
	}
	idx := NewIndex(cats)

	assert.Equal(t, "A > B > C", idx.FullPath(idx[3], "en", "en"))
	assert.Equal(t, "A-de > B > C-de", idx.FullPath(idx[3], "de", "en"))
	assert.Equal(t, "A", idx.FullPath(idx[1], "en", "en"), "root path is its own name")
	assert.Equal(t, " > ", idx.FullPath(idx[2], "fr", ""), "untranslated names are empty")
}

func TestIndexAncestry(t *testing.T) {
	t.Run("missing parent stops the walk", func(t *testing.T) {
		cats := []models.Category{named(5, id(99), map[string]string{"en": "Orphan"})}
		idx := NewIndex(cats)
		assert.Equal(t, "Orphan", idx.FullPath(idx[5], "en", "en"))
	})

	t.Run("cycle terminates", func(t *testing.T) {
		cats := []models.Category{
			named(1, id(2), map[string]string{"en": "X"}),
			named(2, id(1), map[string]string{"en": "Y"}),
		}
		idx := NewIndex(cats)
		chain := idx.Ancestry(idx[1])
		assert.Len(t, chain, 2)
		assert.Equal(t, int64(2), chain[0].ID)
		assert.Equal(t, int64(1), chain[1].ID)
	})
}

func TestPageResult(t *testing.T) {
	r := PageResult[int]{Page: Page{Number: 1, Size: 20}, Count: 45}
	assert.True(t, r.HasNext())
	assert.False(t, r.HasPrevious())
	assert.Equal(t, 0, r.Offset())

	r.Number = 3
	assert.False(t, r.HasNext())
	assert.True(t, r.HasPrevious())
	assert.Equal(t, 40, r.Offset())

	empty := PageResult[int]{Page: Page{Number: 1, Size: 20}}
	assert.False(t, empty.HasNext())
}
