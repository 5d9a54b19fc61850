// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"strings"

	"jewelrycatalog/internal/models"
)

// PathSeparator joins category names in a full path.
const PathSeparator = " > "

// Index maps category ids to categories for constant-time parent lookups.
type Index map[int64]*models.Category

// NewIndex builds an Index over cats. The index points into cats.
func NewIndex(cats []models.Category) Index {
	idx := make(Index, len(cats))
	for i := range cats {
		idx[cats[i].ID] = &cats[i]
	}
	return idx
}

// Ancestry returns c and its ancestors ordered root first. The walk stops
// at a missing parent or at a category already visited, so a corrupt
// hierarchy cannot loop.
func (idx Index) Ancestry(c *models.Category) []*models.Category {
	chain := []*models.Category{c}
	seen := map[int64]bool{c.ID: true}
	for cur := c; !cur.IsRoot(); {
		parent, ok := idx[*cur.ParentID]
		if !ok || seen[parent.ID] {
			break
		}
		seen[parent.ID] = true
		chain = append(chain, parent)
		cur = parent
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// FullPath returns the names of c's ancestry, root first, joined with
// PathSeparator. Names resolve in lang with a single fallback hop; an
// untranslated ancestor contributes an empty name.
func (idx Index) FullPath(c *models.Category, lang, fallback string) string {
	chain := idx.Ancestry(c)
	names := make([]string, len(chain))
	for i, cat := range chain {
		t, _ := cat.Translation(lang, fallback)
		names[i] = t.Name
	}
	return strings.Join(names, PathSeparator)
}
