// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the catalog entities that map to database tables,
// their per-language translation records and the derived values computed
// from them.
package models

// lookup resolves a translation with a single fallback hop. A missing
// translation is a valid state and yields the zero value.
func lookup[T any](translations map[string]T, lang, fallback string) (T, bool) {
	if t, ok := translations[lang]; ok {
		return t, true
	}
	if fallback != "" && fallback != lang {
		if t, ok := translations[fallback]; ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}
