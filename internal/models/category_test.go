// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "testing"

// TestCategoryTranslation verifies exact match, single-hop fallback, and the
// absent state for category translations.
func TestCategoryTranslation(t *testing.T) {
	c := &Category{}
	c.SetTranslation("en", CategoryTranslation{Name: "Rings"})
	c.SetTranslation("de", CategoryTranslation{Name: "Ringe"})

	tests := []struct {
		name     string
		lang     string
		fallback string
		wantName string
		wantOK   bool
	}{
		{name: "exact", lang: "de", fallback: "en", wantName: "Ringe", wantOK: true},
		{name: "fallback", lang: "fr", fallback: "en", wantName: "Rings", wantOK: true},
		{name: "no fallback configured", lang: "fr", fallback: "", wantName: "", wantOK: false},
		{name: "fallback also missing", lang: "fr", fallback: "it", wantName: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Translation(tt.lang, tt.fallback)
			if ok != tt.wantOK {
				t.Errorf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if got.Name != tt.wantName {
				t.Errorf("name: got %q, want %q", got.Name, tt.wantName)
			}
		})
	}
}

func TestCategoryIsRoot(t *testing.T) {
	parent := int64(3)
	if !(&Category{}).IsRoot() {
		t.Error("category without parent should be root")
	}
	if (&Category{ParentID: &parent}).IsRoot() {
		t.Error("category with parent should not be root")
	}
}
