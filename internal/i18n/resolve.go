// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package i18n resolves the catalog language for a request. The resolved
// code is carried in the request context and echoed in the
// Content-Language response header.
package i18n

import (
	"slices"
	"strings"
)

// Resolve picks the language code for a request. An explicit override wins
// over the first Accept-Language tag, which wins over defaultLang. The
// candidate must be an exact member of supported; anything else is coerced
// to defaultLang.
//
// Only the first header tag is consulted. Quality weights and later tags
// are ignored on purpose.
func Resolve(explicit, header, defaultLang string, supported []string) string {
	lang := candidate(explicit, header, defaultLang)
	if !slices.Contains(supported, lang) {
		return defaultLang
	}
	return lang
}

func candidate(explicit, header, defaultLang string) string {
	if explicit != "" {
		return strings.ToLower(explicit)
	}
	if tag := FirstTag(header); tag != "" {
		return tag
	}
	return defaultLang
}

// FirstTag extracts the primary subtag of the first language range in an
// Accept-Language value: "fr-FR,en;q=0.9" yields "fr". Returns an empty
// string for an empty header.
func FirstTag(header string) string {
	if header == "" {
		return ""
	}
	first, _, _ := strings.Cut(header, ",")
	first, _, _ = strings.Cut(first, ";")
	first = strings.ToLower(strings.TrimSpace(first))
	primary, _, _ := strings.Cut(first, "-")
	return primary
}
