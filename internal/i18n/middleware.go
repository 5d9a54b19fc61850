// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package i18n

import (
	"context"
	"net/http"
)

// ParamName is the query/form parameter that overrides negotiation.
const ParamName = "lang"

type contextKey string

const langKey contextKey = "lang"

// Negotiator holds the language settings shared by every request. Content
// fallback is applied later, when translations are resolved.
type Negotiator struct {
	Default   string
	Supported []string
}

// Middleware resolves the request language, stores it in the context, and
// sets Content-Language before the handler runs so the header is present
// on every response, including errors.
func (n *Negotiator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := Resolve(explicitParam(r), r.Header.Get("Accept-Language"), n.Default, n.Supported)

		w.Header().Set("Content-Language", lang)
		next.ServeHTTP(w, r.WithContext(WithLanguage(r.Context(), lang)))
	})
}

// explicitParam returns the lang override. The query string takes
// precedence over a submitted form field.
func explicitParam(r *http.Request) string {
	if v := r.URL.Query().Get(ParamName); v != "" {
		return v
	}
	if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
		return r.PostFormValue(ParamName)
	}
	return ""
}

// WithLanguage returns a copy of ctx carrying lang.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, langKey, lang)
}

// FromContext returns the language resolved for the request, or an empty
// string if the middleware did not run.
func FromContext(ctx context.Context) string {
	lang, _ := ctx.Value(langKey).(string)
	return lang
}
