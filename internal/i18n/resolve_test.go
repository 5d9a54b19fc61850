// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package i18n

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var supported = []string{"en", "de", "fr"}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		header   string
		want     string
	}{
		{name: "explicit wins and is lower-cased", explicit: "DE", header: "fr-FR,en;q=0.9", want: "de"},
		{name: "unsupported explicit coerced to default", explicit: "jp", want: "en"},
		{name: "unsupported explicit does not fall through to header", explicit: "jp", header: "fr", want: "en"},
		{name: "header region stripped", header: "fr-FR,en;q=0.9", want: "fr"},
		{name: "only first header tag counts", header: "it,de;q=0.9", want: "en"},
		{name: "quality weights ignored", header: "fr;q=0.1,de;q=1.0", want: "fr"},
		{name: "header upper case normalised", header: "DE-AT", want: "de"},
		{name: "empty header uses default", header: "", want: "en"},
		{name: "malformed header taken literally", header: "de_DE", want: "en"},
		{name: "wildcard header", header: "*", want: "en"},
		{name: "nothing specified", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.explicit, tt.header, "en", supported))
		})
	}
}

func TestResolveSupportedIsCaseSensitive(t *testing.T) {
	// Configured codes are matched exactly; an upper-case configuration entry
	// never matches the lower-cased candidate.
	assert.Equal(t, "en", Resolve("DE", "", "en", []string{"en", "DE"}))
}

func TestFirstTag(t *testing.T) {
	assert.Equal(t, "", FirstTag(""))
	assert.Equal(t, "en", FirstTag("en-US,en;q=0.9,de;q=0.8"))
	assert.Equal(t, "de", FirstTag(" de ; q=0.5"))
	assert.Equal(t, "zh", FirstTag("zh-Hant-TW"))
	assert.Equal(t, "xx_yy", FirstTag("XX_YY"))
}

func newNegotiator() *Negotiator {
	return &Negotiator{Default: "en", Supported: supported}
}

func TestMiddlewareSetsContextAndHeader(t *testing.T) {
	var got string
	h := newNegotiator().Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/?lang=DE", nil)
	req.Header.Set("Accept-Language", "fr-FR,en;q=0.9")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "de", got)
	assert.Equal(t, "de", rr.Header().Get("Content-Language"))
}

func TestMiddlewareAlwaysEchoesDefault(t *testing.T) {
	h := newNegotiator().Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "en", rr.Header().Get("Content-Language"))
}

func TestMiddlewareFormParam(t *testing.T) {
	var got string
	h := newNegotiator().Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
	}))

	form := url.Values{"lang": {"FR"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "fr", got)

	// Query takes precedence over the form field.
	req = httptest.NewRequest(http.MethodPost, "/?lang=de", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "de", got)
}

func TestFromContextWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", FromContext(req.Context()))
}
