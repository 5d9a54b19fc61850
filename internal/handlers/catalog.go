// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the JSON handlers of the catalog read API.
// They parse query parameters, call the catalog service with the request
// language and serve responses through the Valkey response cache.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"jewelrycatalog/internal/cache"
	"jewelrycatalog/internal/catalog"
	"jewelrycatalog/internal/i18n"
	"jewelrycatalog/internal/store"
)

// CatalogService is the read side of the catalog as used by the handlers.
// It is implemented by *catalog.Service.
type CatalogService interface {
	ListCategories(ctx context.Context, lang string, f store.CategoryFilter, ordering []string) ([]catalog.CategoryListView, error)
	CategoryBySlug(ctx context.Context, lang, slug string) (*catalog.CategoryDetailView, error)
	CategoryTree(ctx context.Context, lang string) ([]catalog.CategoryDetailView, error)
	ListProducts(ctx context.Context, lang string, f store.ProductFilter, ordering []string, page catalog.Page) (*catalog.PageResult[catalog.ProductListView], error)
	FeaturedProducts(ctx context.Context, lang string, limit int) ([]catalog.ProductListView, error)
	ProductsByCategory(ctx context.Context, lang, slug string) ([]catalog.ProductListView, error)
	ProductBySKU(ctx context.Context, lang, sku string) (*catalog.ProductDetailView, error)
}

// Catalog groups the read-only JSON handlers of the catalog API. Successful
// responses are stored in the Valkey response cache, keyed by the resolved
// language and the absolute request URL.
type Catalog struct {
	svc        CatalogService
	cache      *cache.ResponseCache
	pageSize   int
	trustProxy bool
}

// NewCatalog creates a new Catalog handler group. responseCache may be nil
// to disable caching. X-Forwarded-Proto is honoured only when trustProxy
// is set.
func NewCatalog(svc CatalogService, responseCache *cache.ResponseCache, pageSize int, trustProxy bool) *Catalog {
	return &Catalog{svc: svc, cache: responseCache, pageSize: pageSize, trustProxy: trustProxy}
}

// errNotFound tells serve to answer 404.
var errNotFound = errors.New("not found")

// serve answers from the response cache when possible. On a miss it runs
// load, encodes the result and caches it. Parameter errors become 400,
// errNotFound and catalog.ErrInvalidPage become 404.
func (h *Catalog) serve(w http.ResponseWriter, r *http.Request, load func(ctx context.Context, lang string) (any, error)) {
	ctx := r.Context()
	lang := i18n.FromContext(ctx)
	key := h.cacheKey(r, lang)

	if cached, ok := h.cache.Get(ctx, key); ok {
		writeRaw(w, http.StatusOK, cached)
		return
	}

	data, err := load(ctx, lang)
	var perr *paramError
	switch {
	case err == nil:
	case errors.As(err, &perr):
		badRequest(w, perr.Error())
		return
	case errors.Is(err, errNotFound):
		notFound(w, "Not found.")
		return
	case errors.Is(err, catalog.ErrInvalidPage):
		notFound(w, "Invalid page.")
		return
	default:
		slog.Error("catalog request failed", "path", r.URL.Path, "lang", lang, "error", err)
		serverError(w)
		return
	}

	body, err := json.Marshal(data)
	if err != nil {
		slog.Error("encode response failed", "path", r.URL.Path, "error", err)
		serverError(w)
		return
	}
	h.cache.Set(ctx, key, body)
	writeRaw(w, http.StatusOK, body)
}

// ListCategories handles GET /api/v1/categories/.
func (h *Catalog) ListCategories(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context, lang string) (any, error) {
		q := r.URL.Query()
		f, err := categoryFilter(q)
		if err != nil {
			return nil, err
		}
		return h.svc.ListCategories(ctx, lang, f, queryOrdering(q))
	})
}

// CategoryTree handles GET /api/v1/categories/tree/.
func (h *Catalog) CategoryTree(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context, lang string) (any, error) {
		return h.svc.CategoryTree(ctx, lang)
	})
}

// Category handles GET /api/v1/categories/{slug}/.
func (h *Catalog) Category(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	h.serve(w, r, func(ctx context.Context, lang string) (any, error) {
		view, err := h.svc.CategoryBySlug(ctx, lang, slug)
		if err != nil {
			return nil, err
		}
		if view == nil {
			return nil, errNotFound
		}
		return view, nil
	})
}

// productPage is the paginated listing envelope.
type productPage struct {
	Count    int                       `json:"count"`
	Next     *string                   `json:"next"`
	Previous *string                   `json:"previous"`
	Results  []catalog.ProductListView `json:"results"`
}

// ListProducts handles GET /api/v1/products/.
func (h *Catalog) ListProducts(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context, lang string) (any, error) {
		q := r.URL.Query()
		f, err := productFilter(q)
		if err != nil {
			return nil, err
		}
		number, err := queryPositiveInt(q, "page", 1)
		if err != nil {
			return nil, err
		}

		result, err := h.svc.ListProducts(ctx, lang, f, queryOrdering(q), catalog.Page{Number: number, Size: h.pageSize})
		if err != nil {
			return nil, err
		}

		page := productPage{Count: result.Count, Results: result.Results}
		if result.HasNext() {
			u := h.pageURL(r, result.Number+1)
			page.Next = &u
		}
		if result.HasPrevious() {
			u := h.pageURL(r, result.Number-1)
			page.Previous = &u
		}
		return page, nil
	})
}

// FeaturedProducts handles GET /api/v1/products/featured/.
func (h *Catalog) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context, lang string) (any, error) {
		limit, err := queryPositiveInt(r.URL.Query(), "limit", catalog.DefaultFeaturedLimit)
		if err != nil {
			return nil, err
		}
		return h.svc.FeaturedProducts(ctx, lang, limit)
	})
}

// ProductsByCategory handles GET /api/v1/products/by_category/. The
// category_slug parameter is checked before anything else runs.
func (h *Catalog) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("category_slug")
	if slug == "" {
		badRequest(w, "category_slug parameter is required")
		return
	}
	h.serve(w, r, func(ctx context.Context, lang string) (any, error) {
		return h.svc.ProductsByCategory(ctx, lang, slug)
	})
}

// Product handles GET /api/v1/products/{sku}/.
func (h *Catalog) Product(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")
	h.serve(w, r, func(ctx context.Context, lang string) (any, error) {
		view, err := h.svc.ProductBySKU(ctx, lang, sku)
		if err != nil {
			return nil, err
		}
		if view == nil {
			return nil, errNotFound
		}
		return view, nil
	})
}

// scheme returns the scheme the client used to reach the API.
func (h *Catalog) scheme(r *http.Request) string {
	if h.trustProxy {
		if p := r.Header.Get("X-Forwarded-Proto"); p == "http" || p == "https" {
			return p
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// cacheKey covers everything that shapes a response body, including the
// scheme and host embedded in pagination links.
func (h *Catalog) cacheKey(r *http.Request, lang string) string {
	return cache.Key(lang, h.scheme(r)+"://"+r.Host+r.URL.RequestURI())
}

// pageURL returns the absolute URL of the given page of the current
// listing. Page 1 drops the page parameter.
func (h *Catalog) pageURL(r *http.Request, page int) string {
	u := *r.URL
	q := u.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	u.Scheme = h.scheme(r)
	u.Host = r.Host
	return u.String()
}
