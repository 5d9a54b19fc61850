// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"jewelrycatalog/internal/store"
)

// paramError reports a malformed query parameter. Its message is returned
// to the client verbatim.
type paramError struct {
	name string
	msg  string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%s: %s", e.name, e.msg)
}

// queryBool parses an optional boolean filter. Accepts true/false and 1/0
// in any case; an absent or empty parameter yields nil.
func queryBool(q url.Values, name string) (*bool, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	switch strings.ToLower(raw) {
	case "true", "1":
		v := true
		return &v, nil
	case "false", "0":
		v := false
		return &v, nil
	}
	return nil, &paramError{name, "must be true or false"}
}

// queryID parses an optional numeric id filter.
func queryID(q url.Values, name string) (*int64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 1 {
		return nil, &paramError{name, "must be a positive integer"}
	}
	return &v, nil
}

// queryPositiveInt parses an optional positive integer, returning def when
// the parameter is absent.
func queryPositiveInt(q url.Values, name string, def int) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, &paramError{name, "must be a positive integer"}
	}
	return v, nil
}

// queryDecimal parses an optional decimal amount.
func queryDecimal(q url.Values, name string) (decimal.NullDecimal, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, &paramError{name, "must be a number"}
	}
	return decimal.NewNullDecimal(v), nil
}

// queryOrdering splits a comma-separated ordering parameter.
func queryOrdering(q url.Values) []string {
	raw := strings.TrimSpace(q.Get("ordering"))
	if raw == "" {
		return nil
	}
	var fields []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// categoryFilter reads the category listing filters.
func categoryFilter(q url.Values) (store.CategoryFilter, error) {
	var f store.CategoryFilter
	var err error
	if f.ParentID, err = queryID(q, "parent"); err != nil {
		return f, err
	}
	if f.IsActive, err = queryBool(q, "is_active"); err != nil {
		return f, err
	}
	f.RootOnly = q.Get("root_only") == "true"
	return f, nil
}

// productFilter reads the product listing filters. Both category__slug
// and category name a category slug; when both are given both must match.
func productFilter(q url.Values) (store.ProductFilter, error) {
	var f store.ProductFilter
	var err error
	for _, name := range []string{"category__slug", "category"} {
		if v := strings.TrimSpace(q.Get(name)); v != "" {
			f.CategorySlugs = append(f.CategorySlugs, v)
		}
	}
	if f.IsFeatured, err = queryBool(q, "is_featured"); err != nil {
		return f, err
	}
	if f.IsActive, err = queryBool(q, "is_active"); err != nil {
		return f, err
	}
	if f.MinPrice, err = queryDecimal(q, "min_price"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = queryDecimal(q, "max_price"); err != nil {
		return f, err
	}
	f.InStock = q.Get("in_stock") == "true"
	f.Search = strings.TrimSpace(q.Get("search"))
	return f, nil
}
