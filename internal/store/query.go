// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access for categories, products, product
// images and the cache invalidation log. Each store wraps a *sql.DB and
// exposes typed query methods that take the request language explicitly.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrIntegrity wraps unique, foreign-key and check violations reported
	// by PostgreSQL.
	ErrIntegrity = errors.New("integrity violation")

	// ErrNotFound is returned by write operations whose target row is missing.
	// Read lookups return (nil, nil) instead.
	ErrNotFound = errors.New("not found")

	// ErrCycle is returned when a parent assignment would make a category
	// its own ancestor.
	ErrCycle = errors.New("category parent cycle")
)

// wrapErr annotates err with op, classifying constraint violations
// (SQLSTATE class 23) as ErrIntegrity.
func wrapErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return fmt.Errorf("%s: %w: %s", op, ErrIntegrity, pgErr.Message)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// whereBuilder accumulates SQL predicates and their positional arguments.
type whereBuilder struct {
	clauses []string
	args    []any
}

// arg registers v and returns its placeholder.
func (w *whereBuilder) arg(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *whereBuilder) and(clause string) {
	w.clauses = append(w.clauses, clause)
}

func (w *whereBuilder) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// orderBy translates client ordering fields ("price", "-created_at") into
// an ORDER BY clause. Unknown fields are ignored. The id tiebreaker keeps
// pagination stable.
func orderBy(fields []string, allowed map[string]string, fallback string, idColumn string) string {
	var parts []string
	for _, f := range fields {
		f = strings.TrimSpace(f)
		desc := strings.HasPrefix(f, "-")
		col, ok := allowed[strings.TrimPrefix(f, "-")]
		if !ok {
			continue
		}
		if desc {
			col += " DESC"
		}
		parts = append(parts, col)
	}
	if len(parts) == 0 {
		parts = append(parts, fallback)
	}
	return " ORDER BY " + strings.Join(append(parts, idColumn), ", ")
}

// likePattern builds a case-insensitive substring pattern for ILIKE.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

// searchTerms splits a free-text query on whitespace and commas.
func searchTerms(q string) []string {
	return strings.FieldsFunc(q, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
