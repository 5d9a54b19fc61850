// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import "errors"

// ErrInvalidPage is returned when a requested page lies past the last page.
var ErrInvalidPage = errors.New("invalid page")

// Page selects one page of a listing. Number is 1-based.
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of rows preceding the page.
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

// PageResult is one page of results together with the total match count.
type PageResult[T any] struct {
	Page
	Count   int
	Results []T
}

// HasNext reports whether another page follows.
func (r PageResult[T]) HasNext() bool {
	return r.Number*r.Size < r.Count
}

// HasPrevious reports whether a page precedes this one.
func (r PageResult[T]) HasPrevious() bool {
	return r.Number > 1
}
