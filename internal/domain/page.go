package domain

import "math"

// PaginationParams carries page/limit values from the HTTP layer to the repo layer.
// Page is 1-indexed. Limit is capped at 100 by NewPaginationParams.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams builds PaginationParams from optional query values.
// Nil or non-positive values fall back to page 1 and limit 20. Page is capped
// so that Offset cannot overflow; such a page is past any stored data and
// comes back empty.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 20}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, 100)
	}
	if page != nil && *page >= 1 {
		p.Page = min(*page, MaxPage(p.Limit))
	}
	return p
}

// MaxPage is the largest page whose offset fits in an int for limit.
func MaxPage(limit int) int {
	return math.MaxInt / limit
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page is one page of items together with the total item count.
type Page[T any] struct {
	Items []T
	Total int64
	PaginationParams
}

// TotalPages returns the number of pages needed to show Total items.
func (p Page[T]) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}
