package filter

import "math"

// Pagination is the position of a page within a list.
type Pagination struct {
	Page       int
	TotalPages int
	Limit      int
	Total      int
}

// NewPagination computes pagination metadata from a total item count.
func NewPagination(page, limit, total int) Pagination {
	if limit <= 0 {
		limit = 1
	}
	if page <= 0 {
		page = 1
	}
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	if totalPages < 1 {
		totalPages = 1
	}
	return Pagination{Page: page, TotalPages: totalPages, Limit: limit, Total: total}
}

// Page is one fetched page of results. A new fetch replaces it wholesale.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

// SinglePage wraps a response that carried no pagination as the only page.
func SinglePage[T any](items []T) Page[T] {
	return Page[T]{
		Items:      items,
		Pagination: Pagination{Page: 1, TotalPages: 1, Limit: len(items), Total: len(items)},
	}
}
