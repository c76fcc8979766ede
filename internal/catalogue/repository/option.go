package repository

import "storefront-catalogue/internal/filter"

// ListOptions holds the upstream resource and the composed sparse query.
type ListOptions struct {
	Resource string
	Query    filter.Query
}
