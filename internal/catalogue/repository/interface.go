package repository

import (
	"context"

	"storefront-catalogue/internal/filter"
	"storefront-catalogue/internal/model"
)

// Repository is the composed interface for the catalogue's list sources.
type Repository interface {
	ProductRepository
	OrderRepository
	UserRepository
}

type ProductRepository interface {
	ListProducts(ctx context.Context, opt ListOptions) (filter.Page[model.Product], error)
}

type OrderRepository interface {
	ListOrders(ctx context.Context, opt ListOptions) (filter.Page[model.Order], error)
}

type UserRepository interface {
	ListUsers(ctx context.Context, opt ListOptions) (filter.Page[model.User], error)
}
