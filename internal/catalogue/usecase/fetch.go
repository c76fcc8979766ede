package usecase

import (
	"context"

	"storefront-catalogue/internal/catalogue"
	"storefront-catalogue/internal/catalogue/repository"
	"storefront-catalogue/internal/filter"
)

// fetch loads one server page for src and widens it to catalogue items.
func (uc *implUseCase) fetch(ctx context.Context, src catalogue.Source, q filter.Query) (filter.Page[catalogue.Item], error) {
	opt := repository.ListOptions{Resource: src.Resource, Query: q}

	switch src.Entity {
	case catalogue.EntityProduct:
		page, err := uc.repo.ListProducts(ctx, opt)
		return widen(page), err
	case catalogue.EntityOrder:
		page, err := uc.repo.ListOrders(ctx, opt)
		return widen(page), err
	case catalogue.EntityUser:
		page, err := uc.repo.ListUsers(ctx, opt)
		return widen(page), err
	}
	return filter.Page[catalogue.Item]{}, catalogue.ErrUnknownKind
}

func widen[T catalogue.Item](p filter.Page[T]) filter.Page[catalogue.Item] {
	items := make([]catalogue.Item, len(p.Items))
	for i, item := range p.Items {
		items[i] = item
	}
	return filter.Page[catalogue.Item]{Items: items, Pagination: p.Pagination}
}

// project refines a server page with the client-side fields of c and builds
// the status line. Refinement runs on every read, never on the stored page.
func project(src catalogue.Source, c filter.Criteria, q filter.Query, page filter.Page[catalogue.Item]) catalogue.ListResult {
	items := filter.Refine(page.Items, src.Schema, c)
	total := page.Pagination.Total
	if total < len(page.Items) {
		total = len(page.Items)
	}
	return catalogue.ListResult{
		Kind:         src.Kind,
		Criteria:     c,
		ActiveFields: src.Schema.ActiveFields(c),
		Query:        q,
		Items:        items,
		Pagination:   page.Pagination,
		Summary:      filter.Summarize(src.Schema, c, total, len(items)),
	}
}
