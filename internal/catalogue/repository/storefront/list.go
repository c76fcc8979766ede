package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront-catalogue/internal/catalogue/repository"
	"storefront-catalogue/internal/filter"
	"storefront-catalogue/internal/model"
	sf "storefront-catalogue/pkg/storefront"
)

func (r *implRepository) ListProducts(ctx context.Context, opt repository.ListOptions) (filter.Page[model.Product], error) {
	raw, err := r.fetch(ctx, opt)
	if err != nil {
		r.l.Errorf(ctx, "repository.ListProducts fetch: %v", err)
		return filter.Page[model.Product]{}, err
	}
	return decode[model.Product](raw)
}

func (r *implRepository) ListOrders(ctx context.Context, opt repository.ListOptions) (filter.Page[model.Order], error) {
	raw, err := r.fetch(ctx, opt)
	if err != nil {
		r.l.Errorf(ctx, "repository.ListOrders fetch: %v", err)
		return filter.Page[model.Order]{}, err
	}
	return decode[model.Order](raw)
}

func (r *implRepository) ListUsers(ctx context.Context, opt repository.ListOptions) (filter.Page[model.User], error) {
	raw, err := r.fetch(ctx, opt)
	if err != nil {
		r.l.Errorf(ctx, "repository.ListUsers fetch: %v", err)
		return filter.Page[model.User]{}, err
	}
	return decode[model.User](raw)
}

// fetch serves a page from the cache, or collapses identical concurrent
// requests into one upstream call. Each waiter still honours its own ctx.
func (r *implRepository) fetch(ctx context.Context, opt repository.ListOptions) (sf.RawPage, error) {
	key := opt.Resource + "?" + opt.Query.Key()
	if r.cache != nil {
		if page, ok := r.cache.Get(key); ok {
			r.rec.CacheHit(opt.Resource)
			return page, nil
		}
		r.rec.CacheMiss(opt.Resource)
	}

	ch := r.group.DoChan(key, func() (interface{}, error) {
		start := time.Now()
		page, err := r.client.FetchPage(context.WithoutCancel(ctx), opt.Resource, opt.Query.Values())
		r.rec.ObserveUpstream(opt.Resource, time.Since(start), err)
		if err != nil {
			return sf.RawPage{}, err
		}
		if r.cache != nil {
			r.cache.Add(key, page)
		}
		return page, nil
	})

	select {
	case <-ctx.Done():
		return sf.RawPage{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return sf.RawPage{}, fmt.Errorf("%w: %s: %w", repository.ErrFailedToList, opt.Resource, res.Err)
		}
		return res.Val.(sf.RawPage), nil
	}
}

func decode[T any](raw sf.RawPage) (filter.Page[T], error) {
	items := make([]T, 0, len(raw.Items))
	for i, msg := range raw.Items {
		var item T
		if err := json.Unmarshal(msg, &item); err != nil {
			return filter.Page[T]{}, fmt.Errorf("%w: item %d: %v", repository.ErrFailedToDecode, i, err)
		}
		items = append(items, item)
	}
	if raw.Pagination == nil {
		return filter.SinglePage(items), nil
	}
	return filter.Page[T]{
		Items: items,
		Pagination: filter.Pagination{
			Page:       raw.Pagination.Page,
			TotalPages: raw.Pagination.TotalPages,
			Limit:      raw.Pagination.Limit,
			Total:      raw.Pagination.Total,
		},
	}, nil
}
