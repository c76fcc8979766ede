package usecase

import (
	"context"
	"fmt"
	"net/url"

	"storefront-catalogue/internal/catalogue"
	"storefront-catalogue/internal/filter"
)

// Browse lists one page without keeping any session state.
func (uc *implUseCase) Browse(ctx context.Context, input catalogue.BrowseInput) (catalogue.BrowseOutput, error) {
	src, err := catalogue.Lookup(input.Kind)
	if err != nil {
		return catalogue.BrowseOutput{}, err
	}

	store := filter.NewStore(src.Schema)
	if err := uc.applyQuery(store, input.Filters); err != nil {
		return catalogue.BrowseOutput{}, err
	}

	pageNo := input.Page
	if pageNo < 1 {
		pageNo = 1
	}
	criteria := store.Snapshot()
	q := filter.Compose(src.Schema, criteria, pageNo, uc.limit(input.Limit))

	page, err := uc.fetch(ctx, src, q)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Browse fetch: %v", err)
		return catalogue.BrowseOutput{}, err
	}

	return catalogue.BrowseOutput{Result: project(src, criteria, q, page)}, nil
}

// applyQuery parses filter parameters and stores them. Any invalid value
// rejects the whole set.
func (uc *implUseCase) applyQuery(store *filter.Store, values url.Values) error {
	if len(values) == 0 {
		return nil
	}
	edits, err := uc.parser.ParseQuery(store.Schema(), values)
	if err != nil {
		return fmt.Errorf("%w: %w", catalogue.ErrRejectedEdit, err)
	}
	for _, e := range edits {
		if err := store.SetField(e.Field, e.Value); err != nil {
			return fmt.Errorf("%w: %s: %w", catalogue.ErrRejectedEdit, e.Field, err)
		}
	}
	return nil
}
