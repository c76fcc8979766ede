package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"storefront-catalogue/internal/catalogue"
	"storefront-catalogue/internal/filter"
	"storefront-catalogue/internal/notify"
)

// OpenSession creates a filter session, applies the initial filters and loads
// the first page. A failed first load still opens the session; the error is
// reported in the view.
func (uc *implUseCase) OpenSession(ctx context.Context, input catalogue.OpenSessionInput) (catalogue.SessionView, error) {
	src, err := catalogue.Lookup(input.Kind)
	if err != nil {
		return catalogue.SessionView{}, err
	}

	s := uc.newSession(ctx, uuid.NewString(), src, uc.limit(input.Limit))
	if err := uc.applyQuery(s.store, input.Filters); err != nil {
		s.close()
		return catalogue.SessionView{}, err
	}
	s.watch()

	uc.sessions.Add(s.id, s)
	uc.l.Infof(ctx, "uc.OpenSession: %s kind=%s", s.id, src.Kind)

	s.refetch(s.ctx)
	return s.view(), nil
}

// EditFilter validates every edit immediately and schedules the valid set for
// a debounced commit. One invalid edit rejects the whole request.
func (uc *implUseCase) EditFilter(ctx context.Context, input catalogue.EditFilterInput) (catalogue.SessionView, error) {
	if len(input.Edits) == 0 {
		return catalogue.SessionView{}, catalogue.ErrNoEdits
	}
	s, err := uc.session(input.SessionID)
	if err != nil {
		return catalogue.SessionView{}, err
	}

	edits := make([]filter.Edit, 0, len(input.Edits))
	for _, e := range input.Edits {
		v, err := uc.check(s, e)
		if err != nil {
			s.notify(notify.LevelWarning, e.Field, err.Error())
			uc.l.Warnf(ctx, "uc.EditFilter check: %v", err)
			return catalogue.SessionView{}, fmt.Errorf("%w: %s: %w", catalogue.ErrRejectedEdit, e.Field, err)
		}
		edits = append(edits, filter.Edit{Field: e.Field, Value: v})
	}

	for _, e := range edits {
		s.schedule(e.Field, e.Value)
	}
	return s.view(), nil
}

func (uc *implUseCase) check(s *session, e catalogue.FieldEdit) (filter.Value, error) {
	f, ok := s.src.Schema.Field(e.Field)
	if !ok {
		return filter.Value{}, fmt.Errorf("%w: %q", filter.ErrUnknownField, e.Field)
	}
	v, err := uc.parser.ParseValue(f, e.Values...)
	if err != nil {
		return filter.Value{}, err
	}
	if err := s.store.Check(e.Field, v); err != nil {
		return filter.Value{}, err
	}
	return v, nil
}

// SetPage moves to another page immediately. Pending edits stay pending.
func (uc *implUseCase) SetPage(ctx context.Context, input catalogue.SetPageInput) (catalogue.SessionView, error) {
	if input.Page < 1 {
		return catalogue.SessionView{}, catalogue.ErrInvalidPage
	}
	s, err := uc.session(input.SessionID)
	if err != nil {
		return catalogue.SessionView{}, err
	}

	s.setPage(input.Page)
	return s.view(), nil
}

// ResetFilters cancels pending edits and restores every default at once.
func (uc *implUseCase) ResetFilters(ctx context.Context, id string) (catalogue.SessionView, error) {
	s, err := uc.session(id)
	if err != nil {
		return catalogue.SessionView{}, err
	}

	s.reset()
	return s.view(), nil
}

func (uc *implUseCase) GetSession(ctx context.Context, id string) (catalogue.SessionView, error) {
	s, err := uc.session(id)
	if err != nil {
		return catalogue.SessionView{}, err
	}
	return s.view(), nil
}

func (uc *implUseCase) CloseSession(ctx context.Context, id string) error {
	if !uc.sessions.Remove(id) {
		return catalogue.ErrSessionNotFound
	}
	uc.l.Infof(ctx, "uc.CloseSession: %s", id)
	return nil
}

// session looks up a live session and renews its TTL.
func (uc *implUseCase) session(id string) (*session, error) {
	s, ok := uc.sessions.Get(id)
	if !ok {
		return nil, catalogue.ErrSessionNotFound
	}
	if s.isClosed() {
		return nil, catalogue.ErrSessionClosed
	}
	uc.sessions.Add(id, s)
	return s, nil
}
