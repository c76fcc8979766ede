package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefront-catalogue/internal/catalogue/repository"
	"storefront-catalogue/internal/filter"
	"storefront-catalogue/internal/model"
	"storefront-catalogue/internal/notify"
	"storefront-catalogue/pkg/datemath"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeRepo records every list call. Hooks replace the default responses.
type fakeRepo struct {
	mu    sync.Mutex
	calls []repository.ListOptions

	products func(ctx context.Context, opt repository.ListOptions) (filter.Page[model.Product], error)
	orders   func(ctx context.Context, opt repository.ListOptions) (filter.Page[model.Order], error)
}

func (r *fakeRepo) record(opt repository.ListOptions) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, opt)
}

func (r *fakeRepo) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *fakeRepo) lastCall() repository.ListOptions {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[len(r.calls)-1]
}

func (r *fakeRepo) ListProducts(ctx context.Context, opt repository.ListOptions) (filter.Page[model.Product], error) {
	r.record(opt)
	if r.products != nil {
		return r.products(ctx, opt)
	}
	return filter.Page[model.Product]{
		Items:      groceries(),
		Pagination: filter.NewPagination(opt.Query.Page, opt.Query.Limit, 24),
	}, nil
}

func (r *fakeRepo) ListOrders(ctx context.Context, opt repository.ListOptions) (filter.Page[model.Order], error) {
	r.record(opt)
	if r.orders != nil {
		return r.orders(ctx, opt)
	}
	return filter.SinglePage([]model.Order{{ID: "o1", OrderNumber: "ORD-1"}}), nil
}

func (r *fakeRepo) ListUsers(ctx context.Context, opt repository.ListOptions) (filter.Page[model.User], error) {
	r.record(opt)
	return filter.SinglePage([]model.User{{ID: "u1", Name: "Ana", Role: "admin"}}), nil
}

func groceries() []model.Product {
	return []model.Product{
		{ID: "p1", Name: "Whole Milk", Category: model.Category{ID: "c1", Name: "Dairy"}, Price: 2.5, Stock: 10},
		{ID: "p2", Name: "Carrots", Description: "Fresh veg", Category: model.Category{ID: "c2", Name: "Vegetables"}, Price: 1.2, Stock: 5},
		{ID: "p3", Name: "Oat Drink", Description: "Milk alternative", Category: model.Category{ID: "c1", Name: "Dairy"}, Price: 3.1},
	}
}

func newTestUseCase(t *testing.T, repo *fakeRepo, cfg Config) (*implUseCase, *notify.Buffer) {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath: %v", err)
	}
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	sink := notify.NewBuffer(50)
	uc := New(&mockLogger{}, repo, filter.NewParser(dates, func() time.Time { return base }), sink, cfg)
	return uc, sink
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func ids(items []string) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, id := range items {
		out[id] = true
	}
	return out
}
