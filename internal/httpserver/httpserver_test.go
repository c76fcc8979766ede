package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront-catalogue/internal/catalogue"
	"storefront-catalogue/internal/middleware"
	"storefront-catalogue/internal/observability"
	"storefront-catalogue/pkg/log"
	"storefront-catalogue/pkg/response"
)

type nopUseCase struct{}

func (nopUseCase) Browse(ctx context.Context, input catalogue.BrowseInput) (catalogue.BrowseOutput, error) {
	return catalogue.BrowseOutput{Result: catalogue.ListResult{Kind: input.Kind}}, nil
}
func (nopUseCase) OpenSession(ctx context.Context, input catalogue.OpenSessionInput) (catalogue.SessionView, error) {
	return catalogue.SessionView{}, nil
}
func (nopUseCase) EditFilter(ctx context.Context, input catalogue.EditFilterInput) (catalogue.SessionView, error) {
	return catalogue.SessionView{}, nil
}
func (nopUseCase) SetPage(ctx context.Context, input catalogue.SetPageInput) (catalogue.SessionView, error) {
	return catalogue.SessionView{}, nil
}
func (nopUseCase) ResetFilters(ctx context.Context, id string) (catalogue.SessionView, error) {
	return catalogue.SessionView{}, nil
}
func (nopUseCase) GetSession(ctx context.Context, id string) (catalogue.SessionView, error) {
	return catalogue.SessionView{}, catalogue.ErrSessionNotFound
}
func (nopUseCase) CloseSession(ctx context.Context, id string) error { return nil }

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	srv, err := New(l, Config{
		Port:        8080,
		Mode:        "test",
		Environment: "production",
		Middleware:  middleware.New(l, middleware.Config{}),
		Metrics:     observability.NewMetrics(),
		CatalogueUC: nopUseCase{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestNewValidation(t *testing.T) {
	l := log.NewNop()
	tests := []struct {
		name string
		cfg  Config
	}{
		{"Missing port", Config{Mode: "test", CatalogueUC: nopUseCase{}}},
		{"Missing mode", Config{Port: 8080, CatalogueUC: nopUseCase{}}},
		{"Missing usecase", Config{Port: 8080, Mode: "test"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(l, tc.cfg); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			if w.Header().Get(middleware.HeaderRequestID) == "" {
				t.Errorf("expected a request id header")
			}

			var resp response.Resp
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			data := resp.Data.(map[string]interface{})
			if data["service"] != ServiceName {
				t.Errorf("unexpected service %v", data["service"])
			}
		})
	}
}

func TestCatalogueRoutesMounted(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalogue/lists/products", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalogue/sessions/unknown", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestMetricsRoute(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalogue/lists/products", nil))

	w = httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `route="/api/v1/catalogue/lists/:kind"`) {
		t.Errorf("expected the browse route in metrics output")
	}
}
