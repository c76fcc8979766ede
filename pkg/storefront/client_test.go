package storefront_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"storefront-catalogue/pkg/storefront"
)

func TestFetchPage(t *testing.T) {
	var lastQuery url.Values
	var lastAuth string

	mux := http.NewServeMux()
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		lastQuery = r.URL.Query()
		lastAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"id":"p1"},{"id":"p2"}],"pagination":{"page":2,"totalPages":5,"limit":2,"total":10}}`))
	})
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(` [{"id":"c1"},{"id":"c2"},{"id":"c3"}]`))
	})
	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"id":"o1"}]}`))
	})
	mux.HandleFunc("/api/users", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("maintenance"))
	})
	mux.HandleFunc("/api/broken", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":`))
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := storefront.NewClient(context.Background(), storefront.Config{
		BaseURL:     ts.URL + "/",
		AccessToken: "test-token",
		Timeout:     time.Second,
	})
	ctx := context.Background()

	t.Run("Envelope", func(t *testing.T) {
		page, err := client.FetchPage(ctx, "products", url.Values{"searchQuery": {"milk"}, "page": {"2"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(page.Items))
		}
		want := storefront.Pagination{Page: 2, TotalPages: 5, Limit: 2, Total: 10}
		if page.Pagination == nil || *page.Pagination != want {
			t.Errorf("expected %+v, got %+v", want, page.Pagination)
		}
		if lastQuery.Get("searchQuery") != "milk" {
			t.Errorf("query not forwarded: %v", lastQuery)
		}
		if lastAuth != "Bearer test-token" {
			t.Errorf("unexpected Authorization header %q", lastAuth)
		}
	})

	t.Run("Bare array is a single page", func(t *testing.T) {
		page, err := client.FetchPage(ctx, "categories", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Pagination != nil || len(page.Items) != 3 {
			t.Errorf("expected 3 items without pagination, got %+v", page)
		}
	})

	t.Run("Envelope without pagination", func(t *testing.T) {
		page, err := client.FetchPage(ctx, "orders", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Pagination != nil || len(page.Items) != 1 {
			t.Errorf("unexpected page %+v", page)
		}
	})

	t.Run("Status error", func(t *testing.T) {
		_, err := client.FetchPage(ctx, "users", nil)
		if !errors.Is(err, storefront.ErrUpstream) {
			t.Fatalf("expected ErrUpstream, got %v", err)
		}
		var statusErr *storefront.StatusError
		if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("expected StatusError 503, got %v", err)
		}
	})

	t.Run("Malformed body", func(t *testing.T) {
		if _, err := client.FetchPage(ctx, "broken", nil); err == nil {
			t.Errorf("expected decode error")
		}
	})

	t.Run("Server Down", func(t *testing.T) {
		badClient := storefront.NewClient(ctx, storefront.Config{BaseURL: "http://localhost:59999", Timeout: time.Second})
		if _, err := badClient.FetchPage(ctx, "products", nil); err == nil {
			t.Errorf("expected connection refused error")
		}
	})
}

func TestFetchPage_ClientCredentials(t *testing.T) {
	var tokenCalls int
	var gotAuth string

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "cc-token",
			"token_type":   "bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	ctx := context.Background()
	client := storefront.NewClient(ctx, storefront.Config{
		BaseURL: ts.URL,
		Timeout: time.Second,
		OAuth: &storefront.OAuthConfig{
			ClientID:     "catalogue",
			ClientSecret: "secret",
			TokenURL:     ts.URL + "/oauth/token",
		},
	})

	for i := 0; i < 2; i++ {
		if _, err := client.FetchPage(ctx, "orders", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if gotAuth != "Bearer cc-token" {
		t.Errorf("expected client-credentials token, got %q", gotAuth)
	}
	if tokenCalls != 1 {
		t.Errorf("expected the token to be cached, got %d token calls", tokenCalls)
	}
}

func TestFetchPage_RateLimiterHonoursContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	client := storefront.NewClient(context.Background(), storefront.Config{
		BaseURL:    ts.URL,
		Timeout:    time.Second,
		RatePerSec: 0.001,
		Burst:      1,
	})

	if _, err := client.FetchPage(context.Background(), "products", nil); err != nil {
		t.Fatalf("first call should use the burst: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := client.FetchPage(ctx, "products", nil); err == nil {
		t.Errorf("expected the limiter to give up when the context expires")
	}
}
