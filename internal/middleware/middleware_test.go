package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"storefront-catalogue/pkg/log"
)

func newEngine(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})
	return r
}

func TestRequestID(t *testing.T) {
	r := newEngine(New(log.NewNop(), Config{}))

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(HeaderRequestID)
		if id == "" || w.Body.String() != id {
			t.Errorf("expected generated id in header and context, got header %q body %q", id, w.Body.String())
		}
	})

	t.Run("Propagated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		r.ServeHTTP(w, req)

		if w.Body.String() != "abc-123" {
			t.Errorf("expected caller id to propagate, got %q", w.Body.String())
		}
	})
}

func TestRateLimit(t *testing.T) {
	r := newEngine(New(log.NewNop(), Config{RateLimitPerMin: 10}))

	send := func(remote string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil).WithContext(context.Background())
		req.RemoteAddr = remote
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := send("10.0.0.1:1234"); code != http.StatusOK {
		t.Fatalf("expected the burst to allow the first request, got %d", code)
	}
	if code := send("10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 once the burst is spent, got %d", code)
	}
	if code := send("10.0.0.2:1234"); code != http.StatusOK {
		t.Errorf("expected other clients to be unaffected, got %d", code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	r := newEngine(New(log.NewNop(), Config{}))
	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}
