package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront_catalogue"

// Metrics owns a private Prometheus registry for the service. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	registry         *prometheus.Registry
	handler          http.Handler
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	cacheLookups     *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
}

// NewMetrics creates the registry and registers every collector.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route and status code.",
	}, []string{"route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
	lookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "page_cache_lookups_total",
		Help:      "Page cache lookups by upstream resource and result.",
	}, []string{"resource", "result"})
	upstream := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_fetch_duration_seconds",
		Help:      "Storefront list fetch latency by resource and outcome.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"resource", "outcome"})

	registry.MustRegister(requests, duration, lookups, upstream)
	return &Metrics{
		registry:         registry,
		handler:          promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:    requests,
		requestDuration:  duration,
		cacheLookups:     lookups,
		upstreamDuration: upstream,
	}
}

// Handler serves the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Middleware records request count and latency per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) CacheHit(resource string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(resource, "hit").Inc()
}

func (m *Metrics) CacheMiss(resource string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(resource, "miss").Inc()
}

// ObserveUpstream records one storefront call. Outcome is "ok" or "error".
func (m *Metrics) ObserveUpstream(resource string, d time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.upstreamDuration.WithLabelValues(resource, outcome).Observe(d.Seconds())
}
