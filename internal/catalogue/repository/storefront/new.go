package storefront

import (
	"context"
	"net/url"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"storefront-catalogue/internal/catalogue/repository"
	"storefront-catalogue/pkg/log"
	sf "storefront-catalogue/pkg/storefront"
)

// Fetcher is the part of the storefront client the repository needs.
type Fetcher interface {
	FetchPage(ctx context.Context, resource string, query url.Values) (sf.RawPage, error)
}

// Recorder observes cache lookups and upstream calls.
type Recorder interface {
	CacheHit(resource string)
	CacheMiss(resource string)
	ObserveUpstream(resource string, d time.Duration, err error)
}

type nopRecorder struct{}

func (nopRecorder) CacheHit(string)                              {}
func (nopRecorder) CacheMiss(string)                             {}
func (nopRecorder) ObserveUpstream(string, time.Duration, error) {}

// CacheConfig sizes the page cache. A non-positive size disables caching.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type implRepository struct {
	client Fetcher
	l      log.Logger
	group  singleflight.Group
	cache  *expirable.LRU[string, sf.RawPage]
	rec    Recorder
}

// New creates a Repository backed by the storefront REST API. rec may be nil.
func New(client Fetcher, l log.Logger, cacheCfg CacheConfig, rec Recorder) repository.Repository {
	if rec == nil {
		rec = nopRecorder{}
	}
	r := &implRepository{client: client, l: l, rec: rec}
	if cacheCfg.Size > 0 {
		r.cache = expirable.NewLRU[string, sf.RawPage](cacheCfg.Size, nil, cacheCfg.TTL)
	}
	return r
}
