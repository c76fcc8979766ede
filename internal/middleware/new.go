package middleware

import (
	"time"

	"storefront-catalogue/pkg/log"
)

// Config configures the shared middleware set.
type Config struct {
	// RateLimitPerMin is the sustained request rate allowed per client. Zero disables limiting.
	RateLimitPerMin int
	MaxClients      int
	ClientTTL       time.Duration
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin, cfg.MaxClients, cfg.ClientTTL)
	}
	return mw
}
