package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"storefront-catalogue/internal/catalogue/repository"
	"storefront-catalogue/internal/filter"
	"storefront-catalogue/internal/notify"
	"storefront-catalogue/pkg/log"
)

// Config tunes session behaviour.
type Config struct {
	Debounce        time.Duration
	DisableDebounce bool
	DefaultLimit    int
	MaxLimit        int
	SessionTTL      time.Duration
	MaxSessions     int
	NoticeBuffer    int
}

func (c Config) withDefaults() Config {
	if c.DefaultLimit <= 0 {
		c.DefaultLimit = 12
	}
	if c.MaxLimit < c.DefaultLimit {
		c.MaxLimit = c.DefaultLimit
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = 30 * time.Minute
	}
	if c.MaxSessions <= 0 {
		c.MaxSessions = 1000
	}
	if c.NoticeBuffer <= 0 {
		c.NoticeBuffer = 20
	}
	return c
}

// implUseCase is the private implementation of catalogue.UseCase.
type implUseCase struct {
	repo     repository.Repository
	l        log.Logger
	parser   *filter.Parser
	sink     notify.Sink
	cfg      Config
	sessions *expirable.LRU[string, *session]
	now      func() time.Time
}

// New creates a catalogue UseCase. Evicted or expired sessions are torn down.
func New(l log.Logger, repo repository.Repository, parser *filter.Parser, sink notify.Sink, cfg Config) *implUseCase {
	cfg = cfg.withDefaults()
	uc := &implUseCase{
		repo:   repo,
		l:      l,
		parser: parser,
		sink:   sink,
		cfg:    cfg,
		now:    time.Now,
	}
	uc.sessions = expirable.NewLRU[string, *session](cfg.MaxSessions, func(_ string, s *session) {
		s.close()
	}, cfg.SessionTTL)
	return uc
}

func (uc *implUseCase) limit(requested int) int {
	switch {
	case requested <= 0:
		return uc.cfg.DefaultLimit
	case requested > uc.cfg.MaxLimit:
		return uc.cfg.MaxLimit
	}
	return requested
}
