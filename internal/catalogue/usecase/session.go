package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"storefront-catalogue/internal/catalogue"
	"storefront-catalogue/internal/filter"
	"storefront-catalogue/internal/notify"
	"storefront-catalogue/pkg/debounce"
	"storefront-catalogue/pkg/log"
)

// session is the page-level controller of one list view. It owns the filter
// store, the per-field debounce timers and the last successfully fetched page.
//
// Every fetch is tagged with a sequence number. Issuing a fetch cancels the
// one in flight, and only the response to the latest fetch is applied, so a
// late response never overwrites a later one.
type session struct {
	id      string
	src     catalogue.Source
	store   *filter.Store
	timers  *debounce.Scheduler[string, filter.Value]
	notices *notify.Buffer
	sink    notify.Sink
	fetcher func(ctx context.Context, q filter.Query) (filter.Page[catalogue.Item], error)
	l       log.Logger
	now     func() time.Time
	delay   time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	page       int
	limit      int
	seq        uint64
	appliedSeq uint64
	inflight   context.CancelFunc
	result     filter.Page[catalogue.Item]
	query      filter.Query
	lastErr    error
	closed     bool
}

func (uc *implUseCase) newSession(ctx context.Context, id string, src catalogue.Source, limit int) *session {
	sctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	notices := notify.NewBuffer(uc.cfg.NoticeBuffer)

	s := &session{
		id:      id,
		src:     src,
		store:   filter.NewStore(src.Schema),
		timers:  debounce.New[string, filter.Value](debounce.WithDisabled(uc.cfg.DisableDebounce)),
		notices: notices,
		sink:    notify.Multi{uc.sink, notices},
		l:       uc.l,
		now:     uc.now,
		delay:   uc.cfg.Debounce,
		ctx:     sctx,
		cancel:  cancel,
		page:    1,
		limit:   limit,
		result:  filter.Page[catalogue.Item]{Pagination: filter.NewPagination(1, limit, 0)},
		query:   filter.Compose(src.Schema, src.Schema.Defaults(), 1, limit),
	}
	s.fetcher = func(ctx context.Context, q filter.Query) (filter.Page[catalogue.Item], error) {
		return uc.fetch(ctx, src, q)
	}
	return s
}

// watch refetches page 1 after every committed criteria change. Reset commits
// once, so it triggers exactly one refetch. The observer's snapshot is ignored:
// observers of concurrent commits may run out of order, and refetch always
// composes from the store's current values.
func (s *session) watch() {
	s.store.Subscribe(func(filter.Criteria) {
		s.mu.Lock()
		s.page = 1
		s.mu.Unlock()
		s.refetch(s.ctx)
	})
}

// schedule validates an edit now and commits it once the field is quiet.
func (s *session) schedule(field string, v filter.Value) {
	s.timers.Schedule(field, v, s.delay, func(v filter.Value) {
		s.commit(field, v)
	})
}

func (s *session) commit(field string, v filter.Value) {
	if s.isClosed() {
		return
	}
	// The other end of a date window may have moved since the edit was checked.
	if err := s.store.SetField(field, v); err != nil {
		s.notify(notify.LevelWarning, field, err.Error())
	}
}

// refetch issues a fetch for the current criteria at the current page and
// blocks until it is applied or discarded.
func (s *session) refetch(ctx context.Context) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.inflight != nil {
		s.inflight()
	}
	s.seq++
	seq := s.seq
	fctx, cancel := context.WithCancel(ctx)
	s.inflight = cancel
	q := filter.Compose(s.src.Schema, s.store.Snapshot(), s.page, s.limit)
	s.mu.Unlock()

	page, err := s.fetcher(fctx, q)
	s.apply(seq, q, page, err)
	cancel()
}

func (s *session) apply(seq uint64, q filter.Query, page filter.Page[catalogue.Item], err error) {
	s.mu.Lock()
	if seq != s.seq || s.closed {
		// superseded by a newer fetch
		s.mu.Unlock()
		return
	}
	s.appliedSeq = seq
	s.inflight = nil
	if err != nil {
		s.lastErr = err
		s.mu.Unlock()
		s.l.Warnf(s.ctx, "session %s fetch %d: %v", s.id, seq, err)
		s.notify(notify.LevelError, "", "Could not load "+s.src.Schema.ItemType()+": "+err.Error())
		return
	}
	s.result = page
	s.query = q
	s.lastErr = nil
	s.mu.Unlock()
}

func (s *session) setPage(page int) {
	s.mu.Lock()
	s.page = page
	s.mu.Unlock()
	s.refetch(s.ctx)
}

// reset drops pending edits and restores every default. When nothing was
// active the store does not commit, so only a page change refetches.
func (s *session) reset() {
	s.timers.CancelAll()
	before := s.store.Version()
	s.store.Reset()
	if s.store.Version() != before {
		s.notify(notify.LevelInfo, "", "Filters cleared")
		return
	}

	s.mu.Lock()
	onFirst := s.page == 1
	s.mu.Unlock()
	if !onFirst {
		s.setPage(1)
	}
}

func (s *session) notify(level notify.Level, field, msg string) {
	s.sink.Notify(s.ctx, notify.Notice{Level: level, Field: field, Message: msg, At: s.now()})
}

func (s *session) view() catalogue.SessionView {
	criteria := s.store.Snapshot()

	s.mu.Lock()
	page, limit := s.page, s.limit
	result, query := s.result, s.query
	loading := s.appliedSeq < s.seq
	var lastErr string
	if s.lastErr != nil {
		lastErr = s.lastErr.Error()
	}
	s.mu.Unlock()

	pending := s.timers.PendingKeys()
	sort.Strings(pending)

	return catalogue.SessionView{
		ID:            s.id,
		Version:       s.store.Version(),
		Page:          page,
		Limit:         limit,
		Result:        project(s.src, criteria, query, result),
		PendingFields: pending,
		Loading:       loading,
		LastError:     lastErr,
		Notices:       s.notices.Drain(),
	}
}

func (s *session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// close cancels the in-flight fetch and every pending timer. It must not be
// called from a timer callback.
func (s *session) close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.inflight != nil {
		s.inflight()
		s.inflight = nil
	}
	s.mu.Unlock()

	s.cancel()
	s.timers.Close()
}
