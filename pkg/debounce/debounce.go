// Package debounce coalesces bursts of keyed events into a single trailing call.
package debounce

import (
	"sync"
	"time"
)

// Scheduler delays delivery of the last value scheduled for a key until the key
// has been quiet for the requested delay. Keys are independent of each other.
type Scheduler[K comparable, V any] struct {
	mu       sync.Mutex
	pending  map[K]*entry
	seq      uint64
	disabled bool
	closed   bool
	inflight sync.WaitGroup
}

type entry struct {
	id    uint64
	timer *time.Timer
}

// Option configures a Scheduler.
type Option func(*options)

type options struct {
	disabled bool
}

// WithDisabled makes every Schedule call deliver synchronously.
func WithDisabled(disabled bool) Option {
	return func(o *options) { o.disabled = disabled }
}

// New creates an empty Scheduler.
func New[K comparable, V any](opts ...Option) *Scheduler[K, V] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Scheduler[K, V]{
		pending:  make(map[K]*entry),
		disabled: o.disabled,
	}
}

// Schedule arranges for onFire(value) to run once key has been quiet for delay.
// A later Schedule for the same key replaces the pending value and restarts the
// wait. A non-positive delay, or a disabled scheduler, delivers immediately on
// the calling goroutine after dropping anything pending for key.
func (s *Scheduler[K, V]) Schedule(key K, value V, delay time.Duration, onFire func(V)) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.stopLocked(key)

	if s.disabled || delay <= 0 {
		s.mu.Unlock()
		onFire(value)
		return
	}

	s.seq++
	id := s.seq
	e := &entry{id: id}
	e.timer = time.AfterFunc(delay, func() { s.fire(key, id, value, onFire) })
	s.pending[key] = e
	s.mu.Unlock()
}

func (s *Scheduler[K, V]) fire(key K, id uint64, value V, onFire func(V)) {
	s.mu.Lock()
	e, ok := s.pending[key]
	if !ok || e.id != id || s.closed {
		s.mu.Unlock()
		return
	}
	delete(s.pending, key)
	s.inflight.Add(1)
	s.mu.Unlock()

	defer s.inflight.Done()
	onFire(value)
}

// Cancel drops the pending value for key, if any.
func (s *Scheduler[K, V]) Cancel(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked(key)
}

// CancelAll drops every pending value. No callback that has not started yet
// will run after CancelAll returns.
func (s *Scheduler[K, V]) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.pending {
		s.stopLocked(key)
	}
}

// Close cancels everything, rejects further scheduling and waits for callbacks
// that were already delivering. It must not be called from inside onFire.
func (s *Scheduler[K, V]) Close() {
	s.mu.Lock()
	s.closed = true
	for key := range s.pending {
		s.stopLocked(key)
	}
	s.mu.Unlock()

	s.inflight.Wait()
}

// Pending reports whether key has a value waiting to be delivered.
func (s *Scheduler[K, V]) Pending(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[key]
	return ok
}

// PendingKeys returns the keys that currently have a value waiting, in no particular order.
func (s *Scheduler[K, V]) PendingKeys() []K {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]K, 0, len(s.pending))
	for key := range s.pending {
		keys = append(keys, key)
	}
	return keys
}

func (s *Scheduler[K, V]) stopLocked(key K) {
	if e, ok := s.pending[key]; ok {
		e.timer.Stop()
		delete(s.pending, key)
	}
}
