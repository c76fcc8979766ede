// Package notify carries user-facing notices (rejected edits, fetch failures)
// from the catalogue controller to whoever renders them.
package notify

import (
	"context"
	"sync"
	"time"

	"storefront-catalogue/pkg/log"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is a single toast-style message. Field is empty for list-wide notices.
type Notice struct {
	Level   Level     `json:"level"`
	Field   string    `json:"field,omitempty"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Sink receives notices. Implementations must be safe for concurrent use.
type Sink interface {
	Notify(ctx context.Context, n Notice)
}

// LogSink writes notices to a structured logger.
type LogSink struct {
	l log.Logger
}

func NewLogSink(l log.Logger) LogSink {
	return LogSink{l: l}
}

func (s LogSink) Notify(ctx context.Context, n Notice) {
	switch n.Level {
	case LevelError:
		s.l.Errorf(ctx, "notify field=%q: %s", n.Field, n.Message)
	case LevelWarning:
		s.l.Warnf(ctx, "notify field=%q: %s", n.Field, n.Message)
	default:
		s.l.Infof(ctx, "notify field=%q: %s", n.Field, n.Message)
	}
}

// Buffer keeps the most recent notices up to its capacity until drained.
type Buffer struct {
	mu      sync.Mutex
	cap     int
	notices []Notice
}

// NewBuffer creates a Buffer. A capacity below 1 is treated as 1.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{cap: capacity}
}

func (b *Buffer) Notify(_ context.Context, n Notice) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.notices) == b.cap {
		copy(b.notices, b.notices[1:])
		b.notices = b.notices[:b.cap-1]
	}
	b.notices = append(b.notices, n)
}

// Drain returns the buffered notices oldest first and empties the buffer.
func (b *Buffer) Drain() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.notices
	b.notices = nil
	return out
}

func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.notices)
}

// Multi fans a notice out to every sink in order.
type Multi []Sink

func (m Multi) Notify(ctx context.Context, n Notice) {
	for _, s := range m {
		if s != nil {
			s.Notify(ctx, n)
		}
	}
}
