// Package notify delivers the session facade's user-facing notifications to
// the presentation layer. Emission is decoupled from the operation that
// raised it: Notify hands the notification to a buffered channel and a
// single worker drains it into a bounded recent feed, preserving emission
// order.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/sristi/brainark-core/internal/api/metrics"
	"github.com/sristi/brainark-core/internal/core/domain"
)

const (
	defaultBuffer = 64
	defaultKeep   = 20
)

// Center is the in-process notification feed.
type Center struct {
	ch   chan domain.Notification
	keep int
	log  zerolog.Logger

	mu     sync.RWMutex
	recent []domain.Notification
}

// NewCenter creates a Center keeping the last keep notifications. Values
// <= 0 fall back to defaults.
func NewCenter(buffer, keep int, log zerolog.Logger) *Center {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	if keep <= 0 {
		keep = defaultKeep
	}
	return &Center{
		ch:   make(chan domain.Notification, buffer),
		keep: keep,
		log:  log,
	}
}

// Start launches the worker goroutine. It stops when ctx is cancelled.
func (c *Center) Start(ctx context.Context) {
	go c.run(ctx)
}

// Notify enqueues a notification without blocking the operation that raised
// it. When the buffer is full the notification is dropped with a warning.
func (c *Center) Notify(n domain.Notification) {
	if n.At.IsZero() {
		n.At = time.Now().UTC()
	}
	select {
	case c.ch <- n:
	default:
		c.log.Warn().Str("title", n.Title).Msg("notification buffer full, dropped")
	}
}

// Recent returns the retained notifications, newest first.
func (c *Center) Recent() []domain.Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Notification, len(c.recent))
	for i, n := range c.recent {
		out[len(c.recent)-1-i] = n
	}
	return out
}

func (c *Center) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-c.ch:
			if !ok {
				return
			}
			c.append(n)
			metrics.NotificationsEmittedTotal.WithLabelValues(string(n.Variant)).Inc()
			c.log.Info().
				Str("title", n.Title).
				Str("variant", string(n.Variant)).
				Msg("notification emitted")
		}
	}
}

func (c *Center) append(n domain.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recent = append(c.recent, n)
	if len(c.recent) > c.keep {
		c.recent = c.recent[len(c.recent)-c.keep:]
	}
}
