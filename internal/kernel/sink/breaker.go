package sink

import (
	"context"
	"fmt"
	"sync"
	"time"

	"actionkernel/internal/audit"
	"actionkernel/internal/routing"
	"actionkernel/pkg/platform/sentinel"
)

const (
	defaultFailureThreshold = 5
	defaultCooldown         = 30 * time.Second
)

// Sink is the shape Guarded wraps; it matches kernel.AuditSink.
type Sink interface {
	RecordPrivacy(ctx context.Context, event audit.Event) error
	RecordRoute(ctx context.Context, event routing.ContextAuditEvent) error
}

// Guarded stops calling an unhealthy sink for a cooldown period after
// consecutive failures. While open it refuses every event with
// sentinel.ErrUnavailable, so callers still fail closed; the breaker only
// spares the backend from a thundering herd.
type Guarded struct {
	next Sink

	mu        sync.Mutex
	threshold int
	cooldown  time.Duration
	now       func() time.Time
	failures  int
	openUntil time.Time
}

type GuardOption func(*Guarded)

func WithFailureThreshold(n int) GuardOption {
	return func(g *Guarded) {
		if n > 0 {
			g.threshold = n
		}
	}
}

func WithCooldown(d time.Duration) GuardOption {
	return func(g *Guarded) {
		if d > 0 {
			g.cooldown = d
		}
	}
}

// WithGuardClock replaces the wall clock, mainly for tests.
func WithGuardClock(now func() time.Time) GuardOption {
	return func(g *Guarded) {
		if now != nil {
			g.now = now
		}
	}
}

func NewGuarded(next Sink, opts ...GuardOption) *Guarded {
	g := &Guarded{
		next:      next,
		threshold: defaultFailureThreshold,
		cooldown:  defaultCooldown,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Guarded) RecordPrivacy(ctx context.Context, event audit.Event) error {
	if err := g.allow(); err != nil {
		return err
	}
	return g.observe(g.next.RecordPrivacy(ctx, event))
}

func (g *Guarded) RecordRoute(ctx context.Context, event routing.ContextAuditEvent) error {
	if err := g.allow(); err != nil {
		return err
	}
	return g.observe(g.next.RecordRoute(ctx, event))
}

// IsOpen reports whether events are currently being refused.
func (g *Guarded) IsOpen() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.openLocked()
}

func (g *Guarded) allow() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.openLocked() {
		return fmt.Errorf("audit sink circuit open until %s: %w", g.openUntil.Format(time.RFC3339), sentinel.ErrUnavailable)
	}
	return nil
}

func (g *Guarded) openLocked() bool {
	return !g.openUntil.IsZero() && g.now().Before(g.openUntil)
}

// observe counts consecutive failures. After the cooldown one attempt is let
// through; a failure re-opens immediately, a success resets the count.
func (g *Guarded) observe(err error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err == nil {
		g.failures = 0
		g.openUntil = time.Time{}
		return nil
	}

	g.failures++
	if g.failures >= g.threshold {
		g.openUntil = g.now().Add(g.cooldown)
	}
	return err
}
