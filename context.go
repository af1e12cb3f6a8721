package scopedstats

import (
	"context"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/trace"
)

type scopeContextKeyType int

const scopeKey scopeContextKeyType = iota

// scope is one open recording on a Recorder. The context chain acts as the
// per-goroutine stack of scopes: Record derives a context carrying the new
// innermost scope, and exiting the scope returns to the parent context.
type scope struct {
	rec   *Recorder
	id    string
	start time.Time
	span  trace.Span

	closed atomic.Bool
}

func contextWithScope(ctx context.Context, s *scope) context.Context {
	return context.WithValue(ctx, scopeKey, s)
}

// scopeFromContext returns the innermost scope carried by ctx, or nil when no
// recording is active for this context chain.
func scopeFromContext(ctx context.Context) *scope {
	if s, ok := ctx.Value(scopeKey).(*scope); ok {
		return s
	}

	return nil
}

// add writes into the owning recorder's buffer, unless the scope has already
// been closed. Writes through a stale context after finish are dropped.
func (s *scope) add(name string, tags Tags, amount float64) {
	if s.closed.Load() {
		return
	}

	s.rec.add(name, tags, amount)
}

func (s *scope) set(name string, tags Tags, value float64) {
	if s.closed.Load() {
		return
	}

	s.rec.set(name, tags, value)
}
