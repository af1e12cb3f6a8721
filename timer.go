package scopedstats

import (
	"context"

	"github.com/cschleiden/go-scopedstats/internal/fn"
)

type TimerOptions struct {
	// Key for the emitted entries. Defaults to "calls." plus the wrapped
	// function's name.
	Key string

	// Tags attached to both emitted entries.
	Tags Tags
}

// Timer wraps fn so that every invocation made inside a recording scope adds
// one to key+".count" and the elapsed seconds to key+".total_dur". The
// wrapped function's result, error, or panic is propagated unchanged, and the
// entries are written on the way out in the failure cases too.
//
// Outside a recording scope the wrapper calls straight through without
// capturing timestamps.
func Timer[TResult any](f func(context.Context) (TResult, error), options *TimerOptions) func(context.Context) (TResult, error) {
	key, tags := timerConfig(f, options)

	return func(ctx context.Context) (TResult, error) {
		s := scopeFromContext(ctx)
		if s == nil || s.closed.Load() {
			return f(ctx)
		}

		start := s.rec.clock.Now()
		defer func() {
			s.add(key+CountSuffix, tags, 1)
			s.add(key+TotalDurationSuffix, tags, s.rec.clock.Since(start).Seconds())
		}()

		return f(ctx)
	}
}

// TimerErr is Timer for functions returning only an error.
func TimerErr(f func(context.Context) error, options *TimerOptions) func(context.Context) error {
	key, tags := timerConfig(f, options)

	return func(ctx context.Context) error {
		s := scopeFromContext(ctx)
		if s == nil || s.closed.Load() {
			return f(ctx)
		}

		start := s.rec.clock.Now()
		defer func() {
			s.add(key+CountSuffix, tags, 1)
			s.add(key+TotalDurationSuffix, tags, s.rec.clock.Since(start).Seconds())
		}()

		return f(ctx)
	}
}

// timerConfig resolves key and tags once at wrap time.
func timerConfig(f any, options *TimerOptions) (string, Tags) {
	if options == nil {
		options = &TimerOptions{}
	}

	key := options.Key
	if key == "" {
		key = CallsPrefix + fn.Name(f)
	}

	return key, cloneTags(options.Tags)
}
