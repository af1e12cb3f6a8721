package scopedstats

import (
	"context"
	"math"
)

// Incr adds amount to the entry for (name, tags) in the innermost recording
// scope carried by ctx. Without an active scope it is a no-op; that is the
// guarantee that makes it safe to leave instrumentation in hot paths.
//
// A non-finite amount is rejected with a ValidationError whether or not a
// scope is active, so a poisoned call site does not go unnoticed outside
// recording.
func Incr(ctx context.Context, name string, tags Tags, amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return newValidationError("non-finite amount %v for metric %q", amount, name)
	}

	if s := scopeFromContext(ctx); s != nil {
		s.add(name, tags, amount)
	}

	return nil
}

// Count increments the untagged entry for name by one.
func Count(ctx context.Context, name string) {
	if s := scopeFromContext(ctx); s != nil {
		s.add(name, nil, 1)
	}
}

// Set assigns value to the entry for (name, tags), last write wins. Like
// Incr it is a no-op without an active scope and rejects non-finite values.
func Set(ctx context.Context, name string, tags Tags, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return newValidationError("non-finite value %v for metric %q", value, name)
	}

	if s := scopeFromContext(ctx); s != nil {
		s.set(name, tags, value)
	}

	return nil
}
