package scopedstats

import (
	"context"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/cschleiden/go-scopedstats/internal/logger"
	"github.com/cschleiden/go-scopedstats/internal/tracing"
	"github.com/cschleiden/go-scopedstats/log"
)

// metricKey identifies one aggregated entry: a name plus the canonical
// encoding of its tag set.
type metricKey struct {
	name string
	tags string
}

type RecorderOptions struct {
	// Logger receives scope lifecycle events at debug level and misuse
	// warnings. Defaults to a silent logger.
	Logger log.Logger

	// Clock used for duration measurement. Defaults to the wall clock;
	// tests pass a mock.
	Clock clock.Clock

	// Tracer, when set, starts a span for every recording scope and
	// annotates it with the scope's duration on finish.
	Tracer trace.Tracer
}

var DefaultRecorderOptions = RecorderOptions{}

// Recorder owns one aggregation buffer. It is inert until a caller opens a
// recording scope with Record; instrumentation calls outside any scope do not
// touch it. A Recorder may be shared across goroutines, buffer writes are
// synchronized.
type Recorder struct {
	logger log.Logger
	clock  clock.Clock
	tracer trace.Tracer

	mu       sync.Mutex
	buffer   map[metricKey]float64
	tagSets  map[string]Tags
	recorded bool
}

// FinishFunc closes a recording scope. It must be called on every exit path,
// typically with defer. Calling it more than once is a no-op.
type FinishFunc func()

func NewRecorder(options *RecorderOptions) *Recorder {
	if options == nil {
		options = &DefaultRecorderOptions
	}

	l := options.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}

	c := options.Clock
	if c == nil {
		c = clock.New()
	}

	return &Recorder{
		logger:  l,
		clock:   c,
		tracer:  options.Tracer,
		buffer:  map[metricKey]float64{},
		tagSets: map[string]Tags{},
	}
}

// Record opens a recording scope and returns a derived context carrying it as
// the innermost active scope. Instrumentation calls made with that context
// (or contexts derived from it) write into this recorder's buffer. The
// returned FinishFunc adds the scope's elapsed wall time in seconds to the
// reserved total_recording_duration entry and closes the scope; defer it so
// the scope is closed on every exit path, including panics.
//
// Scopes nest: opening another scope before finishing this one makes the new
// scope the innermost target, and finishing it restores this one. Each
// completed scope adds its own total_recording_duration contribution.
func (r *Recorder) Record(ctx context.Context) (context.Context, FinishFunc) {
	s := &scope{
		rec:   r,
		id:    uuid.NewString(),
		start: r.clock.Now(),
	}

	if r.tracer != nil {
		// Continue with the span's context so spans started inside the
		// scope parent under the scope span.
		ctx, s.span = r.tracer.Start(ctx, tracing.SpanName,
			trace.WithAttributes(attribute.String(tracing.ScopeID, s.id)))
	}

	r.mu.Lock()
	r.recorded = true
	r.mu.Unlock()

	r.logger.Debug("opened recording scope", log.ScopeIDKey, s.id)

	return contextWithScope(ctx, s), func() {
		r.finish(s)
	}
}

func (r *Recorder) finish(s *scope) {
	if !s.closed.CompareAndSwap(false, true) {
		r.logger.Warn("recording scope already finished", log.ScopeIDKey, s.id)
		return
	}

	elapsed := r.clock.Since(s.start).Seconds()
	r.add(TotalRecordingDuration, nil, elapsed)

	r.logger.Debug("finished recording scope", log.ScopeIDKey, s.id, log.DurationKey, elapsed)

	if s.span != nil {
		r.mu.Lock()
		entries := len(r.buffer)
		r.mu.Unlock()

		s.span.SetAttributes(
			attribute.Float64(tracing.Duration, elapsed),
			attribute.Int(tracing.Entries, entries),
		)
		s.span.End()
	}
}

// ResultOption configures a GetResult call.
type ResultOption func(*resultOptions)

type resultOptions struct {
	requireRecording bool
}

// RequireRecording makes GetResult fail with a UsageError if no scope was
// ever opened on the recorder. A scope that collected no calls still counts,
// since finishing it wrote the reserved duration entry.
func RequireRecording() ResultOption {
	return func(o *resultOptions) {
		o.requireRecording = true
	}
}

// GetResult returns a snapshot of the buffer as metric name to value.
//
// A non-empty filter keeps only entries whose tag set contains every filter
// pair. Untagged entries can never satisfy a non-empty filter; in particular
// the reserved total_recording_duration entry is only present for an empty or
// nil filter. Nil and empty filters are equivalent.
//
// When several tag variants of one name match, each tagged variant is
// reported under a qualified name ("name{k=v,...}") instead of being summed,
// so the dimensional split survives in the snapshot. An untagged variant
// keeps the bare name.
func (r *Recorder) GetResult(filter Tags, opts ...ResultOption) (map[string]float64, error) {
	var options resultOptions
	for _, opt := range opts {
		opt(&options)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if options.requireRecording && !r.recorded {
		return nil, newUsageError("no recording has happened on this recorder, open a scope with Record first")
	}

	matches := map[string][]metricKey{}
	for k := range r.buffer {
		if len(filter) > 0 {
			// Untagged entries, the reserved duration entry among
			// them, carry nothing to match a filter against.
			if k.tags == "" {
				continue
			}

			if !r.tagSets[k.tags].containsAll(filter) {
				continue
			}
		}

		matches[k.name] = append(matches[k.name], k)
	}

	result := make(map[string]float64, len(matches))
	for name, keys := range matches {
		if len(keys) == 1 {
			result[name] = r.buffer[keys[0]]
			continue
		}

		for _, k := range keys {
			if k.tags == "" {
				result[name] = r.buffer[k]
			} else {
				result[qualifiedName(name, r.tagSets[k.tags])] = r.buffer[k]
			}
		}
	}

	return result, nil
}

func (r *Recorder) add(name string, tags Tags, amount float64) {
	k := metricKey{name: name, tags: encodeTags(tags)}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.rememberTagSet(k.tags, tags)
	r.buffer[k] += amount
}

func (r *Recorder) set(name string, tags Tags, value float64) {
	k := metricKey{name: name, tags: encodeTags(tags)}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.rememberTagSet(k.tags, tags)
	r.buffer[k] = value
}

// rememberTagSet keeps a copy of the tag set behind a canonical encoding so
// filtering does not have to decode keys. Callers must hold r.mu.
func (r *Recorder) rememberTagSet(encoded string, tags Tags) {
	if encoded == "" {
		return
	}

	if _, ok := r.tagSets[encoded]; !ok {
		r.tagSets[encoded] = cloneTags(tags)
	}
}
