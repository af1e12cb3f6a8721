package scopedstats

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/cschleiden/go-scopedstats/internal/tracing"
)

func Test_Recorder_ScopeSpan(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	mc := clock.NewMock()
	r := NewRecorder(&RecorderOptions{Clock: mc, Tracer: tp.Tracer("scopedstats-test")})

	ctx, finish := r.Record(context.Background())
	require.NoError(t, Incr(ctx, "requests", nil, 1))
	mc.Add(1500 * time.Millisecond)
	finish()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, tracing.SpanName, spans[0].Name())

	// The buffer held the counter and the reserved duration entry
	attrs := spans[0].Attributes()
	require.Contains(t, attrs, attribute.Float64(tracing.Duration, 1.5))
	require.Contains(t, attrs, attribute.Int(tracing.Entries, 2))
}

func Test_Recorder_ScopeSpanParentsInnerSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	tracer := tp.Tracer("scopedstats-test")

	r := NewRecorder(&RecorderOptions{Tracer: tracer})

	ctx, finish := r.Record(context.Background())

	// A span started inside the scope must become a child of the scope span
	_, child := tracer.Start(ctx, "inner-work")
	child.End()

	finish()

	spans := sr.Ended()
	require.Len(t, spans, 2)

	var scopeSpan, childSpan sdktrace.ReadOnlySpan
	for _, s := range spans {
		if s.Name() == tracing.SpanName {
			scopeSpan = s
		} else {
			childSpan = s
		}
	}
	require.NotNil(t, scopeSpan)
	require.NotNil(t, childSpan)
	require.Equal(t, scopeSpan.SpanContext().SpanID(), childSpan.Parent().SpanID())
}

func Test_Recorder_NoTracerNoSpan(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	_ = sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	r, _ := newTestRecorder()
	_, finish := r.Record(context.Background())
	finish()

	require.Empty(t, sr.Ended())
}
