package main

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"

	scopedstats "github.com/cschleiden/go-scopedstats"
)

func main() {
	r := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String("go-scopedstats sample"),
		semconv.ServiceVersionKey.String("v0.1.0"),
		attribute.String("environment", "sample"),
	)

	stdoutexp, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		panic(err)
	}

	tp := trace.NewTracerProvider(
		trace.WithSyncer(stdoutexp),
		trace.WithResource(r),
	)

	recorder := scopedstats.NewRecorder(&scopedstats.RecorderOptions{
		Tracer: tp.Tracer("go-scopedstats/sample"),
	})

	// Every recording scope shows up as a span with its duration and
	// entry count attached.
	ctx, finish := recorder.Record(context.Background())
	_ = scopedstats.Incr(ctx, "work.items", nil, 3)
	time.Sleep(50 * time.Millisecond)
	finish()

	result, err := recorder.GetResult(nil)
	if err != nil {
		panic(err)
	}
	fmt.Printf("recorded: %v\n", result)

	tp.Shutdown(context.Background())
}
