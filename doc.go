// Package scopedstats collects counters and timings only while a recording
// scope is open. Instrumentation calls made outside a scope are no-ops, so
// code paths can stay instrumented permanently and only pay for aggregation
// when a caller decides to record, for example while diagnosing a slow
// request.
//
// A scope is opened on a Recorder and carried in a context.Context:
//
//	recorder := scopedstats.NewRecorder(nil)
//
//	ctx, finish := recorder.Record(ctx)
//	defer finish()
//
//	scopedstats.Incr(ctx, "cache.hits", scopedstats.Tags{"type": "redis"}, 1)
//
//	result, _ := recorder.GetResult(nil)
//
// Closing the scope adds the elapsed wall time to the reserved
// total_recording_duration entry. The recorder's buffer accumulates across
// scopes for the lifetime of the Recorder; it is never reset on entry.
package scopedstats
