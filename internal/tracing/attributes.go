package tracing

// SpanName is the name of the span started for a recording scope.
const SpanName = "scopedstats.record"

const (
	ScopeID = "scopedstats.scope_id"

	// Duration is the scope's elapsed wall time in seconds
	Duration = "scopedstats.duration_s"

	// Entries is the number of aggregated entries in the recorder's buffer
	// when the scope finished
	Entries = "scopedstats.entries"
)
