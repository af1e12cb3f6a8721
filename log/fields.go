package log

const (
	NamespaceKey = "scopedstats"

	ScopeIDKey = NamespaceKey + ".scope.id"

	// DurationKey is the elapsed wall time of a finished scope in seconds
	DurationKey = NamespaceKey + ".scope.duration_s"

	MetricNameKey = NamespaceKey + ".metric.name"
	EntriesKey    = NamespaceKey + ".entries"
)
