package scopedstats

const (
	// TotalRecordingDuration is the reserved, untagged entry holding the
	// accumulated wall time in seconds of all completed recording scopes.
	TotalRecordingDuration = "total_recording_duration"

	// CallsPrefix prefixes the default key of a timed function.
	CallsPrefix = "calls."

	// CountSuffix and TotalDurationSuffix are appended to a timer key for
	// the invocation count and the accumulated duration in seconds.
	CountSuffix         = ".count"
	TotalDurationSuffix = ".total_dur"
)
