package search

// Logger defines the logging contract the cache depends on.
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsCollector records cache lookup results (hit/miss/error). A nil
// collector disables instrumentation.
type MetricsCollector interface {
	ObserveCacheLookup(result string)
}
