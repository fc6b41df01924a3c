package hotelbackend

// Logger defines the logging contract the client depends on.
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsCollector records backend call outcomes. A nil collector disables
// instrumentation.
type MetricsCollector interface {
	ObserveBackendCall(operation, outcome string, seconds float64)
}
