package session

// Logger defines the logging contract the manager depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SessionsGauge reports the number of live sessions. A nil gauge disables
// instrumentation.
type SessionsGauge interface {
	Set(v float64)
}
