package streamgen

// Logger interface for operational logging, warnings, and error reporting.
//
// It follows a dependency-free pattern so callers can plug in any structured
// logging backend (log/slog, zap, logr, ...) by wrapping it in these four
// methods. Args are alternating key/value pairs, slog-style.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
