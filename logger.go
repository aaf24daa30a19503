package elbow

import "github.com/edaniels/golog"

// Logger is the diagnostic sink Route writes the single "no route" line to
// (spec.md §7). A nil Logger is legal and means "drop the diagnostic,"
// matching the pack's nil-callback-means-no-op convention.
type Logger interface {
	Errorw(msg string, keysAndValues ...interface{})
}

// NewLogger returns the default Logger: an edaniels/golog sugared logger
// named "elbow". Callers embedding this module in a larger application
// will usually override it with WithLogger to route diagnostics through
// their own logger instead.
func NewLogger() Logger {
	return golog.NewLogger("elbow")
}
