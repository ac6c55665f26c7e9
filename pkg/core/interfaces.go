package core

// Logger receives progress and diagnostic output from the renderer and loaders
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Printf(string, ...interface{}) {}

// NewNopLogger creates a logger that discards output
func NewNopLogger() Logger {
	return NopLogger{}
}
