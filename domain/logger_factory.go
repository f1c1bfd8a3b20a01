package domain

// LoggerFactory creates component-scoped loggers
type LoggerFactory interface {
	CreateLogger(component string) Logger

	// Shutdown flushes any buffered log entries
	Shutdown() error
}
