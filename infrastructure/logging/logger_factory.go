package logging

import (
	"context"
	"io"
	"os"

	"github.com/ca-srg/dd-unqueried-metrics/domain"
	"github.com/ca-srg/dd-unqueried-metrics/infrastructure/config"
)

type LoggerFactoryImpl struct {
	config *config.LoggingConfig
	sink   LabeledLogSink
	out    io.Writer
}

// NewLoggerFactory creates a logger factory. A promtail client is only
// created when a Loki URL is configured.
func NewLoggerFactory(cfg *config.LoggingConfig) (domain.LoggerFactory, error) {
	factory := &LoggerFactoryImpl{
		config: cfg,
		out:    os.Stderr,
	}

	if cfg.Promtail.Enabled() {
		sink, err := NewPromtailSink(cfg.Promtail)
		if err != nil {
			return nil, err
		}
		factory.sink = sink
	}

	return factory, nil
}

// newLoggerFactoryWithSink wires an explicit sink and debug writer
func newLoggerFactoryWithSink(cfg *config.LoggingConfig, sink LabeledLogSink, out io.Writer) *LoggerFactoryImpl {
	return &LoggerFactoryImpl{
		config: cfg,
		sink:   sink,
		out:    out,
	}
}

func (f *LoggerFactoryImpl) CreateLogger(component string) domain.Logger {
	var logger domain.Logger = &NoOpLogger{}
	if f.sink != nil {
		logger = NewPromtailLogger(f.sink, component)
	}

	// Wrap with debug logger if debug mode is enabled
	if f.config.Debug {
		logger = NewDebugLogger(logger, component, f.out)
	}

	// Level filtering applies to both Loki and the stderr mirror
	return NewLevelFilterLogger(logger, domain.ParseLogLevel(f.config.Level))
}

// Shutdown flushes and closes the promtail client, if any
func (f *LoggerFactoryImpl) Shutdown() error {
	if closer, ok := f.sink.(interface{ Close() }); ok {
		closer.Close()
	}
	return nil
}

// LevelFilterLogger filters log messages based on minimum level
type LevelFilterLogger struct {
	wrapped  domain.Logger
	minLevel domain.LogLevel
}

func NewLevelFilterLogger(wrapped domain.Logger, minLevel domain.LogLevel) *LevelFilterLogger {
	return &LevelFilterLogger{
		wrapped:  wrapped,
		minLevel: minLevel,
	}
}

func (l *LevelFilterLogger) Debug(ctx context.Context, msg string, fields ...domain.Field) {
	if domain.LogLevelDebug >= l.minLevel {
		l.wrapped.Debug(ctx, msg, fields...)
	}
}

func (l *LevelFilterLogger) Info(ctx context.Context, msg string, fields ...domain.Field) {
	if domain.LogLevelInfo >= l.minLevel {
		l.wrapped.Info(ctx, msg, fields...)
	}
}

func (l *LevelFilterLogger) Warn(ctx context.Context, msg string, fields ...domain.Field) {
	if domain.LogLevelWarn >= l.minLevel {
		l.wrapped.Warn(ctx, msg, fields...)
	}
}

func (l *LevelFilterLogger) Error(ctx context.Context, msg string, fields ...domain.Field) {
	if domain.LogLevelError >= l.minLevel {
		l.wrapped.Error(ctx, msg, fields...)
	}
}

func (l *LevelFilterLogger) WithFields(fields ...domain.Field) domain.Logger {
	return &LevelFilterLogger{
		wrapped:  l.wrapped.WithFields(fields...),
		minLevel: l.minLevel,
	}
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

func (n *NoOpLogger) Debug(ctx context.Context, msg string, fields ...domain.Field) {}
func (n *NoOpLogger) Info(ctx context.Context, msg string, fields ...domain.Field)  {}
func (n *NoOpLogger) Warn(ctx context.Context, msg string, fields ...domain.Field)  {}
func (n *NoOpLogger) Error(ctx context.Context, msg string, fields ...domain.Field) {}
func (n *NoOpLogger) WithFields(fields ...domain.Field) domain.Logger {
	return n
}
