package logging

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/ca-srg/dd-unqueried-metrics/domain"
)

// DebugLogger forwards to a wrapped logger and mirrors entries to a writer.
// The writer is stderr in production so stdout stays reserved for user output.
type DebugLogger struct {
	wrapped   domain.Logger
	component string
	out       io.Writer
	fields    []domain.Field
	mu        *sync.Mutex
}

func NewDebugLogger(wrapped domain.Logger, component string, out io.Writer) *DebugLogger {
	return &DebugLogger{
		wrapped:   wrapped,
		component: component,
		out:       out,
		mu:        &sync.Mutex{},
	}
}

func (d *DebugLogger) Debug(ctx context.Context, msg string, fields ...domain.Field) {
	d.wrapped.Debug(ctx, msg, fields...)
	d.print(domain.LogLevelDebug, msg, fields...)
}

func (d *DebugLogger) Info(ctx context.Context, msg string, fields ...domain.Field) {
	d.wrapped.Info(ctx, msg, fields...)
	d.print(domain.LogLevelInfo, msg, fields...)
}

func (d *DebugLogger) Warn(ctx context.Context, msg string, fields ...domain.Field) {
	d.wrapped.Warn(ctx, msg, fields...)
	d.print(domain.LogLevelWarn, msg, fields...)
}

func (d *DebugLogger) Error(ctx context.Context, msg string, fields ...domain.Field) {
	d.wrapped.Error(ctx, msg, fields...)
	d.print(domain.LogLevelError, msg, fields...)
}

func (d *DebugLogger) WithFields(fields ...domain.Field) domain.Logger {
	newFields := make([]domain.Field, 0, len(d.fields)+len(fields))
	newFields = append(newFields, d.fields...)
	newFields = append(newFields, fields...)

	return &DebugLogger{
		wrapped:   d.wrapped.WithFields(fields...),
		component: d.component,
		out:       d.out,
		fields:    newFields,
		mu:        d.mu,
	}
}

func (d *DebugLogger) print(level domain.LogLevel, msg string, fields ...domain.Field) {
	d.mu.Lock()
	defer d.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02T15:04:05.000Z07:00")

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] [%s] [%s] %s", timestamp, level.String(), d.component, msg)

	all := append(append([]domain.Field{}, d.fields...), fields...)
	if len(all) > 0 {
		b.WriteString(" {")
		for i, field := range all {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", field.Key, field.Value)
		}
		b.WriteString("}")
	}

	_, _ = fmt.Fprintln(d.out, b.String())
}
