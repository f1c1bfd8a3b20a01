package logging

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ca-srg/dd-unqueried-metrics/domain"
	"github.com/ca-srg/dd-unqueried-metrics/infrastructure/config"
	"github.com/ic2hrmk/promtail"
)

const (
	// appLabel is attached to every entry shipped to Loki
	appLabel = "dd-unqueried-metrics"

	promtailBatchSize = 100
)

// LabeledLogSink is the part of the promtail client used by PromtailLogger
type LabeledLogSink interface {
	LogfWithLabels(level promtail.Level, labels map[string]string, format string, args ...interface{})
}

// NewPromtailSink creates a promtail client pushing to the configured Loki endpoint
func NewPromtailSink(cfg *config.PromtailConfig) (LabeledLogSink, error) {
	defaultLabels := map[string]string{
		"app": appLabel,
	}

	client, err := promtail.NewJSONv1Client(
		cfg.URL,
		defaultLabels,
		promtail.WithSendBatchSize(promtailBatchSize),
		promtail.WithSendBatchTimeout(time.Duration(cfg.BatchWaitSeconds)*time.Second),
		promtail.WithBasicAuth(cfg.Username, cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create promtail client: %w", err)
	}

	return client, nil
}

type PromtailLogger struct {
	sink      LabeledLogSink
	component string
	fields    []domain.Field
	mu        sync.RWMutex
}

func NewPromtailLogger(sink LabeledLogSink, component string) *PromtailLogger {
	return &PromtailLogger{
		sink:      sink,
		component: component,
		fields:    []domain.Field{},
	}
}

func (p *PromtailLogger) Debug(ctx context.Context, msg string, fields ...domain.Field) {
	p.log(ctx, domain.LogLevelDebug, msg, fields...)
}

func (p *PromtailLogger) Info(ctx context.Context, msg string, fields ...domain.Field) {
	p.log(ctx, domain.LogLevelInfo, msg, fields...)
}

func (p *PromtailLogger) Warn(ctx context.Context, msg string, fields ...domain.Field) {
	p.log(ctx, domain.LogLevelWarn, msg, fields...)
}

func (p *PromtailLogger) Error(ctx context.Context, msg string, fields ...domain.Field) {
	p.log(ctx, domain.LogLevelError, msg, fields...)
}

func (p *PromtailLogger) WithFields(fields ...domain.Field) domain.Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()

	newFields := make([]domain.Field, len(p.fields)+len(fields))
	copy(newFields, p.fields)
	copy(newFields[len(p.fields):], fields)

	return &PromtailLogger{
		sink:      p.sink,
		component: p.component,
		fields:    newFields,
	}
}

func (p *PromtailLogger) log(ctx context.Context, level domain.LogLevel, msg string, fields ...domain.Field) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	labels := map[string]string{
		"level":     level.String(),
		"component": p.component,
	}

	for _, field := range p.fields {
		labels[field.Key] = fmt.Sprintf("%v", field.Value)
	}
	for _, field := range fields {
		labels[field.Key] = fmt.Sprintf("%v", field.Value)
	}

	p.sink.LogfWithLabels(toPromtailLevel(level), labels, "%s", msg)
}

func toPromtailLevel(level domain.LogLevel) promtail.Level {
	switch level {
	case domain.LogLevelDebug:
		return promtail.Debug
	case domain.LogLevelInfo:
		return promtail.Info
	case domain.LogLevelWarn:
		return promtail.Warn
	case domain.LogLevelError:
		return promtail.Error
	default:
		return promtail.Info
	}
}
