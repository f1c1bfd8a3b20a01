package repository

import (
	"context"

	"github.com/ca-srg/dd-unqueried-metrics/domain"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, msg string, fields ...domain.Field) {}
func (nopLogger) Info(ctx context.Context, msg string, fields ...domain.Field)  {}
func (nopLogger) Warn(ctx context.Context, msg string, fields ...domain.Field)  {}
func (nopLogger) Error(ctx context.Context, msg string, fields ...domain.Field) {}
func (l nopLogger) WithFields(fields ...domain.Field) domain.Logger {
	return l
}
