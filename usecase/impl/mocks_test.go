package impl

import (
	"context"

	"github.com/ca-srg/dd-unqueried-metrics/domain"
	"github.com/ca-srg/dd-unqueried-metrics/domain/entity"
	"github.com/ca-srg/dd-unqueried-metrics/domain/repository"
	"github.com/ca-srg/dd-unqueried-metrics/domain/valueobject"
	"github.com/stretchr/testify/mock"
)

// MockLogger records warnings and discards everything else
type MockLogger struct {
	warnCalls []string
}

func (m *MockLogger) Debug(ctx context.Context, msg string, fields ...domain.Field) {}
func (m *MockLogger) Info(ctx context.Context, msg string, fields ...domain.Field)  {}
func (m *MockLogger) Warn(ctx context.Context, msg string, fields ...domain.Field) {
	m.warnCalls = append(m.warnCalls, msg)
}
func (m *MockLogger) Error(ctx context.Context, msg string, fields ...domain.Field) {}
func (m *MockLogger) WithFields(fields ...domain.Field) domain.Logger {
	return m
}

type MockCredentialPrompt struct {
	mock.Mock
	notices []string
}

func (m *MockCredentialPrompt) Notify(message string) {
	m.notices = append(m.notices, message)
}

func (m *MockCredentialPrompt) Prompt(message string) (string, error) {
	args := m.Called(message)
	return args.String(0), args.Error(1)
}

type MockMetricsAPI struct {
	mock.Mock
}

func (m *MockMetricsAPI) ListMetrics(ctx context.Context, creds *valueobject.APICredentials, query repository.MetricsQuery) ([]*entity.MetricRecord, error) {
	args := m.Called(ctx, creds, query)
	if result := args.Get(0); result != nil {
		return result.([]*entity.MetricRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCSVWriter struct {
	mock.Mock
}

func (m *MockCSVWriter) Write(records []*entity.MetricRecord, outputPath string, onRow repository.RowWrittenFunc) (int, error) {
	args := m.Called(records, outputPath, onRow)
	return args.Int(0), args.Error(1)
}
