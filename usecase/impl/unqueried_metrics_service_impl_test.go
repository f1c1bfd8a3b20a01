package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ca-srg/dd-unqueried-metrics/domain"
	"github.com/ca-srg/dd-unqueried-metrics/domain/entity"
	"github.com/ca-srg/dd-unqueried-metrics/domain/repository"
	"github.com/ca-srg/dd-unqueried-metrics/domain/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnqueriedMetricsService_FetchMetrics(t *testing.T) {
	mockAPI := new(MockMetricsAPI)
	mockWriter := new(MockCSVWriter)
	service := NewUnqueriedMetricsService(mockAPI, mockWriter, &MockLogger{})

	creds := valueobject.NewAPICredentials("abc", "def")
	records := []*entity.MetricRecord{
		entity.NewMetricRecord("count", "my.metric.one"),
		entity.NewMetricRecord("gauge", "my.metric.two"),
	}

	expectedQuery := repository.MetricsQuery{
		WindowSeconds: 1209600,
		Queried:       true,
		Tags:          "source:ephemera-org-example-custom-metric",
	}
	mockAPI.On("ListMetrics", mock.Anything, creds, expectedQuery).Return(records, nil)

	result, err := service.FetchMetrics(context.Background(), creds)

	require.NoError(t, err)
	assert.Equal(t, records, result)
	mockAPI.AssertExpectations(t)
}

func TestUnqueriedMetricsService_FetchMetrics_Error(t *testing.T) {
	mockAPI := new(MockMetricsAPI)
	service := NewUnqueriedMetricsService(mockAPI, new(MockCSVWriter), &MockLogger{})

	apiErr := domain.ErrMetricsDecode("invalid JSON", errors.New("unexpected token"))
	mockAPI.On("ListMetrics", mock.Anything, mock.Anything, mock.Anything).Return(nil, apiErr)

	result, err := service.FetchMetrics(context.Background(), valueobject.NewAPICredentials("a", "b"))

	assert.Nil(t, result)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeMetricsDecode))
}

func TestUnqueriedMetricsService_ExportMetrics(t *testing.T) {
	mockWriter := new(MockCSVWriter)
	logger := &MockLogger{}
	service := NewUnqueriedMetricsService(new(MockMetricsAPI), mockWriter, logger)

	req := entity.NewExportRequest(time.Date(2024, 1, 3, 9, 0, 0, 0, time.Local), "")
	records := []*entity.MetricRecord{entity.NewMetricRecord("count", "my.metric.one")}

	mockWriter.On("Write", records, "dd-unqueried-metrics-03-01-2024.csv", mock.Anything).Return(1, nil)

	result, err := service.ExportMetrics(context.Background(), records, req, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, result.MetricCount)
	assert.Equal(t, "dd-unqueried-metrics-03-01-2024.csv", result.OutputPath)
	assert.Empty(t, logger.warnCalls)
	mockWriter.AssertExpectations(t)
}

func TestUnqueriedMetricsService_ExportMetrics_Empty(t *testing.T) {
	mockWriter := new(MockCSVWriter)
	logger := &MockLogger{}
	service := NewUnqueriedMetricsService(new(MockMetricsAPI), mockWriter, logger)

	req := entity.NewExportRequest(time.Date(2024, 1, 3, 0, 0, 0, 0, time.Local), "")
	mockWriter.On("Write", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(0, nil)

	result, err := service.ExportMetrics(context.Background(), []*entity.MetricRecord{}, req, nil)

	require.NoError(t, err)
	assert.Equal(t, 0, result.MetricCount)
	assert.Len(t, logger.warnCalls, 1)
}

func TestUnqueriedMetricsService_ExportMetrics_WriteError(t *testing.T) {
	mockWriter := new(MockCSVWriter)
	service := NewUnqueriedMetricsService(new(MockMetricsAPI), mockWriter, &MockLogger{})

	writeErr := domain.ErrFileOperationWithCause("create file", "x.csv", errors.New("permission denied"))
	mockWriter.On("Write", mock.Anything, mock.Anything, mock.Anything).Return(0, writeErr)

	req := entity.NewExportRequest(time.Now(), "")
	result, err := service.ExportMetrics(context.Background(), nil, req, nil)

	assert.Nil(t, result)
	assert.Equal(t, writeErr, err)
}

func TestUnqueriedMetricsService_ExportMetrics_NilRequest(t *testing.T) {
	mockWriter := new(MockCSVWriter)
	service := NewUnqueriedMetricsService(new(MockMetricsAPI), mockWriter, &MockLogger{})

	result, err := service.ExportMetrics(context.Background(), nil, nil, nil)

	assert.Nil(t, result)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidInput))
	mockWriter.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything)
}
