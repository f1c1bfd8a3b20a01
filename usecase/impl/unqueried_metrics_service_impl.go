package impl

import (
	"context"

	"github.com/ca-srg/dd-unqueried-metrics/domain"
	"github.com/ca-srg/dd-unqueried-metrics/domain/entity"
	"github.com/ca-srg/dd-unqueried-metrics/domain/repository"
	"github.com/ca-srg/dd-unqueried-metrics/domain/valueobject"
	usecase "github.com/ca-srg/dd-unqueried-metrics/usecase/interface"
)

// UnqueriedMetricsServiceImpl implements UnqueriedMetricsService
type UnqueriedMetricsServiceImpl struct {
	metricsAPI repository.MetricsAPIRepository
	csvWriter  repository.CSVWriterRepository
	logger     domain.Logger
}

// NewUnqueriedMetricsService creates a new unqueried metrics service
func NewUnqueriedMetricsService(
	metricsAPI repository.MetricsAPIRepository,
	csvWriter repository.CSVWriterRepository,
	logger domain.Logger,
) usecase.UnqueriedMetricsService {
	return &UnqueriedMetricsServiceImpl{
		metricsAPI: metricsAPI,
		csvWriter:  csvWriter,
		logger:     logger,
	}
}

// FetchMetrics queries the metrics catalog with the fixed unqueried-metrics query
func (s *UnqueriedMetricsServiceImpl) FetchMetrics(ctx context.Context, creds *valueobject.APICredentials) ([]*entity.MetricRecord, error) {
	query := repository.DefaultMetricsQuery()

	s.logger.Info(ctx, "Fetching metrics catalog",
		domain.NewField("windowSeconds", query.WindowSeconds),
		domain.NewField("queried", query.Queried),
		domain.NewField("tags", query.Tags))

	records, err := s.metricsAPI.ListMetrics(ctx, creds, query)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Fetched metrics catalog", domain.NewField("metricCount", len(records)))
	return records, nil
}

// ExportMetrics writes the metric ids to the file described by req
func (s *UnqueriedMetricsServiceImpl) ExportMetrics(
	ctx context.Context,
	records []*entity.MetricRecord,
	req *entity.ExportRequest,
	onRow repository.RowWrittenFunc,
) (*usecase.ExportResult, error) {
	if req == nil {
		return nil, domain.ErrInvalidInput("export request", "must not be nil")
	}

	outputPath := req.OutputPath()

	if len(records) == 0 {
		s.logger.Warn(ctx, "No metrics matched the query, writing header only",
			domain.NewField("outputPath", outputPath))
	}

	s.logger.Debug(ctx, "Exporting metric ids",
		domain.NewField("outputPath", outputPath),
		domain.NewField("metricIDs", entity.MetricIDs(records)))

	count, err := s.csvWriter.Write(records, outputPath, onRow)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "CSV export completed successfully",
		domain.NewField("outputPath", outputPath),
		domain.NewField("recordCount", count))

	return &usecase.ExportResult{
		OutputPath:  outputPath,
		MetricCount: count,
	}, nil
}
