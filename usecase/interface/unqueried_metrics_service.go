package usecase

import (
	"context"

	"github.com/ca-srg/dd-unqueried-metrics/domain/entity"
	"github.com/ca-srg/dd-unqueried-metrics/domain/repository"
	"github.com/ca-srg/dd-unqueried-metrics/domain/valueobject"
)

// UnqueriedMetricsService defines the fetch and export use cases
type UnqueriedMetricsService interface {
	// FetchMetrics queries the metrics catalog with the fixed unqueried-metrics query
	FetchMetrics(ctx context.Context, creds *valueobject.APICredentials) ([]*entity.MetricRecord, error)

	// ExportMetrics writes the metric ids to the file described by req
	ExportMetrics(ctx context.Context, records []*entity.MetricRecord, req *entity.ExportRequest, onRow repository.RowWrittenFunc) (*ExportResult, error)
}

// ExportResult summarizes a finished export
type ExportResult struct {
	OutputPath  string
	MetricCount int
}
