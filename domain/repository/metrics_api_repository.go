package repository

import (
	"context"

	"github.com/ca-srg/dd-unqueried-metrics/domain/entity"
	"github.com/ca-srg/dd-unqueried-metrics/domain/valueobject"
)

const (
	// QueriedWindowSeconds is the lookback window of the catalog query (14 days)
	QueriedWindowSeconds = 1209600

	// UnqueriedMetricsTagFilter is the tag filter applied to the catalog query
	UnqueriedMetricsTagFilter = "source:ephemera-org-example-custom-metric"
)

// MetricsQuery holds the query parameters of a metrics catalog request
type MetricsQuery struct {
	WindowSeconds int
	Queried       bool
	Tags          string
}

// DefaultMetricsQuery returns the fixed catalog query used by the exporter
func DefaultMetricsQuery() MetricsQuery {
	return MetricsQuery{
		WindowSeconds: QueriedWindowSeconds,
		Queried:       true,
		Tags:          UnqueriedMetricsTagFilter,
	}
}

// MetricsAPIRepository defines the interface for reading the metrics catalog
type MetricsAPIRepository interface {
	// ListMetrics performs a single request and returns the metrics in server order
	ListMetrics(ctx context.Context, creds *valueobject.APICredentials, query MetricsQuery) ([]*entity.MetricRecord, error)
}
