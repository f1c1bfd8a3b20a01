package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ca-srg/dd-unqueried-metrics/domain"
	"github.com/ca-srg/dd-unqueried-metrics/domain/entity"
	"github.com/ca-srg/dd-unqueried-metrics/domain/repository"
	"github.com/ca-srg/dd-unqueried-metrics/domain/valueobject"
)

const (
	metricsPath = "/api/v2/metrics"

	headerAPIKey         = "DD-API-KEY"
	headerApplicationKey = "DD-APPLICATION-KEY"

	// maxErrorBodyLength bounds how much of an error response is kept in error details
	maxErrorBodyLength = 512
)

// DatadogMetricsRepository implements repository.MetricsAPIRepository against the Datadog v2 API
type DatadogMetricsRepository struct {
	httpClient *http.Client
	baseURL    string
	logger     domain.Logger
}

// NewDatadogMetricsRepository creates a new DatadogMetricsRepository instance
func NewDatadogMetricsRepository(baseURL string, timeout time.Duration, logger domain.Logger) repository.MetricsAPIRepository {
	return &DatadogMetricsRepository{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// API response structures

// metricsResponse mirrors the JSON envelope of GET /api/v2/metrics.
// Pointers distinguish missing fields from empty ones.
type metricsResponse struct {
	Data *[]metricItem `json:"data"`
}

type metricItem struct {
	Type *string `json:"type"`
	ID   *string `json:"id"`
}

// ListMetrics retrieves the metrics catalog entries matching query
func (r *DatadogMetricsRepository) ListMetrics(ctx context.Context, creds *valueobject.APICredentials, query repository.MetricsQuery) ([]*entity.MetricRecord, error) {
	body, err := r.makeAPIRequest(ctx, creds, metricsPath, encodeMetricsQuery(query))
	if err != nil {
		return nil, err
	}

	records, err := decodeMetricsResponse(body)
	if err != nil {
		return nil, err
	}

	r.logger.Debug(ctx, "Decoded metrics response",
		domain.NewField("bytes", len(body)),
		domain.NewField("metricCount", len(records)))

	return records, nil
}

// encodeMetricsQuery builds the raw query string of a catalog request.
// Parameters keep their documented order with brackets and colons unescaped.
func encodeMetricsQuery(query repository.MetricsQuery) string {
	params := []string{
		"window[seconds]=" + strconv.Itoa(query.WindowSeconds),
		"filter[queried]=" + strconv.FormatBool(query.Queried),
	}
	if query.Tags != "" {
		params = append(params, "filter[tags]="+escapeTagFilter(query.Tags))
	}
	return strings.Join(params, "&")
}

// escapeTagFilter escapes a tag filter value, leaving the key:value separator readable
func escapeTagFilter(tags string) string {
	return strings.ReplaceAll(url.QueryEscape(tags), "%3A", ":")
}

// makeAPIRequest sends a single authenticated GET and returns the response body
func (r *DatadogMetricsRepository) makeAPIRequest(ctx context.Context, creds *valueobject.APICredentials, path string, rawQuery string) ([]byte, error) {
	endpoint := r.baseURL + path
	if rawQuery != "" {
		endpoint += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.ErrMetricsAPIWithCause("create request", err)
	}

	req.Header.Set(headerAPIKey, creds.APIKey())
	req.Header.Set(headerApplicationKey, creds.AppKey())
	req.Header.Set("Accept", "application/json")

	r.logger.Debug(ctx, "Sending metrics request", domain.NewField("url", endpoint))

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, domain.ErrMetricsAPIWithCause("execute request", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.ErrMetricsAPIWithCause("read response body", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		r.logger.Error(ctx, "Metrics API returned an error status",
			domain.NewField("statusCode", resp.StatusCode))
		return nil, domain.ErrMetricsAPI(path, resp.StatusCode, truncate(string(body), maxErrorBodyLength))
	}

	return body, nil
}

// decodeMetricsResponse parses the response body, requiring data and every type and id to be present
func decodeMetricsResponse(body []byte) ([]*entity.MetricRecord, error) {
	var resp metricsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domain.ErrMetricsDecode("invalid JSON", err)
	}

	if resp.Data == nil {
		return nil, domain.ErrMetricsDecode("missing field data", nil)
	}

	records := make([]*entity.MetricRecord, 0, len(*resp.Data))
	for i, item := range *resp.Data {
		if item.Type == nil {
			return nil, domain.ErrMetricsDecode(fmt.Sprintf("missing field type at data[%d]", i), nil)
		}
		if item.ID == nil {
			return nil, domain.ErrMetricsDecode(fmt.Sprintf("missing field id at data[%d]", i), nil)
		}
		records = append(records, entity.NewMetricRecord(*item.Type, *item.ID))
	}

	return records, nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
