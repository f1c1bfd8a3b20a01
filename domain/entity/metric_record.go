package entity

// MetricRecord is a single entry of the metrics catalog as returned by the API
type MetricRecord struct {
	// Type is the metric classification reported by the API (count, gauge, ...).
	// It is decoded but not exported.
	Type string `json:"type"`

	// ID is the metric name
	ID string `json:"id"`
}

// NewMetricRecord creates a new MetricRecord
func NewMetricRecord(metricType, id string) *MetricRecord {
	return &MetricRecord{
		Type: metricType,
		ID:   id,
	}
}

// MetricIDs returns the ids of the given records in order
func MetricIDs(records []*MetricRecord) []string {
	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}
	return ids
}
