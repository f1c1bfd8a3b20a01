package repository

import (
	"github.com/ca-srg/dd-unqueried-metrics/domain/entity"
)

// RowWrittenFunc is called after each record has been written
type RowWrittenFunc func(record *entity.MetricRecord)

// CSVWriterRepository defines the interface for writing CSV files
type CSVWriterRepository interface {
	// Write creates or truncates outputPath and writes one row per record.
	// It returns the number of rows written, excluding the header.
	Write(records []*entity.MetricRecord, outputPath string, onRow RowWrittenFunc) (int, error)
}
