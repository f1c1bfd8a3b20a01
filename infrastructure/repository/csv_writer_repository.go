package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/ca-srg/dd-unqueried-metrics/domain"
	"github.com/ca-srg/dd-unqueried-metrics/domain/entity"
	"github.com/ca-srg/dd-unqueried-metrics/domain/repository"
)

// csvHeader names the single exported column
var csvHeader = []string{"id"}

// CSVWriterRepositoryImpl implements CSVWriterRepository
type CSVWriterRepositoryImpl struct {
	logger domain.Logger
}

// NewCSVWriterRepository creates a new CSV writer repository
func NewCSVWriterRepository(logger domain.Logger) repository.CSVWriterRepository {
	return &CSVWriterRepositoryImpl{
		logger: logger,
	}
}

// Write writes the metric ids to a CSV file, replacing any existing file.
// On failure the partially written file is removed.
func (r *CSVWriterRepositoryImpl) Write(records []*entity.MetricRecord, outputPath string, onRow repository.RowWrittenFunc) (count int, err error) {
	file, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return 0, domain.ErrFileOperationWithCause("create file", outputPath, err)
	}

	closed := false
	defer func() {
		if !closed {
			_ = file.Close()
		}
		if err != nil {
			count = 0
			if removeErr := os.Remove(outputPath); removeErr != nil && !os.IsNotExist(removeErr) {
				r.logger.Error(context.TODO(), "Failed to remove partial CSV file",
					domain.NewField("error", removeErr.Error()),
					domain.NewField("path", outputPath))
			}
		}
	}()

	writer := csv.NewWriter(file)

	if err := writer.Write(csvHeader); err != nil {
		return 0, domain.ErrCSVExportWithCause("write header", "failed to write CSV header", err)
	}

	// Only the id is exported; the metric type stays in memory
	for _, record := range records {
		if err := writeIDRow(writer, file, record.ID); err != nil {
			return 0, domain.ErrCSVExportWithCause("write record", fmt.Sprintf("failed to write metric %q", record.ID), err)
		}
		count++
		if onRow != nil {
			onRow(record)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, domain.ErrCSVExportWithCause("flush", "failed to flush CSV writer", err)
	}

	closed = true
	if err := file.Close(); err != nil {
		return 0, domain.ErrFileOperationWithCause("close file", outputPath, err)
	}

	r.logger.Debug(context.TODO(), "CSV file written",
		domain.NewField("outputPath", outputPath),
		domain.NewField("records", count))

	return count, nil
}

// writeIDRow writes a single-column row. encoding/csv leaves a lone empty
// field unquoted, which readers skip as a blank line, so an empty id is
// written as "" directly after flushing the buffered rows.
func writeIDRow(writer *csv.Writer, out io.Writer, id string) error {
	if id != "" {
		return writer.Write([]string{id})
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	_, err := io.WriteString(out, "\"\"\n")
	return err
}
