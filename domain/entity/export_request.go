package entity

import (
	"path/filepath"
	"time"
)

// ExportFilePrefix is the fixed prefix of every export file name
const ExportFilePrefix = "dd-unqueried-metrics-"

// exportDateLayout renders dates as DD-MM-YYYY
const exportDateLayout = "02-01-2006"

// ExportRequest describes where a run writes its CSV file.
// The date is captured once so the path does not change if the run spans midnight.
type ExportRequest struct {
	Date      time.Time
	OutputDir string
}

// NewExportRequest creates a new export request for the given local date
func NewExportRequest(date time.Time, outputDir string) *ExportRequest {
	if outputDir == "" {
		outputDir = "."
	}
	return &ExportRequest{
		Date:      date,
		OutputDir: outputDir,
	}
}

// FormattedDate returns the request date as DD-MM-YYYY
func (e *ExportRequest) FormattedDate() string {
	return e.Date.Format(exportDateLayout)
}

// GenerateFilename generates the file name for the export
func (e *ExportRequest) GenerateFilename() string {
	return ExportFilePrefix + e.FormattedDate() + ".csv"
}

// OutputPath returns the full path of the export file
func (e *ExportRequest) OutputPath() string {
	if e.OutputDir == "." {
		return e.GenerateFilename()
	}
	return filepath.Join(e.OutputDir, e.GenerateFilename())
}
