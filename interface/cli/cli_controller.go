package cli

import (
	"context"
	"time"

	"github.com/ca-srg/dd-unqueried-metrics/domain"
	"github.com/ca-srg/dd-unqueried-metrics/domain/entity"
	"github.com/ca-srg/dd-unqueried-metrics/interface/presenter"
	usecase "github.com/ca-srg/dd-unqueried-metrics/usecase/interface"
)

// RunOptions carries the raw command-line credentials
type RunOptions struct {
	APIKey string
	AppKey string
}

// CLIController runs the export pipeline once
type CLIController struct {
	credentialService usecase.CredentialService
	metricsService    usecase.UnqueriedMetricsService
	consolePresenter  presenter.ConsolePresenter
	logger            domain.Logger
	outputDir         string
	now               func() time.Time
}

// NewCLIController creates a new CLI controller
func NewCLIController(
	credentialService usecase.CredentialService,
	metricsService usecase.UnqueriedMetricsService,
	consolePresenter presenter.ConsolePresenter,
	logger domain.Logger,
	outputDir string,
) *CLIController {
	return &CLIController{
		credentialService: credentialService,
		metricsService:    metricsService,
		consolePresenter:  consolePresenter,
		logger:            logger,
		outputDir:         outputDir,
		now:               time.Now,
	}
}

// SetClock replaces the clock used to date the export file
func (c *CLIController) SetClock(now func() time.Time) {
	c.now = now
}

// Run resolves credentials, fetches the unqueried metrics and exports them to CSV
func (c *CLIController) Run(ctx context.Context, opts RunOptions) error {
	// The export path is fixed before the request so a run spanning midnight keeps its date
	req := entity.NewExportRequest(c.now().Local(), c.outputDir)

	creds, err := c.credentialService.Resolve(ctx, opts.APIKey, opts.AppKey)
	if err != nil {
		return err
	}

	c.consolePresenter.PrintLoading()

	records, err := c.metricsService.FetchMetrics(ctx, creds)
	if err != nil {
		return err
	}

	result, err := c.metricsService.ExportMetrics(ctx, records, req, func(record *entity.MetricRecord) {
		c.consolePresenter.PrintMetricID(record.ID)
	})
	if err != nil {
		return err
	}

	c.consolePresenter.PrintSummary(result.MetricCount)

	c.logger.Info(ctx, "Run finished",
		domain.NewField("outputPath", result.OutputPath),
		domain.NewField("metricCount", result.MetricCount))

	return nil
}
