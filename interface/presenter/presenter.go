package presenter

// ConsolePresenter handles console output formatting
type ConsolePresenter interface {
	PrintError(err error)

	// Run progress
	PrintLoading()
	PrintMetricID(id string)
	PrintSummary(count int)
}
