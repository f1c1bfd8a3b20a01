package presenter

import (
	"fmt"
	"io"
)

// ConsolePresenterImpl implements ConsolePresenter for terminal output
type ConsolePresenterImpl struct {
	writer    io.Writer
	errWriter io.Writer
}

// NewConsolePresenter creates a console presenter writing progress to writer and errors to errWriter
func NewConsolePresenter(writer, errWriter io.Writer) *ConsolePresenterImpl {
	return &ConsolePresenterImpl{
		writer:    writer,
		errWriter: errWriter,
	}
}

// PrintError prints an error message
func (p *ConsolePresenterImpl) PrintError(err error) {
	_, _ = fmt.Fprintf(p.errWriter, "Error: %v\n", err)
}

// PrintLoading announces the catalog request
func (p *ConsolePresenterImpl) PrintLoading() {
	_, _ = fmt.Fprintln(p.writer, "Loading unqueried metrics...")
}

// PrintMetricID echoes a metric id as it is written
func (p *ConsolePresenterImpl) PrintMetricID(id string) {
	_, _ = fmt.Fprintf(p.writer, "Writing Metric ID: %q\n", id)
}

// PrintSummary prints the final count
func (p *ConsolePresenterImpl) PrintSummary(count int) {
	_, _ = fmt.Fprintf(p.writer, "%d metrics found and exported.\n", count)
}
