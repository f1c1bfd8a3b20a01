package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ca-srg/dd-unqueried-metrics/domain"
	"github.com/ca-srg/dd-unqueried-metrics/infrastructure/di"
	"github.com/ca-srg/dd-unqueried-metrics/interface/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse command line flags
	var (
		apiKey    = flag.String("api-key", "", "Datadog API key")
		appKey    = flag.String("app-key", "", "Datadog application key")
		debugMode = flag.Bool("debug", false, "Enable debug logging to stderr")
	)
	flag.Parse()

	// Create DI container with options
	opts := []di.ContainerOption{}
	if *debugMode {
		opts = append(opts, di.WithDebugMode(true))
	}

	container, err := di.NewContainer(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		return 1
	}
	defer func() {
		if err := container.Shutdown(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to shut down logging: %v\n", err)
		}
	}()

	// Cancel the in-flight request on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := container.CreateLogger("main")

	if err := container.GetCLIController().Run(ctx, cli.RunOptions{APIKey: *apiKey, AppKey: *appKey}); err != nil {
		logger.Error(ctx, "Export failed",
			domain.NewField("error", err.Error()),
			domain.NewField("code", string(domain.GetErrorCode(err))))
		container.GetConsolePresenter().PrintError(err)
		return 1
	}

	return 0
}
