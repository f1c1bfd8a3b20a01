package di

import (
	"fmt"
	"io"
	"os"

	"github.com/ca-srg/dd-unqueried-metrics/domain"
	"github.com/ca-srg/dd-unqueried-metrics/domain/repository"
	"github.com/ca-srg/dd-unqueried-metrics/infrastructure/config"
	"github.com/ca-srg/dd-unqueried-metrics/infrastructure/logging"
	infraRepo "github.com/ca-srg/dd-unqueried-metrics/infrastructure/repository"
	"github.com/ca-srg/dd-unqueried-metrics/interface/cli"
	"github.com/ca-srg/dd-unqueried-metrics/interface/presenter"
	"github.com/ca-srg/dd-unqueried-metrics/usecase/impl"
	usecase "github.com/ca-srg/dd-unqueried-metrics/usecase/interface"
)

// Container is the dependency injection container
type Container struct {
	// Configuration
	config *config.AppConfig

	// Repositories
	metricsAPIRepo   repository.MetricsAPIRepository
	csvWriterRepo    repository.CSVWriterRepository
	credentialPrompt repository.CredentialPromptRepository

	// Use Cases
	credentialService usecase.CredentialService
	metricsService    usecase.UnqueriedMetricsService

	// Presenters
	consolePresenter presenter.ConsolePresenter

	// Controllers
	cliController *cli.CLIController

	// Logging
	loggerFactory domain.LoggerFactory
	logger        domain.Logger

	// Options
	debugMode bool
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
}

// ContainerOption is a function that configures the container
type ContainerOption func(*Container)

// WithDebugMode sets the debug mode
func WithDebugMode(debug bool) ContainerOption {
	return func(c *Container) {
		c.debugMode = debug
	}
}

// WithConfig uses the given configuration instead of loading it from the environment
func WithConfig(cfg *config.AppConfig) ContainerOption {
	return func(c *Container) {
		c.config = cfg
	}
}

// WithIO replaces the standard streams used for prompts and console output
func WithIO(stdin io.Reader, stdout, stderr io.Writer) ContainerOption {
	return func(c *Container) {
		c.stdin = stdin
		c.stdout = stdout
		c.stderr = stderr
	}
}

// NewContainer creates a new DI container
func NewContainer(opts ...ContainerOption) (*Container, error) {
	container := &Container{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	// Apply options
	for _, opt := range opts {
		opt(container)
	}

	// Load configuration
	if err := container.initConfig(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logging
	if err := container.initLogging(); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Initialize repositories
	container.initRepositories()

	// Initialize use cases
	container.initUseCases()

	// Initialize presenters
	container.initPresenters()

	// Initialize controllers
	container.initControllers()

	return container, nil
}

// initConfig initializes configuration
func (c *Container) initConfig() error {
	if c.config == nil {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		c.config = cfg
	} else if err := c.config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.config.ConfigSources == nil {
		c.config.ConfigSources = make(config.ConfigSourceMap)
	}

	// Ensure every section exists so later wiring never dereferences nil
	defaults := config.DefaultConfig()
	if c.config.Datadog == nil {
		c.config.Datadog = defaults.Datadog
	}
	if c.config.Export == nil {
		c.config.Export = defaults.Export
	}
	if c.config.Logging == nil {
		c.config.Logging = defaults.Logging
	}

	c.config.SetDebug(c.debugMode)

	return nil
}

// initLogging initializes logging
func (c *Container) initLogging() error {
	loggerFactory, err := logging.NewLoggerFactory(c.config.Logging)
	if err != nil {
		return err
	}
	c.loggerFactory = loggerFactory

	// Create main logger for the container
	c.logger = c.loggerFactory.CreateLogger("dd-unqueried-metrics")

	return nil
}

// initRepositories initializes repository implementations
func (c *Container) initRepositories() {
	c.metricsAPIRepo = infraRepo.NewDatadogMetricsRepository(
		c.config.Datadog.APIURL,
		c.config.Datadog.Timeout(),
		c.loggerFactory.CreateLogger("datadog"),
	)
	c.csvWriterRepo = infraRepo.NewCSVWriterRepository(c.loggerFactory.CreateLogger("csv"))
	c.credentialPrompt = infraRepo.NewStdinCredentialPromptRepository(c.stdin, c.stdout)
}

// initUseCases initializes use case implementations
func (c *Container) initUseCases() {
	c.credentialService = impl.NewCredentialService(
		c.credentialPrompt,
		c.loggerFactory.CreateLogger("credentials"),
	)
	c.metricsService = impl.NewUnqueriedMetricsService(
		c.metricsAPIRepo,
		c.csvWriterRepo,
		c.loggerFactory.CreateLogger("metrics"),
	)
}

// initPresenters initializes presenters
func (c *Container) initPresenters() {
	c.consolePresenter = presenter.NewConsolePresenter(c.stdout, c.stderr)
}

// initControllers initializes controllers
func (c *Container) initControllers() {
	c.cliController = cli.NewCLIController(
		c.credentialService,
		c.metricsService,
		c.consolePresenter,
		c.loggerFactory.CreateLogger("cli"),
		c.config.Export.OutputDir,
	)
}

// GetConfig returns the application configuration
func (c *Container) GetConfig() *config.AppConfig {
	return c.config
}

// GetCredentialService returns the credential service
func (c *Container) GetCredentialService() usecase.CredentialService {
	return c.credentialService
}

// GetMetricsService returns the unqueried metrics service
func (c *Container) GetMetricsService() usecase.UnqueriedMetricsService {
	return c.metricsService
}

// GetConsolePresenter returns the console presenter
func (c *Container) GetConsolePresenter() presenter.ConsolePresenter {
	return c.consolePresenter
}

// GetCLIController returns the CLI controller
func (c *Container) GetCLIController() *cli.CLIController {
	return c.cliController
}

// GetLoggerFactory returns the logger factory
func (c *Container) GetLoggerFactory() domain.LoggerFactory {
	return c.loggerFactory
}

// GetLogger returns the main logger
func (c *Container) GetLogger() domain.Logger {
	return c.logger
}

// CreateLogger creates a new logger for a specific component
func (c *Container) CreateLogger(component string) domain.Logger {
	if c.loggerFactory == nil {
		return &logging.NoOpLogger{}
	}
	return c.loggerFactory.CreateLogger(component)
}

// Shutdown flushes buffered log entries
func (c *Container) Shutdown() error {
	if c.loggerFactory == nil {
		return nil
	}
	return c.loggerFactory.Shutdown()
}
