package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Netflix/go-env"
)

// DatadogConfig holds Datadog API client configuration
type DatadogConfig struct {
	// APIURL is the base URL of the Datadog API (site specific)
	APIURL string `json:"api_url,omitempty" env:"DD_UNQUERIED_API_URL,default=https://api.datadoghq.com"`

	// TimeoutSec is the timeout in seconds for the metrics request
	TimeoutSec int `json:"timeout_seconds,omitempty" env:"DD_UNQUERIED_API_TIMEOUT,default=30"`
}

// Timeout returns the request timeout as a duration
func (d *DatadogConfig) Timeout() time.Duration {
	return time.Duration(d.TimeoutSec) * time.Second
}

// ExportConfig holds CSV export configuration
type ExportConfig struct {
	// OutputDir is the directory the dated CSV file is written to
	OutputDir string `json:"output_dir,omitempty" env:"DD_UNQUERIED_OUTPUT_DIR,default=."`
}

// PromtailConfig holds Promtail logging configuration
type PromtailConfig struct {
	// URL is the Loki push endpoint URL. Log shipping is disabled when empty.
	URL string `json:"url,omitempty" env:"DD_UNQUERIED_LOKI_URL"`

	// Username is the username for basic authentication
	Username string `json:"username,omitempty" env:"DD_UNQUERIED_LOKI_USERNAME"`

	// Password is the password for basic authentication
	Password string `json:"password,omitempty" env:"DD_UNQUERIED_LOKI_PASSWORD"`

	// BatchWaitSeconds is the time to wait before sending a batch
	BatchWaitSeconds int `json:"batch_wait_seconds,omitempty" env:"DD_UNQUERIED_LOKI_BATCH_WAIT_SECONDS,default=1"`
}

// Enabled reports whether logs should be shipped to Loki
func (p *PromtailConfig) Enabled() bool {
	return p != nil && p.URL != ""
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `json:"level,omitempty" env:"DD_UNQUERIED_LOG_LEVEL,default=info"`

	// Debug mirrors log entries to stderr
	Debug bool `json:"debug,omitempty" env:"DD_UNQUERIED_LOG_DEBUG,default=false"`

	// Promtail holds Promtail configuration
	Promtail *PromtailConfig `json:"promtail,omitempty"`
}

// ConfigSource represents the source of a configuration value
type ConfigSource string

const (
	SourceDefault     ConfigSource = "default"
	SourceEnvironment ConfigSource = "env"
	SourceFlag        ConfigSource = "flag"
)

// ConfigSourceMap tracks the source of each configuration field
type ConfigSourceMap map[string]ConfigSource

// AppConfig holds application configuration.
// Datadog credentials are deliberately absent: they only come from flags or the prompt.
type AppConfig struct {
	// Datadog holds Datadog API configuration
	Datadog *DatadogConfig `json:"datadog,omitempty"`

	// Export holds CSV export configuration
	Export *ExportConfig `json:"export,omitempty"`

	// Logging holds logging configuration
	Logging *LoggingConfig `json:"logging,omitempty"`

	// ConfigSources tracks the source of each configuration field
	ConfigSources ConfigSourceMap `json:"-"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Datadog: &DatadogConfig{
			APIURL:     "https://api.datadoghq.com",
			TimeoutSec: 30,
		},
		Export: &ExportConfig{
			OutputDir: ".",
		},
		Logging: &LoggingConfig{
			Level: "info",
			Debug: false,
			Promtail: &PromtailConfig{
				BatchWaitSeconds: 1,
			},
		},
		ConfigSources: make(ConfigSourceMap),
	}
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	// Load environment variables using Netflix/go-env
	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadFromEnv loads configuration from the process environment
func (c *AppConfig) LoadFromEnv() error {
	es, err := env.EnvironToEnvSet(os.Environ())
	if err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	return c.LoadFromEnvSet(es)
}

// LoadFromEnvSet loads configuration from the given environment set
func (c *AppConfig) LoadFromEnvSet(es env.EnvSet) error {
	if c.ConfigSources == nil {
		c.ConfigSources = make(ConfigSourceMap)
	}

	// Nested structs are unmarshalled one by one, the same way for every section
	sections := []struct {
		name    string
		present bool
		target  interface{}
		fields  map[string]string
	}{
		{
			name:    "Datadog",
			present: c.Datadog != nil,
			target:  c.Datadog,
			fields: map[string]string{
				"Datadog.APIURL":     "DD_UNQUERIED_API_URL",
				"Datadog.TimeoutSec": "DD_UNQUERIED_API_TIMEOUT",
			},
		},
		{
			name:    "Export",
			present: c.Export != nil,
			target:  c.Export,
			fields: map[string]string{
				"Export.OutputDir": "DD_UNQUERIED_OUTPUT_DIR",
			},
		},
		{
			name:    "Logging",
			present: c.Logging != nil,
			target:  c.Logging,
			fields: map[string]string{
				"Logging.Level": "DD_UNQUERIED_LOG_LEVEL",
				"Logging.Debug": "DD_UNQUERIED_LOG_DEBUG",
			},
		},
	}

	for _, section := range sections {
		if !section.present {
			continue
		}
		if err := env.Unmarshal(es, section.target); err != nil {
			return fmt.Errorf("failed to unmarshal %s environment variables: %w", section.name, err)
		}
		c.trackEnvOverrides(es, section.fields)
	}

	// Special handling for Promtail nested struct
	if c.Logging != nil && c.Logging.Promtail != nil {
		if err := env.Unmarshal(es, c.Logging.Promtail); err != nil {
			return fmt.Errorf("failed to unmarshal Promtail environment variables: %w", err)
		}
		c.trackEnvOverrides(es, map[string]string{
			"Logging.Promtail.URL":              "DD_UNQUERIED_LOKI_URL",
			"Logging.Promtail.Username":         "DD_UNQUERIED_LOKI_USERNAME",
			"Logging.Promtail.Password":         "DD_UNQUERIED_LOKI_PASSWORD",
			"Logging.Promtail.BatchWaitSeconds": "DD_UNQUERIED_LOKI_BATCH_WAIT_SECONDS",
		})
	}

	return nil
}

// trackEnvOverrides records which fields were set from the environment
func (c *AppConfig) trackEnvOverrides(es env.EnvSet, fields map[string]string) {
	for field, key := range fields {
		if value, ok := es[key]; ok && value != "" {
			c.ConfigSources[field] = SourceEnvironment
		} else if _, tracked := c.ConfigSources[field]; !tracked {
			c.ConfigSources[field] = SourceDefault
		}
	}
}

// SetDebug enables debug logging from the --debug flag
func (c *AppConfig) SetDebug(debug bool) {
	if !debug || c.Logging == nil {
		return
	}
	c.Logging.Debug = true
	c.ConfigSources["Logging.Debug"] = SourceFlag
}

// Validate validates the configuration
func (c *AppConfig) Validate() error {
	// Validate Datadog configuration
	if c.Datadog != nil {
		if err := c.validateDatadog(); err != nil {
			return err
		}
	}

	// Validate Logging configuration
	if c.Logging != nil {
		if err := c.validateLogging(); err != nil {
			return err
		}
	}

	return nil
}

// validateDatadog validates Datadog configuration
func (c *AppConfig) validateDatadog() error {
	if c.Datadog.APIURL == "" {
		return fmt.Errorf("datadog API URL is required")
	}

	parsed, err := url.Parse(c.Datadog.APIURL)
	if err != nil {
		return fmt.Errorf("datadog API URL is invalid: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("datadog API URL must use http or https scheme")
	}
	if parsed.Host == "" {
		return fmt.Errorf("datadog API URL must have a host")
	}

	if c.Datadog.TimeoutSec < 1 {
		return fmt.Errorf("datadog API timeout must be at least 1 second")
	}

	return nil
}

// validateLogging validates Logging configuration
func (c *AppConfig) validateLogging() error {
	// Validate log level only if specified
	if c.Logging.Level != "" {
		validLevels := map[string]bool{
			"debug": true,
			"info":  true,
			"warn":  true,
			"error": true,
		}
		if !validLevels[strings.ToLower(c.Logging.Level)] {
			return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logging.Level)
		}
	}

	// Validate Promtail configuration
	if c.Logging.Promtail.Enabled() {
		if _, err := url.ParseRequestURI(c.Logging.Promtail.URL); err != nil {
			return fmt.Errorf("promtail URL is invalid: %w", err)
		}

		if c.Logging.Promtail.BatchWaitSeconds < 1 {
			return fmt.Errorf("promtail batch wait must be at least 1 second")
		}
	}

	return nil
}
