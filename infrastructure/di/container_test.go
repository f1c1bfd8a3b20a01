package di

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ca-srg/dd-unqueried-metrics/infrastructure/config"
	"github.com/ca-srg/dd-unqueried-metrics/interface/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer_WiresComponents(t *testing.T) {
	cfg := config.DefaultConfig()

	container, err := NewContainer(WithConfig(cfg), WithDebugMode(true), WithIO(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}))
	require.NoError(t, err)
	defer func() { _ = container.Shutdown() }()

	assert.NotNil(t, container.GetCLIController())
	assert.NotNil(t, container.GetCredentialService())
	assert.NotNil(t, container.GetMetricsService())
	assert.NotNil(t, container.GetConsolePresenter())
	assert.NotNil(t, container.GetLoggerFactory())
	assert.NotNil(t, container.GetLogger())
	assert.NotNil(t, container.CreateLogger("test"))

	assert.True(t, container.GetConfig().Logging.Debug)
	assert.Equal(t, config.SourceFlag, container.GetConfig().ConfigSources["Logging.Debug"])
}

func TestNewContainer_InvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Datadog.TimeoutSec = 0

	container, err := NewContainer(WithConfig(cfg))

	require.Error(t, err)
	assert.Nil(t, container)
	assert.Contains(t, err.Error(), "failed to initialize config")
}

func TestNewContainer_FillsMissingSections(t *testing.T) {
	cfg := &config.AppConfig{}

	container, err := NewContainer(WithConfig(cfg))
	require.NoError(t, err)

	assert.Equal(t, "https://api.datadoghq.com", container.GetConfig().Datadog.APIURL)
	assert.Equal(t, ".", container.GetConfig().Export.OutputDir)
	assert.Equal(t, "info", container.GetConfig().Logging.Level)
}

func TestNewContainer_LoadsFromEnvironment(t *testing.T) {
	t.Setenv("DD_UNQUERIED_API_URL", "https://api.datadoghq.eu")
	t.Setenv("DD_UNQUERIED_OUTPUT_DIR", "/tmp/exports")

	container, err := NewContainer()
	require.NoError(t, err)

	assert.Equal(t, "https://api.datadoghq.eu", container.GetConfig().Datadog.APIURL)
	assert.Equal(t, "/tmp/exports", container.GetConfig().Export.OutputDir)
	assert.Equal(t, config.SourceEnvironment, container.GetConfig().ConfigSources["Datadog.APIURL"])
}

func TestContainer_RunExport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/metrics", r.URL.Path)
		assert.Equal(t, "abc123", r.Header.Get("DD-API-KEY"))
		_, _ = w.Write([]byte(`{"data":[{"type":"count","id":"x.y"}]}`))
	}))
	defer server.Close()

	outputDir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Datadog.APIURL = server.URL
	cfg.Export.OutputDir = outputDir

	stdout := &bytes.Buffer{}
	container, err := NewContainer(WithConfig(cfg), WithIO(strings.NewReader(""), stdout, &bytes.Buffer{}))
	require.NoError(t, err)

	controller := container.GetCLIController()
	controller.SetClock(func() time.Time { return time.Date(2024, 2, 29, 9, 0, 0, 0, time.Local) })

	err = controller.Run(context.Background(), cli.RunOptions{APIKey: "abc123", AppKey: "def456"})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(outputDir, "dd-unqueried-metrics-29-02-2024.csv"))
	require.NoError(t, err)
	assert.Equal(t, "id\nx.y\n", string(content))
	assert.Contains(t, stdout.String(), "1 metrics found and exported.")
	assert.NoError(t, container.Shutdown())
}
