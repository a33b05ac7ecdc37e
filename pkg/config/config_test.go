package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/arkast/pkg/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".arkast.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig_EmptyFile_UsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, config.DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, config.DefaultLogFormat, cfg.Logging.Format)
	assert.InDelta(t, config.DefaultSampleRatio, cfg.Telemetry.SampleRatio, 0.001)
	assert.Equal(t, config.DefaultShutdownTimeout, cfg.Telemetry.ShutdownTimeout)
	assert.Equal(t, config.DefaultRecheck, cfg.Engine.Recheck)
	assert.Equal(t, config.DefaultMaxSourceSize, cfg.Engine.MaxSourceSize)
	assert.Empty(t, cfg.Engine.Language)
	assert.Empty(t, cfg.Engine.Passes)
	assert.Empty(t, cfg.Rename)
}

func TestLoadConfig_ValidFile_Unmarshals(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `logging:
  level: debug
  format: json
telemetry:
  otlp_endpoint: "localhost:4317"
  otlp_insecure: true
  otlp_headers:
    x-team: compiler
  sample_ratio: 0.25
  metrics_textfile: "/tmp/arkast.prom"
  shutdown_timeout: 2s
engine:
  language: ets
  passes: [strip-calls, rename, const-fold]
  strip_callees: [hilog.debug]
  recheck: false
  strict: true
  max_source_size: 1024
rename:
  - oldName=newName
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.Logging.SlogLevel())
	assert.True(t, cfg.Logging.JSON())
	assert.Equal(t, "localhost:4317", cfg.Telemetry.OTLPEndpoint)
	assert.True(t, cfg.Telemetry.OTLPInsecure)
	assert.Equal(t, map[string]string{"x-team": "compiler"}, cfg.Telemetry.OTLPHeaders)
	assert.InDelta(t, 0.25, cfg.Telemetry.SampleRatio, 0.001)
	assert.Equal(t, "/tmp/arkast.prom", cfg.Telemetry.MetricsTextfile)
	assert.Equal(t, 2*time.Second, cfg.Telemetry.ShutdownTimeout)
	assert.Equal(t, "ets", cfg.Engine.Language)
	assert.Equal(t, []string{"strip-calls", "rename", "const-fold"}, cfg.Engine.Passes)
	assert.Equal(t, []string{"hilog.debug"}, cfg.Engine.StripCallees)
	assert.False(t, cfg.Engine.Recheck)
	assert.True(t, cfg.Engine.Strict)
	assert.Equal(t, 1024, cfg.Engine.MaxSourceSize)

	renames, err := config.ParseRenames(cfg.Rename)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"oldName": "newName"}, renames)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "log level", content: "logging:\n  level: loud\n", wantErr: config.ErrInvalidLogLevel},
		{name: "log format", content: "logging:\n  format: xml\n", wantErr: config.ErrInvalidLogFormat},
		{name: "sample ratio", content: "telemetry:\n  sample_ratio: 1.5\n", wantErr: config.ErrInvalidSampleRatio},
		{name: "language", content: "engine:\n  language: cobol\n", wantErr: config.ErrInvalidLanguage},
		{name: "source size", content: "engine:\n  max_source_size: -1\n", wantErr: config.ErrInvalidSourceSize},
		{name: "rename", content: "rename: [justaname]\n", wantErr: config.ErrInvalidRename},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.LoadConfig(writeConfig(t, tt.content))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadConfig_MalformedYAML_ReturnsError(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig(writeConfig(t, "engine:\n  passes: [invalid yaml\n"))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadConfig_ExplicitPath_NotFound_ReturnsError(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_PartialConfig_MergesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig(writeConfig(t, "engine:\n  strict: true\n"))
	require.NoError(t, err)

	assert.True(t, cfg.Engine.Strict)
	assert.True(t, cfg.Engine.Recheck)
	assert.Equal(t, config.DefaultLogLevel, cfg.Logging.Level)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("ARKAST_ENGINE_RECHECK", "false")
	t.Setenv("ARKAST_LOGGING_LEVEL", "warn")

	cfg, err := config.LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)

	assert.False(t, cfg.Engine.Recheck)
	assert.Equal(t, slog.LevelWarn, cfg.Logging.SlogLevel())
}

func TestParseRenames(t *testing.T) {
	t.Parallel()

	got, err := config.ParseRenames([]string{"a=b", " c = d ", "a=e"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "e", "c": "d"}, got)

	_, err = config.ParseRenames([]string{"=b"})
	require.ErrorIs(t, err, config.ErrInvalidRename)
}
