// Package config provides configuration loading and validation for arkast.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidLogFormat   = errors.New("invalid log format")
	ErrInvalidSampleRatio = errors.New("sample ratio must be within [0, 1]")
	ErrInvalidLanguage    = errors.New("invalid engine language")
	ErrInvalidSourceSize  = errors.New("max source size must not be negative")
	ErrInvalidRename      = errors.New("rename entries must look like old=new")
)

// EnvPrefix prefixes environment overrides, e.g. ARKAST_ENGINE_RECHECK.
const EnvPrefix = "ARKAST"

// Config holds all configuration for arkast.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Engine    EngineConfig    `mapstructure:"engine"`
	// Rename holds old=new identifier pairs for the rename pass. A list is
	// used because viper lowercases map keys.
	Rename []string `mapstructure:"rename"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TelemetryConfig holds tracing and metrics export configuration.
type TelemetryConfig struct {
	OTLPHeaders     map[string]string `mapstructure:"otlp_headers"`
	OTLPEndpoint    string            `mapstructure:"otlp_endpoint"`
	MetricsTextfile string            `mapstructure:"metrics_textfile"`
	Environment     string            `mapstructure:"environment"`
	SampleRatio     float64           `mapstructure:"sample_ratio"`
	ShutdownTimeout time.Duration     `mapstructure:"shutdown_timeout"`
	OTLPInsecure    bool              `mapstructure:"otlp_insecure"`
	DebugTrace      bool              `mapstructure:"debug_trace"`
}

// EngineConfig holds parser and pipeline configuration.
type EngineConfig struct {
	// Language forces a grammar; empty detects it from the file.
	Language      string   `mapstructure:"language"`
	Passes        []string `mapstructure:"passes"`
	StripCallees  []string `mapstructure:"strip_callees"`
	MaxSourceSize int      `mapstructure:"max_source_size"`
	Recheck       bool     `mapstructure:"recheck"`
	Strict        bool     `mapstructure:"strict"`
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
	languages  = []string{"", "typescript", "ts", "ets", "arkts", "tsx"}
)

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(".arkast")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("$HOME")
	}

	viperCfg.SetEnvPrefix(EnvPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.format", DefaultLogFormat)

	viperCfg.SetDefault("telemetry.sample_ratio", DefaultSampleRatio)
	viperCfg.SetDefault("telemetry.shutdown_timeout", DefaultShutdownTimeout)
	viperCfg.SetDefault("telemetry.environment", DefaultEnvironment)

	viperCfg.SetDefault("engine.language", "")
	viperCfg.SetDefault("engine.passes", []string{})
	viperCfg.SetDefault("engine.recheck", DefaultRecheck)
	viperCfg.SetDefault("engine.strict", false)
	viperCfg.SetDefault("engine.max_source_size", DefaultMaxSourceSize)
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if !slices.Contains(logLevels, strings.ToLower(config.Logging.Level)) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, config.Logging.Level)
	}

	if !slices.Contains(logFormats, strings.ToLower(config.Logging.Format)) {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Logging.Format)
	}

	if config.Telemetry.SampleRatio < 0 || config.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRatio, config.Telemetry.SampleRatio)
	}

	if !slices.Contains(languages, strings.ToLower(config.Engine.Language)) {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, config.Engine.Language)
	}

	if config.Engine.MaxSourceSize < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSourceSize, config.Engine.MaxSourceSize)
	}

	_, err := ParseRenames(config.Rename)

	return err
}

// ParseRenames turns old=new pairs into a map. Later pairs win.
func ParseRenames(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		from, to, ok := strings.Cut(pair, "=")

		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRename, pair)
		}

		out[from] = to
	}

	return out, nil
}

// SlogLevel returns the configured log level.
func (c LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// JSON reports whether logs are written as JSON.
func (c LoggingConfig) JSON() bool {
	return strings.EqualFold(c.Format, "json")
}
