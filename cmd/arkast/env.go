package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Sumatoshi-tech/arkast/pkg/ast"
	"github.com/Sumatoshi-tech/arkast/pkg/config"
	"github.com/Sumatoshi-tech/arkast/pkg/observability"
	"github.com/Sumatoshi-tech/arkast/pkg/parser"
	"github.com/Sumatoshi-tech/arkast/pkg/version"
)

// runtimeEnv is what every command runs with: the loaded configuration and
// the telemetry providers built from it.
type runtimeEnv struct {
	cfg       *config.Config
	providers observability.Providers
	metrics   *observability.EngineMetrics
}

func setupEnv(configPath string, debug bool, metricsTextfile string) (*runtimeEnv, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if metricsTextfile != "" {
		cfg.Telemetry.MetricsTextfile = metricsTextfile
	}

	providers, err := observability.Init(observabilityConfig(cfg, debug))
	if err != nil {
		return nil, fmt.Errorf("init observability: %w", err)
	}

	metrics, err := observability.NewEngineMetrics(providers.Meter)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("create engine metrics: %w", err), providers.Shutdown(context.Background()))
	}

	return &runtimeEnv{cfg: cfg, providers: providers, metrics: metrics}, nil
}

func observabilityConfig(cfg *config.Config, debug bool) observability.Config {
	obs := observability.DefaultConfig()

	obs.ServiceVersion = version.Version
	obs.Environment = cfg.Telemetry.Environment
	obs.OTLPEndpoint = cfg.Telemetry.OTLPEndpoint
	obs.OTLPHeaders = cfg.Telemetry.OTLPHeaders
	obs.OTLPInsecure = cfg.Telemetry.OTLPInsecure
	obs.MetricsTextfile = cfg.Telemetry.MetricsTextfile
	obs.DebugTrace = cfg.Telemetry.DebugTrace
	obs.SampleRatio = cfg.Telemetry.SampleRatio
	obs.LogLevel = cfg.Logging.SlogLevel()
	obs.LogJSON = cfg.Logging.JSON()
	obs.TraceVerbose = debug

	if timeout := int(cfg.Telemetry.ShutdownTimeout / time.Second); timeout > 0 {
		obs.ShutdownTimeoutSec = timeout
	}

	if debug {
		obs.LogLevel = slog.LevelDebug
	}

	return obs
}

func (e *runtimeEnv) logger() *slog.Logger { return e.providers.Logger }

// close writes the metrics snapshot and flushes telemetry.
func (e *runtimeEnv) close() error {
	ctx, cancel := context.WithTimeout(context.Background(), e.cfg.Telemetry.ShutdownTimeout)
	defer cancel()

	return errors.Join(e.providers.WriteMetrics(), e.providers.Shutdown(ctx))
}

func (e *runtimeEnv) parserOptions() []parser.Option {
	return []parser.Option{
		parser.WithLogger(e.logger()),
		parser.WithMaxSize(e.cfg.Engine.MaxSourceSize),
		parser.WithStrict(e.cfg.Engine.Strict),
	}
}

// source is one parsed input file.
type source struct {
	sess   *ast.Session
	result *parser.Result
	path   string
	text   []byte
}

// open reads and parses path. language overrides engine.language, which
// overrides detection from the file name.
func (e *runtimeEnv) open(ctx context.Context, path, language string) (*source, error) {
	text, resolved, err := safeReadFile(path)
	if err != nil {
		return nil, err
	}

	if language == "" {
		language = e.cfg.Engine.Language
	}

	var (
		sess *ast.Session
		res  *parser.Result
	)

	if language != "" {
		lang, langErr := parser.ParseLanguage(language)
		if langErr != nil {
			return nil, langErr
		}

		p, newErr := parser.New(lang, e.parserOptions()...)
		if newErr != nil {
			return nil, newErr
		}

		sess, res, err = p.Open(ctx, text)
	} else {
		sess, res, err = parser.Open(ctx, resolved, text, e.parserOptions()...)
	}

	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", resolved, err)
	}

	return &source{sess: sess, result: res, path: resolved, text: text}, nil
}

// withEnv runs fn inside a fresh runtime environment and always flushes it.
func withEnv(metricsTextfile string, fn func(env *runtimeEnv) error) (err error) {
	env, err := setupEnv(cfgFile, verbose, metricsTextfile)
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, env.close())
	}()

	return fn(env)
}
