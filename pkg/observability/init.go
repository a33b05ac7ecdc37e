package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	noopmetric "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

const meterName = "arkast"

// Providers holds the initialized observability providers.
type Providers struct {
	// Tracer is the engine tracer.
	Tracer trace.Tracer

	// Meter is the engine meter.
	Meter metric.Meter

	// Logger is the context-aware structured logger.
	Logger *slog.Logger

	// Prometheus is the in-process reader, nil unless a metrics textfile is
	// configured.
	Prometheus *PrometheusReader

	// Shutdown flushes all pending telemetry and releases resources.
	// Must be called before process exit.
	Shutdown func(ctx context.Context) error

	metricsTextfile string
}

// WriteMetrics writes the Prometheus snapshot to the configured textfile. It
// does nothing when no textfile is configured.
func (p Providers) WriteMetrics() error {
	if p.Prometheus == nil || p.metricsTextfile == "" {
		return nil
	}

	return p.Prometheus.WriteTextfile(p.metricsTextfile)
}

// Init sets up tracing, metrics and structured logging and installs the
// providers as the otel globals. Without an OTLP endpoint traces are no-ops,
// and metrics are too unless a textfile is set.
func Init(cfg Config) (Providers, error) {
	ctx := context.Background()

	var stack teardown

	fail := func(err error) (Providers, error) {
		return Providers{}, errors.Join(err, stack.run(ctx))
	}

	res, err := buildResource(cfg)
	if err != nil {
		return fail(err)
	}

	tp, err := buildTracerProvider(ctx, cfg, res, &stack)
	if err != nil {
		return fail(fmt.Errorf("build tracer provider: %w", err))
	}

	var prom *PrometheusReader

	if cfg.MetricsTextfile != "" {
		prom, err = NewPrometheusReader()
		if err != nil {
			return fail(err)
		}
	}

	mp, err := buildMeterProvider(ctx, cfg, res, prom, &stack)
	if err != nil {
		return fail(fmt.Errorf("build meter provider: %w", err))
	}

	if cfg.OTLPEndpoint != "" && !cfg.TraceVerbose {
		tp = NewFilteringTracerProvider(tp)
	}

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return Providers{
		Tracer:          tp.Tracer(TracerEngine),
		Meter:           mp.Meter(meterName),
		Logger:          buildLogger(cfg),
		Prometheus:      prom,
		Shutdown:        stack.shutdown(cfg.shutdownTimeout()),
		metricsTextfile: cfg.MetricsTextfile,
	}, nil
}

// teardown collects provider shutdowns. They run in reverse registration
// order so metrics flush after the spans that produced them.
type teardown []func(context.Context) error

func (t *teardown) add(fn func(context.Context) error) { *t = append(*t, fn) }

func (t teardown) run(ctx context.Context) error {
	errs := make([]error, 0, len(t))
	for idx := len(t) - 1; idx >= 0; idx-- {
		errs = append(errs, t[idx](ctx))
	}

	return errors.Join(errs...)
}

func (t teardown) shutdown(timeout time.Duration) func(context.Context) error {
	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		return t.run(ctx)
	}
}

func buildResource(cfg Config) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{semconv.ServiceName(cfg.ServiceName)}

	if cfg.ServiceVersion != "" {
		attrs = append(attrs, semconv.ServiceVersion(cfg.ServiceVersion))
	}

	if cfg.Environment != "" {
		attrs = append(attrs, semconv.DeploymentEnvironment(cfg.Environment))
	}

	if cfg.Mode != "" {
		attrs = append(attrs, attribute.String("app.mode", string(cfg.Mode)))
	}

	res, err := resource.New(context.Background(), resource.WithAttributes(attrs...))
	if err != nil {
		return nil, fmt.Errorf("build otel resource: %w", err)
	}

	return res, nil
}

func buildTracerProvider(
	ctx context.Context, cfg Config, res *resource.Resource, stack *teardown,
) (trace.TracerProvider, error) {
	if cfg.OTLPEndpoint == "" {
		return nooptrace.NewTracerProvider(), nil
	}

	exporter, err := targetOf(cfg).traceExporter(ctx)
	if err != nil {
		return nil, err
	}

	var redactLog *slog.Logger
	if cfg.DebugTrace {
		redactLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}

	processor := NewRedactingProcessor(sdktrace.NewBatchSpanProcessor(exporter), RedactOptions{Logger: redactLog})

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(processor),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(selectSampler(cfg, os.Getenv)),
	)
	stack.add(tp.Shutdown)

	return tp, nil
}

func buildMeterProvider(
	ctx context.Context, cfg Config, res *resource.Resource, prom *PrometheusReader, stack *teardown,
) (metric.MeterProvider, error) {
	if cfg.OTLPEndpoint == "" && prom == nil {
		return noopmetric.NewMeterProvider(), nil
	}

	opts := []sdkmetric.Option{sdkmetric.WithResource(res)}

	if prom != nil {
		opts = append(opts, sdkmetric.WithReader(prom.Exporter))
	}

	if cfg.OTLPEndpoint != "" {
		exporter, err := targetOf(cfg).metricExporter(ctx)
		if err != nil {
			return nil, err
		}

		opts = append(opts, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)))
	}

	mp := sdkmetric.NewMeterProvider(opts...)
	stack.add(mp.Shutdown)

	return mp, nil
}

func buildLogger(cfg Config) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: cfg.LogLevel}

	var inner slog.Handler
	if cfg.LogJSON {
		inner = slog.NewJSONHandler(os.Stderr, handlerOpts)
	} else {
		inner = slog.NewTextHandler(os.Stderr, handlerOpts)
	}

	return slog.New(NewTracingHandler(inner, cfg.ServiceName, cfg.Environment, cfg.Mode))
}
