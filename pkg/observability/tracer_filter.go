package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/embedded"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

// Tracer and span names emitted by the engine.
const (
	TracerEngine = "arkast"
	TracerParser = "arkast.parser"

	SpanPipelineRun = "arkast.pipeline.run"
	SpanPass        = "arkast.pass"
	SpanRecheck     = "arkast.recheck"
	SpanParse       = "arkast.parse"
)

// filteringTracerProvider drops per-file and per-recheck spans unless
// verbose tracing is on. Whole tracers or single span names can be muted.
type filteringTracerProvider struct {
	embedded.TracerProvider

	delegate          trace.TracerProvider
	noop              trace.TracerProvider
	suppressedTracers map[string]bool
	suppressedSpans   map[string]bool
}

// NewFilteringTracerProvider wraps delegate so that parser spans and recheck
// spans become no-ops while pipeline and pass spans are kept.
func NewFilteringTracerProvider(delegate trace.TracerProvider) trace.TracerProvider {
	return &filteringTracerProvider{
		delegate:          delegate,
		noop:              nooptrace.NewTracerProvider(),
		suppressedTracers: map[string]bool{TracerParser: true},
		suppressedSpans:   map[string]bool{SpanRecheck: true},
	}
}

// Tracer returns a tracer for the given name, muting suppressed tracers.
func (f *filteringTracerProvider) Tracer(name string, opts ...trace.TracerOption) trace.Tracer {
	if f.suppressedTracers[name] {
		return f.noop.Tracer(name, opts...)
	}

	actual := f.delegate.Tracer(name, opts...)

	if len(f.suppressedSpans) == 0 {
		return actual
	}

	return &filteringTracer{
		delegate: actual,
		noop:     f.noop.Tracer(name, opts...),
		suppress: f.suppressedSpans,
	}
}

type filteringTracer struct {
	embedded.Tracer

	delegate trace.Tracer
	noop     trace.Tracer
	suppress map[string]bool
}

// Start creates a span, returning a noop span for suppressed names.
func (f *filteringTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if f.suppress[name] {
		return f.noop.Start(ctx, name, opts...)
	}

	return f.delegate.Start(ctx, name, opts...)
}
