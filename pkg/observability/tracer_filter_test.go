package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/arkast/pkg/observability"
)

func newTestProvider() (*tracetest.InMemoryExporter, trace.TracerProvider) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	return exporter, tp
}

func TestFilteringProvider_SuppressedTracer(t *testing.T) {
	t.Parallel()

	exporter, base := newTestProvider()
	fp := observability.NewFilteringTracerProvider(base)

	_, span := fp.Tracer(observability.TracerParser).Start(context.Background(), observability.SpanParse)
	span.End()

	assert.Empty(t, exporter.GetSpans())
}

func TestFilteringProvider_SuppressedSpan(t *testing.T) {
	t.Parallel()

	exporter, base := newTestProvider()
	fp := observability.NewFilteringTracerProvider(base)

	tracer := fp.Tracer(observability.TracerEngine)

	ctx, run := tracer.Start(context.Background(), observability.SpanPipelineRun)

	_, pass := tracer.Start(ctx, observability.SpanPass)
	pass.End()

	_, recheck := tracer.Start(ctx, observability.SpanRecheck)
	recheck.End()
	run.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)

	names := []string{spans[0].Name, spans[1].Name}
	assert.ElementsMatch(t, []string{observability.SpanPass, observability.SpanPipelineRun}, names)
}

func TestFilteringProvider_SuppressedSpanKeepsParent(t *testing.T) {
	t.Parallel()

	exporter, base := newTestProvider()
	fp := observability.NewFilteringTracerProvider(base)

	tracer := fp.Tracer(observability.TracerEngine)

	ctx, run := tracer.Start(context.Background(), observability.SpanPipelineRun)

	recheckCtx, recheck := tracer.Start(ctx, observability.SpanRecheck)
	_, pass := tracer.Start(recheckCtx, observability.SpanPass)
	pass.End()
	recheck.End()
	run.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)

	var passStub, runStub tracetest.SpanStub

	for _, s := range spans {
		switch s.Name {
		case observability.SpanPass:
			passStub = s
		case observability.SpanPipelineRun:
			runStub = s
		}
	}

	assert.Equal(t, runStub.SpanContext.TraceID(), passStub.SpanContext.TraceID())
}
