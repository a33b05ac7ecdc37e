package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Sumatoshi-tech/arkast/pkg/observability"
)

// exportSpan ends one span carrying attrs and returns what the exporter saw.
func exportSpan(t *testing.T, opts observability.RedactOptions, attrs ...attribute.KeyValue) map[string]any {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(observability.NewRedactingProcessor(sdktrace.NewSimpleSpanProcessor(exporter), opts)),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	t.Cleanup(func() { require.NoError(t, tp.Shutdown(context.Background())) })

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.SetAttributes(attrs...)
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	out := make(map[string]any, len(spans[0].Attributes))
	for _, kv := range spans[0].Attributes {
		out[string(kv.Key)] = kv.Value.AsInterface()
	}

	return out
}

func TestRedactingProcessor_KeepsEngineAttributes(t *testing.T) {
	t.Parallel()

	attrs := exportSpan(t, observability.RedactOptions{},
		attribute.String("pass.name", "const-fold"),
		attribute.Int64("pass.visited", 100),
		attribute.String("session.id", "0b6c"),
		attribute.String("language", "typescript"),
		attribute.String("arkast.anything", "ok"),
	)

	assert.Equal(t, map[string]any{
		"pass.name":       "const-fold",
		"pass.visited":    int64(100),
		"session.id":      "0b6c",
		"language":        "typescript",
		"arkast.anything": "ok",
	}, attrs)
}

func TestRedactingProcessor_ReplacesSourceText(t *testing.T) {
	t.Parallel()

	attrs := exportSpan(t, observability.RedactOptions{},
		attribute.String("source.text", "const secret = 1"),
		attribute.String("node.text", "secret"),
		attribute.Int("source.bytes", 16),
	)

	assert.Equal(t, "[redacted 16 bytes]", attrs["source.text"])
	assert.Equal(t, "[redacted 6 bytes]", attrs["node.text"])
	assert.Equal(t, int64(16), attrs["source.bytes"])
}

func TestRedactingProcessor_DropsForeignKeysAndWarnsOnce(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	attrs := exportSpan(t, observability.RedactOptions{Logger: logger},
		attribute.String("user.id", "12345"),
		attribute.String("user.id", "67890"),
		attribute.String("error.type", "internal"),
	)

	assert.NotContains(t, attrs, "user.id")
	assert.Equal(t, "internal", attrs["error.type"])
	assert.Equal(t, 1, strings.Count(buf.String(), "user.id"))
}

func TestRedactingProcessor_TruncatesLongValues(t *testing.T) {
	t.Parallel()

	attrs := exportSpan(t, observability.RedactOptions{MaxValueLen: 4},
		attribute.String("error.message", "héllo world"),
		attribute.String("pass.name", "abcd"),
	)

	assert.Equal(t, "hél…", attrs["error.message"])
	assert.Equal(t, "abcd", attrs["pass.name"])
}
