package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/Sumatoshi-tech/arkast/pkg/observability"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics

	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]metricdata.Metrics)

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}

	return out
}

func sumOf(t *testing.T, m metricdata.Metrics) int64 {
	t.Helper()

	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "%s is not an int64 sum", m.Name)

	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}

	return total
}

func TestEngineMetrics_RecordPass(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	em, err := observability.NewEngineMetrics(mp.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()

	em.RecordPass(ctx, observability.PassStats{
		Pass:      "rename",
		Phase:     "parsed",
		Duration:  3 * time.Millisecond,
		Visited:   12,
		Rebuilt:   4,
		Shared:    8,
		CacheHits: 20,
	})
	em.RecordPass(ctx, observability.PassStats{
		Pass:     "constfold",
		Phase:    "checked",
		Duration: time.Millisecond,
		Visited:  5,
		Rechecks: 1,
		Failed:   true,
	})

	metrics := collect(t, reader)

	assert.Equal(t, int64(2), sumOf(t, metrics["arkast.passes.total"]))
	assert.Equal(t, int64(17), sumOf(t, metrics["arkast.nodes.visited.total"]))
	assert.Equal(t, int64(4), sumOf(t, metrics["arkast.nodes.rebuilt.total"]))
	assert.Equal(t, int64(8), sumOf(t, metrics["arkast.updates.shared.total"]))
	assert.Equal(t, int64(20), sumOf(t, metrics["arkast.cache.hits.total"]))
	assert.Equal(t, int64(1), sumOf(t, metrics["arkast.rechecks.total"]))
	assert.Equal(t, int64(1), sumOf(t, metrics["arkast.errors.total"]))

	hist, ok := metrics["arkast.pass.duration.seconds"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)

	var count uint64
	for _, dp := range hist.DataPoints {
		count += dp.Count
	}

	assert.Equal(t, uint64(2), count)
}

func TestEngineMetrics_NilReceiver(t *testing.T) {
	t.Parallel()

	var em *observability.EngineMetrics

	assert.NotPanics(t, func() {
		em.RecordPass(context.Background(), observability.PassStats{Pass: "noop"})
	})
}
