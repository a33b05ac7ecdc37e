package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricPassesTotal   = "arkast.passes.total"
	metricPassDuration  = "arkast.pass.duration.seconds"
	metricNodesVisited  = "arkast.nodes.visited.total"
	metricNodesRebuilt  = "arkast.nodes.rebuilt.total"
	metricNodesCreated  = "arkast.nodes.created.total"
	metricUpdatesShared = "arkast.updates.shared.total"
	metricCacheHits     = "arkast.cache.hits.total"
	metricCacheMisses   = "arkast.cache.misses.total"
	metricRechecksTotal = "arkast.rechecks.total"
	metricErrorsTotal   = "arkast.errors.total"

	attrPass   = "pass.name"
	attrPhase  = "pass.phase"
	attrStatus = "pass.status"

	statusOK    = "ok"
	statusError = "error"
)

// passBucketBoundaries covers 100us to 10s; a pass is one tree walk.
var passBucketBoundaries = []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10}

// EngineMetrics holds the OTel instruments of the rewriting engine.
type EngineMetrics struct {
	passesTotal   metric.Int64Counter
	passDuration  metric.Float64Histogram
	nodesVisited  metric.Int64Counter
	nodesRebuilt  metric.Int64Counter
	nodesCreated  metric.Int64Counter
	updatesShared metric.Int64Counter
	cacheHits     metric.Int64Counter
	cacheMisses   metric.Int64Counter
	rechecks      metric.Int64Counter
	errorsTotal   metric.Int64Counter
}

// PassStats describes one completed pass, decoupled from engine types.
type PassStats struct {
	Pass        string
	Phase       string
	Duration    time.Duration
	Visited     int64
	Rebuilt     int64
	Created     int64
	Shared      int64
	CacheHits   int64
	CacheMisses int64
	Rechecks    int64
	Failed      bool
}

// NewEngineMetrics creates the engine instruments from the given meter.
func NewEngineMetrics(mt metric.Meter) (*EngineMetrics, error) {
	b := &instruments{meter: mt}

	em := &EngineMetrics{
		passesTotal:   b.counter(metricPassesTotal, "Passes run", "{pass}"),
		passDuration:  b.histogram(metricPassDuration, "Pass duration in seconds", "s", passBucketBoundaries...),
		nodesVisited:  b.counter(metricNodesVisited, "Nodes handed to a visit function", "{node}"),
		nodesRebuilt:  b.counter(metricNodesRebuilt, "Native nodes reallocated by updates", "{node}"),
		nodesCreated:  b.counter(metricNodesCreated, "Native nodes allocated by passes", "{node}"),
		updatesShared: b.counter(metricUpdatesShared, "Updates that kept the original node", "{update}"),
		cacheHits:     b.counter(metricCacheHits, "Identity cache hits", "{hit}"),
		cacheMisses:   b.counter(metricCacheMisses, "Identity cache misses", "{miss}"),
		rechecks:      b.counter(metricRechecksTotal, "Subtree rechecks requested", "{recheck}"),
		errorsTotal:   b.counter(metricErrorsTotal, "Failed passes", "{error}"),
	}

	if err := b.err(); err != nil {
		return nil, err
	}

	return em, nil
}

// RecordPass records one pass. Safe to call on a nil receiver.
func (em *EngineMetrics) RecordPass(ctx context.Context, stats PassStats) {
	if em == nil {
		return
	}

	status := statusOK
	if stats.Failed {
		status = statusError
	}

	passAttrs := metric.WithAttributes(
		attribute.String(attrPass, stats.Pass),
		attribute.String(attrPhase, stats.Phase),
	)

	em.passesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrPass, stats.Pass),
		attribute.String(attrPhase, stats.Phase),
		attribute.String(attrStatus, status),
	))
	em.passDuration.Record(ctx, stats.Duration.Seconds(), passAttrs)
	em.nodesVisited.Add(ctx, stats.Visited, passAttrs)
	em.nodesRebuilt.Add(ctx, stats.Rebuilt, passAttrs)
	em.nodesCreated.Add(ctx, stats.Created, passAttrs)
	em.updatesShared.Add(ctx, stats.Shared, passAttrs)
	em.cacheHits.Add(ctx, stats.CacheHits, passAttrs)
	em.cacheMisses.Add(ctx, stats.CacheMisses, passAttrs)
	em.rechecks.Add(ctx, stats.Rechecks, passAttrs)

	if stats.Failed {
		em.errorsTotal.Add(ctx, 1, passAttrs)
	}
}
