package ast_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Sumatoshi-tech/arkast/pkg/ast"
	"github.com/Sumatoshi-tech/arkast/pkg/native"
	"github.com/Sumatoshi-tech/arkast/pkg/observability"
)

// stringify replaces the number literal "2" with the string literal "2".
func stringify(sess *ast.Session) ast.Pass {
	return ast.PassFunc("stringify", ast.PhaseChecked, func(v *ast.Visitor, n ast.Node) (ast.Node, error) {
		lit, ok := n.(*ast.NumberLiteral)
		if !ok {
			return v.VisitEachChild(n)
		}

		typ, err := sess.TypeOf(lit)
		if err != nil {
			return nil, err
		}

		value, err := lit.Value()
		if err != nil || typ != "number" || value != "2" {
			return n, err
		}

		return ast.CreateStringLiteral(sess, value)
	})
}

func onePlusTwo(t *testing.T, sess *ast.Session) *ast.Program {
	t.Helper()

	return program(t, sess, exprStmt(t, sess, binary(t, sess, number(t, sess, "1"), "+", number(t, sess, "2"))))
}

func firstExpression(t *testing.T, root ast.Node) ast.Expression {
	t.Helper()

	prog, err := ast.As[*ast.Program](root)
	require.NoError(t, err)

	expr, err := statements(t, prog)[0].(*ast.ExpressionStatement).Expression()
	require.NoError(t, err)

	return expr
}

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestPipeline_RechecksCheckedEdits(t *testing.T) {
	t.Parallel()

	sess, svc := newSession(t)
	onePlusTwo(t, sess)

	root, err := ast.NewPipeline([]ast.Pass{stringify(sess)}).Run(context.Background(), sess)
	require.NoError(t, err)

	assert.Equal(t, native.StateChecked, sess.State())
	assert.Equal(t, 1, svc.Rechecks())
	assert.False(t, sess.NeedsRecheck())

	typ, err := sess.TypeOf(firstExpression(t, root))
	require.NoError(t, err)
	assert.Equal(t, "string", typ)
}

func TestPipeline_WithoutRecheckTypesAreStale(t *testing.T) {
	t.Parallel()

	sess, svc := newSession(t)
	onePlusTwo(t, sess)

	root, err := ast.NewPipeline([]ast.Pass{stringify(sess)}, ast.WithRecheck(false)).Run(context.Background(), sess)
	require.NoError(t, err)

	assert.Zero(t, svc.Rechecks())
	assert.True(t, sess.NeedsRecheck())

	sum := firstExpression(t, root)

	_, err = sess.TypeOf(sum)
	require.ErrorIs(t, err, ast.ErrUnchecked)

	require.NoError(t, sess.Recheck(root))

	typ, err := sess.TypeOf(sum)
	require.NoError(t, err)
	assert.Equal(t, "string", typ)
}

func TestPipeline_UnchangedTreeSkipsRecheck(t *testing.T) {
	t.Parallel()

	sess, svc := newSession(t)
	prog := onePlusTwo(t, sess)

	noop := ast.PassFunc("noop", ast.PhaseChecked, func(v *ast.Visitor, n ast.Node) (ast.Node, error) {
		return v.VisitEachChild(n)
	})

	root, err := ast.NewPipeline([]ast.Pass{noop}).Run(context.Background(), sess)
	require.NoError(t, err)
	assert.Same(t, prog, root)
	assert.Zero(t, svc.Rechecks())
}

func TestPipeline_FailureSpoilsSession(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)
	onePlusTwo(t, sess)

	boom := errors.New("boom")
	failing := ast.PassFunc("explode", ast.PhaseParsed, func(_ *ast.Visitor, _ ast.Node) (ast.Node, error) {
		return nil, boom
	})

	var logs bytes.Buffer

	pipeline := ast.NewPipeline([]ast.Pass{failing},
		ast.WithPipelineLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	_, err := pipeline.Run(context.Background(), sess)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "pass explode")
	assert.Contains(t, logs.String(), "pass failed")
	require.Error(t, sess.Spoiled())

	_, err = pipeline.Run(context.Background(), sess)
	require.ErrorIs(t, err, ast.ErrSpoiled)
}

func TestPipeline_RemovingRootFails(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)
	onePlusTwo(t, sess)

	drop := ast.PassFunc("drop", ast.PhaseParsed, func(_ *ast.Visitor, _ ast.Node) (ast.Node, error) {
		return nil, nil
	})

	_, err := ast.NewPipeline([]ast.Pass{drop}, ast.WithPipelineLogger(quietLogger())).Run(context.Background(), sess)
	require.ErrorIs(t, err, ast.ErrRequiredField)
}

func TestPipeline_NoRoot(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)

	noop := ast.PassFunc("noop", ast.PhaseParsed, func(_ *ast.Visitor, n ast.Node) (ast.Node, error) { return n, nil })

	_, err := ast.NewPipeline([]ast.Pass{noop}, ast.WithPipelineLogger(quietLogger())).Run(context.Background(), sess)
	require.ErrorIs(t, err, ast.ErrInvalidPeer)
}

func TestPipeline_Canceled(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)
	onePlusTwo(t, sess)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ast.NewPipeline([]ast.Pass{stringify(sess)}).Run(ctx, sess)
	require.ErrorIs(t, err, context.Canceled)
	assert.NoError(t, sess.Spoiled())
}

func TestPipeline_SpansAndMetrics(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	em, err := observability.NewEngineMetrics(mp.Meter("test"))
	require.NoError(t, err)

	sess, _ := newSession(t)
	onePlusTwo(t, sess)

	noop := ast.PassFunc("noop", ast.PhaseParsed, func(v *ast.Visitor, n ast.Node) (ast.Node, error) {
		return v.VisitEachChild(n)
	})

	pipeline := ast.NewPipeline([]ast.Pass{noop, stringify(sess)},
		ast.WithTracer(tp.Tracer("test")), ast.WithMetrics(em))
	assert.Equal(t, []string{"noop", "stringify"}, pipeline.Names())

	_, err = pipeline.Run(context.Background(), sess)
	require.NoError(t, err)

	var names []string
	for _, span := range recorder.Ended() {
		names = append(names, span.Name())
	}

	assert.ElementsMatch(t, []string{
		observability.SpanPass,
		observability.SpanPass,
		observability.SpanRecheck,
		observability.SpanPipelineRun,
	}, names)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	totals := make(map[string]int64)

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}

			for _, dp := range sum.DataPoints {
				totals[m.Name] += dp.Value
			}
		}
	}

	assert.Equal(t, int64(2), totals["arkast.passes.total"])
	assert.Equal(t, int64(1), totals["arkast.rechecks.total"])
	assert.Positive(t, totals["arkast.nodes.visited.total"])
	assert.Positive(t, totals["arkast.nodes.rebuilt.total"])
}
