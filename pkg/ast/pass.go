package ast

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/arkast/pkg/native"
	"github.com/Sumatoshi-tech/arkast/pkg/observability"
)

// Phase is the context state a pass needs before it runs.
type Phase uint8

// Pass phases.
const (
	// PhaseParsed passes see the tree as parsed, without type information.
	PhaseParsed Phase = iota
	// PhaseChecked passes may ask Session.TypeOf.
	PhaseChecked
)

func (p Phase) String() string {
	if p == PhaseChecked {
		return "checked"
	}

	return "parsed"
}

// State returns the native state the phase maps to.
func (p Phase) State() native.State {
	if p == PhaseChecked {
		return native.StateChecked
	}

	return native.StateParsed
}

// Pass is one tree rewrite. Visit is called on the root and decides itself
// whether to descend with Visitor.VisitEachChild.
type Pass interface {
	Name() string
	Phase() Phase
	Visit(v *Visitor, n Node) (Node, error)
}

type funcPass struct {
	name  string
	fn    VisitFunc
	phase Phase
}

func (p funcPass) Name() string                           { return p.name }
func (p funcPass) Phase() Phase                           { return p.phase }
func (p funcPass) Visit(v *Visitor, n Node) (Node, error) { return p.fn(v, n) }

// PassFunc adapts a visit function to a Pass.
func PassFunc(name string, phase Phase, fn VisitFunc) Pass {
	return funcPass{name: name, phase: phase, fn: fn}
}

// Pipeline runs passes in order over a session.
type Pipeline struct {
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *observability.EngineMetrics
	passes  []Pass
	recheck bool
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithPipelineLogger sets the logger. The session logger is used otherwise.
func WithPipelineLogger(logger *slog.Logger) PipelineOption {
	return func(p *Pipeline) { p.logger = logger }
}

// WithTracer sets the tracer for pipeline and pass spans.
func WithTracer(tracer trace.Tracer) PipelineOption {
	return func(p *Pipeline) {
		if tracer != nil {
			p.tracer = tracer
		}
	}
}

// WithMetrics records every pass on em.
func WithMetrics(em *observability.EngineMetrics) PipelineOption {
	return func(p *Pipeline) { p.metrics = em }
}

// WithRecheck controls whether a pass that edits an already checked tree
// triggers a recheck of the new root. On by default.
func WithRecheck(enabled bool) PipelineOption {
	return func(p *Pipeline) { p.recheck = enabled }
}

// NewPipeline returns a pipeline running passes in order.
func NewPipeline(passes []Pass, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		tracer:  otel.Tracer(observability.TracerEngine),
		passes:  passes,
		recheck: true,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Names lists the passes in run order.
func (p *Pipeline) Names() []string {
	names := make([]string, 0, len(p.passes))
	for _, pass := range p.passes {
		names = append(names, pass.Name())
	}

	return names
}

// Run applies every pass to the session root and returns the final root. A
// failing pass spoils the session; later runs on it return ErrSpoiled.
func (p *Pipeline) Run(ctx context.Context, s *Session) (Node, error) {
	if cause := s.Spoiled(); cause != nil {
		return nil, errors.WithSecondaryError(errors.Wrapf(ErrSpoiled, "session %s", s.ID()), cause)
	}

	logger := p.logger
	if logger == nil {
		logger = s.Logger()
	}

	ctx = observability.ContextWithSession(ctx, s.ID().String())

	ctx, span := p.tracer.Start(ctx, observability.SpanPipelineRun, trace.WithAttributes(
		attribute.String("session.id", s.ID().String()),
		attribute.Int("pipeline.passes", len(p.passes)),
	))
	defer span.End()

	for _, pass := range p.passes {
		err := ctx.Err()
		if err != nil {
			return nil, errors.Wrap(err, "pipeline canceled")
		}

		err = p.runPass(ctx, s, pass, logger)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())

			return nil, err
		}
	}

	return s.Root()
}

func (p *Pipeline) runPass(ctx context.Context, s *Session, pass Pass, logger *slog.Logger) error {
	start := time.Now()
	before, cacheBefore := s.Stats(), s.Cache().Stats()

	ctx, span := p.tracer.Start(ctx, observability.SpanPass, trace.WithAttributes(
		attribute.String("pass.name", pass.Name()),
		attribute.String("pass.phase", pass.Phase().String()),
	))
	defer span.End()

	v := NewVisitor(s, pass.Visit)
	err := p.apply(ctx, s, pass, v)

	after, cacheAfter := s.Stats(), s.Cache().Stats()
	stats := observability.PassStats{
		Pass:        pass.Name(),
		Phase:       pass.Phase().String(),
		Duration:    time.Since(start),
		Visited:     int64(v.Visits()),
		Rebuilt:     after.Rebuilt - before.Rebuilt,
		Created:     after.Created - before.Created,
		Shared:      after.Shared - before.Shared,
		CacheHits:   cacheAfter.Hits - cacheBefore.Hits,
		CacheMisses: cacheAfter.Misses - cacheBefore.Misses,
		Rechecks:    after.Rechecks - before.Rechecks,
		Failed:      err != nil,
	}

	p.metrics.RecordPass(ctx, stats)
	span.SetAttributes(
		attribute.Int64("pass.visited", stats.Visited),
		attribute.Int64("pass.rebuilt", stats.Rebuilt),
		attribute.Int64("pass.shared", stats.Shared),
	)

	if err != nil {
		err = errors.Wrapf(err, "pass %s", pass.Name())
		s.spoil(err)

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		attrs := []any{"pass", pass.Name(), "error", err}
		if at, ok := SpanOf(err); ok {
			attrs = append(attrs, "at", at.Start.String())
		}

		logger.ErrorContext(ctx, "pass failed", attrs...)

		return err
	}

	logger.DebugContext(ctx, "pass done",
		"pass", pass.Name(),
		"visited", stats.Visited,
		"rebuilt", stats.Rebuilt,
		"shared", stats.Shared,
		"duration", stats.Duration,
	)

	return nil
}

func (p *Pipeline) apply(ctx context.Context, s *Session, pass Pass, v *Visitor) error {
	if target := pass.Phase().State(); s.State() < target {
		err := s.ProceedToState(target)
		if err != nil {
			return err
		}
	}

	root, err := s.Root()
	if err != nil {
		return err
	}

	if root == nil {
		return errors.Wrap(ErrInvalidPeer, "session has no program root")
	}

	next, err := v.Visit(root)
	if err != nil {
		return err
	}

	if next == nil {
		return atNode(root, errors.Wrap(ErrRequiredField, "pass removed the program root"))
	}

	if next != root {
		err = s.SetRoot(next)
		if err != nil {
			return err
		}
	}

	if p.recheck && s.State() >= native.StateChecked && s.NeedsRecheck() {
		_, span := p.tracer.Start(ctx, observability.SpanRecheck)
		err = s.Recheck(next)
		span.End()

		if err != nil {
			return err
		}
	}

	return nil
}
