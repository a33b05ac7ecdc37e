// Package parser reads TypeScript, TSX and ArkTS source with tree-sitter and
// builds the native tree through a native.Builder.
package parser

import (
	"context"
	"log/slog"
	"sync"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/arkast/pkg/ast"
	"github.com/Sumatoshi-tech/arkast/pkg/native"
	"github.com/Sumatoshi-tech/arkast/pkg/native/arena"
	"github.com/Sumatoshi-tech/arkast/pkg/observability"
)

// Parse errors.
var (
	ErrTooLarge = errors.New("source exceeds the size limit")
	ErrSyntax   = errors.New("syntax error")
	ErrNoRoot   = errors.New("parser produced no root node")
)

// SyntaxError is one region tree-sitter could not parse. It is kept in the
// tree as an opaque node.
type SyntaxError struct {
	Text string
	Span native.Span
}

// Result describes one parse.
type Result struct {
	Language Language
	Errors   []SyntaxError
	Root     native.Addr
	Nodes    int
	Opaque   int
}

// Parser turns source text into a native tree. It is safe for concurrent use;
// each Parse call must target its own builder.
type Parser struct {
	logger  *slog.Logger
	tracer  trace.Tracer
	grammar *sitter.Language
	pool    sync.Pool
	lang    Language
	maxSize int
	strict  bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the parser logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithTracer sets the tracer for parse spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(p *Parser) {
		if tracer != nil {
			p.tracer = tracer
		}
	}
}

// WithMaxSize rejects sources larger than n bytes. Zero means no limit.
func WithMaxSize(n int) Option {
	return func(p *Parser) { p.maxSize = n }
}

// WithStrict makes any syntax error fail the parse instead of producing
// opaque nodes.
func WithStrict(strict bool) Option {
	return func(p *Parser) { p.strict = strict }
}

// New returns a parser for lang.
func New(lang Language, opts ...Option) (*Parser, error) {
	grammar, err := grammar(lang)
	if err != nil {
		return nil, err
	}

	p := &Parser{
		logger:  slog.Default(),
		tracer:  otel.Tracer(observability.TracerParser),
		grammar: grammar,
		lang:    lang,
	}

	for _, opt := range opts {
		opt(p)
	}

	p.pool.New = func() any {
		tsParser := sitter.NewParser()
		tsParser.SetLanguage(p.grammar)

		return tsParser
	}

	return p, nil
}

// Language returns the language the parser reads.
func (p *Parser) Language() Language { return p.lang }

// Parse builds the tree for src into b and makes it the builder's root.
func (p *Parser) Parse(ctx context.Context, b native.Builder, src []byte) (*Result, error) {
	ctx, span := p.tracer.Start(ctx, observability.SpanParse, trace.WithAttributes(
		attribute.String("language", string(p.lang)),
		attribute.Int("source.bytes", len(src)),
	))
	defer span.End()

	res, err := p.parse(ctx, b, src)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	span.SetAttributes(
		attribute.Int("node.count", res.Nodes),
		attribute.Int("node.opaque", res.Opaque),
	)

	return res, nil
}

func (p *Parser) parse(ctx context.Context, b native.Builder, src []byte) (*Result, error) {
	if p.maxSize > 0 && len(src) > p.maxSize {
		return nil, errors.Wrapf(ErrTooLarge, "%d bytes, limit %d", len(src), p.maxSize)
	}

	tsParser, ok := p.pool.Get().(*sitter.Parser)
	if !ok {
		return nil, errors.New("parser pool returned a foreign value")
	}
	defer p.pool.Put(tsParser)

	tree, err := tsParser.ParseString(ctx, nil, src)
	if err != nil {
		return nil, errors.Wrap(err, "tree-sitter parse")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.IsNull() {
		return nil, ErrNoRoot
	}

	res := &Result{Language: p.lang}
	conv := &converter{b: b, src: src, res: res}

	addr := conv.program(root)
	if conv.err != nil {
		return nil, errors.Wrap(conv.err, "build native tree")
	}

	if p.strict && len(res.Errors) > 0 {
		first := res.Errors[0]

		return nil, errors.WithDetailf(
			errors.Wrapf(ErrSyntax, "%d error(s), first at %s", len(res.Errors), first.Span.Start),
			"unparsed text: %q", first.Text,
		)
	}

	err = b.SetRoot(addr)
	if err != nil {
		return nil, errors.Wrap(err, "set root")
	}

	res.Root = addr

	p.logger.DebugContext(ctx, "parsed",
		"language", string(p.lang),
		"bytes", len(src),
		"nodes", res.Nodes,
		"opaque", res.Opaque,
		"syntax_errors", len(res.Errors),
	)

	return res, nil
}

// Open detects the language of filename, parses src into a fresh arena and
// opens a session over it. The session owns the arena.
func Open(ctx context.Context, filename string, src []byte, opts ...Option) (*ast.Session, *Result, error) {
	lang, err := DetectLanguage(filename, src)
	if err != nil {
		return nil, nil, err
	}

	p, err := New(lang, opts...)
	if err != nil {
		return nil, nil, err
	}

	return p.Open(ctx, src)
}

// Open parses src into a fresh arena and opens a session over it.
func (p *Parser) Open(ctx context.Context, src []byte, opts ...ast.Option) (*ast.Session, *Result, error) {
	svc := arena.New()

	res, err := p.Parse(ctx, svc, src)
	if err != nil {
		svc.Dispose()

		return nil, nil, err
	}

	sess, err := ast.NewSession(svc, append([]ast.Option{ast.WithLogger(p.logger)}, opts...)...)
	if err != nil {
		svc.Dispose()

		return nil, nil, err
	}

	return sess, res, nil
}
