package observability

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// DefaultMaxValueLen is the longest string attribute value exported as is.
const DefaultMaxValueLen = 256

// exportedPrefixes are the attribute namespaces the engine writes.
var exportedPrefixes = []string{
	"arkast.",
	"cache.",
	"error.",
	"node.",
	"pass.",
	"pipeline.",
	"recheck.",
	"session.",
	"source.",
}

// sourceKeys carry program text. Their values are replaced by their size.
var sourceKeys = map[string]bool{
	"source.text":  true,
	"node.text":    true,
	"comment.text": true,
}

// RedactOptions tunes NewRedactingProcessor.
type RedactOptions struct {
	// Logger gets one warning per dropped attribute key. Nil is silent.
	Logger *slog.Logger

	// MaxValueLen truncates longer string values. Zero means
	// DefaultMaxValueLen.
	MaxValueLen int
}

// redactingProcessor rewrites span attributes before they reach the
// delegate: program text is replaced by its size, long strings are cut and
// keys outside the engine namespaces are dropped.
type redactingProcessor struct {
	delegate sdktrace.SpanProcessor
	logger   *slog.Logger
	warned   sync.Map
	maxLen   int
}

// NewRedactingProcessor wraps delegate with attribute redaction.
func NewRedactingProcessor(delegate sdktrace.SpanProcessor, opts RedactOptions) sdktrace.SpanProcessor {
	maxLen := opts.MaxValueLen
	if maxLen <= 0 {
		maxLen = DefaultMaxValueLen
	}

	return &redactingProcessor{delegate: delegate, logger: opts.Logger, maxLen: maxLen}
}

func (p *redactingProcessor) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {
	p.delegate.OnStart(parent, s)
}

func (p *redactingProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	p.delegate.OnEnd(&redactedSpan{ReadOnlySpan: s, attrs: p.redact(s.Attributes())})
}

func (p *redactingProcessor) Shutdown(ctx context.Context) error {
	err := p.delegate.Shutdown(ctx)
	if err != nil {
		return fmt.Errorf("redacting processor shutdown: %w", err)
	}

	return nil
}

func (p *redactingProcessor) ForceFlush(ctx context.Context) error {
	err := p.delegate.ForceFlush(ctx)
	if err != nil {
		return fmt.Errorf("redacting processor flush: %w", err)
	}

	return nil
}

func (p *redactingProcessor) redact(attrs []attribute.KeyValue) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(attrs))

	for _, kv := range attrs {
		key := string(kv.Key)

		switch {
		case sourceKeys[key]:
			out = append(out, kv.Key.String(fmt.Sprintf("[redacted %d bytes]", len(kv.Value.Emit()))))
		case !exported(key):
			p.warnOnce(key)
		case kv.Value.Type() == attribute.STRING && len(kv.Value.AsString()) > p.maxLen:
			out = append(out, kv.Key.String(truncate(kv.Value.AsString(), p.maxLen)))
		default:
			out = append(out, kv)
		}
	}

	return out
}

func exported(key string) bool {
	if key == "language" || key == "error" {
		return true
	}

	for _, prefix := range exportedPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}

	return false
}

func (p *redactingProcessor) warnOnce(key string) {
	if p.logger == nil {
		return
	}

	if _, seen := p.warned.LoadOrStore(key, struct{}{}); !seen {
		p.logger.Warn("span attribute dropped", "key", key)
	}
}

// truncate cuts s to at most n bytes on a rune boundary and marks the cut.
func truncate(s string, n int) string {
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}

	return s[:n] + "…"
}

type redactedSpan struct {
	sdktrace.ReadOnlySpan

	attrs []attribute.KeyValue
}

func (s *redactedSpan) Attributes() []attribute.KeyValue { return s.attrs }
