package ast

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/Sumatoshi-tech/arkast/pkg/kind"
	"github.com/Sumatoshi-tech/arkast/pkg/native"
)

// Engine error taxonomy. Every error returned by this package matches one of
// these with errors.Is.
var (
	// ErrInvalidPeer reports a stale or foreign native address.
	ErrInvalidPeer = errors.New("invalid peer")
	// ErrTypeMismatch reports a wrapper whose kind is not what the caller expected.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrMalformedUpdate reports a create or update the native service rejected.
	ErrMalformedUpdate = errors.New("malformed update")
	// ErrUnknownKindTag reports a kind with no registered wrapper constructor.
	ErrUnknownKindTag = errors.New("unknown kind tag")
	// ErrUnsupported reports an operation on a stub kind.
	ErrUnsupported = errors.New("unsupported node kind")

	ErrDuplicateWrapper = errors.New("duplicate wrapper")
	ErrUnchecked        = errors.New("type information is stale")
	ErrSpoiled          = errors.New("session is spoiled")
	ErrSchemaDrift      = errors.New("kind remap differs from native schema")
	ErrRequiredField    = classify(ErrMalformedUpdate, errors.New("required field removed"))
	ErrForeignSession   = classify(ErrInvalidPeer, errors.New("node belongs to another session"))
)

// classified files a cause under one of the taxonomy sentinels while keeping
// the cause's own message and chain.
type classified struct {
	class error
	cause error
}

func classify(class, cause error) error { return &classified{class: class, cause: cause} }

func (e *classified) Error() string { return e.cause.Error() }

func (e *classified) Unwrap() []error { return []error{e.class, e.cause} }

// NodeError attaches the offending node's kind and best-effort source span to
// an engine error.
type NodeError struct {
	Err  error
	Span native.Span
	Addr native.Addr
	Kind kind.Kind
}

func (e *NodeError) Error() string {
	if e.Span.IsZero() {
		return fmt.Sprintf("%s %s: %v", e.Kind, e.Addr, e.Err)
	}

	return fmt.Sprintf("%s at %s: %v", e.Kind, e.Span.Start, e.Err)
}

func (e *NodeError) Unwrap() error { return e.Err }

// SpanOf returns the innermost node span recorded on err.
func SpanOf(err error) (native.Span, bool) {
	var nodeErr *NodeError
	if !errors.As(err, &nodeErr) || nodeErr.Span.IsZero() {
		return native.Span{}, false
	}

	return nodeErr.Span, true
}

// atNode wraps err with n's position unless it already carries one.
func atNode(n Node, err error) error {
	if err == nil || n == nil {
		return err
	}

	var nodeErr *NodeError
	if errors.As(err, &nodeErr) {
		return err
	}

	out := &NodeError{Err: err, Addr: n.Addr(), Kind: n.Kind()}
	if span, spanErr := n.Span(); spanErr == nil {
		out.Span = span
	}

	return out
}

func invalidPeer(addr native.Addr, cause error) error {
	if cause == nil {
		return errors.Wrapf(ErrInvalidPeer, "address %s", addr)
	}

	return errors.Wrapf(classify(ErrInvalidPeer, cause), "address %s", addr)
}

// fromNative maps a native service error onto the engine taxonomy.
func fromNative(err error, format string, args ...any) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, native.ErrMalformed):
		err = classify(ErrMalformedUpdate, err)
	case errors.Is(err, native.ErrInvalidPeer), errors.Is(err, native.ErrDisposed):
		err = classify(ErrInvalidPeer, err)
	}

	return errors.Wrapf(err, format, args...)
}

func typeMismatch(n Node, want string) error {
	return errors.WithHint(
		errors.Wrapf(ErrTypeMismatch, "%s %s is not %s", n.Kind(), n.Addr(), want),
		"check Kind() before downcasting",
	)
}
