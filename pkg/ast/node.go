package ast

import (
	"reflect"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/Sumatoshi-tech/arkast/pkg/kind"
	"github.com/Sumatoshi-tech/arkast/pkg/native"
)

// Node wraps exactly one native address. Within a Session there is at most
// one Node per address, so wrappers compare by identity with ==.
type Node interface {
	// Addr returns the wrapped native address.
	Addr() native.Addr
	// Kind reads the raw kind tag from the native side. It returns
	// kind.Invalid once the address is no longer live.
	Kind() kind.Kind
	Session() *Session

	Parent() (Node, error)
	// NextSibling returns the element after this node in the parent's list
	// field, or nil when there is none.
	NextSibling() (Node, error)

	Modifiers() (native.Modifiers, error)
	SetModifiers(mods native.Modifiers) error
	HasModifier(flags native.Modifiers) bool
	Comment() (string, error)
	Span() (native.Span, error)

	base() *nodeBase
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	isExpression()
}

// Literal is an expression spelled directly in source.
type Literal interface {
	Expression
	isLiteral()
}

// TypeNode is a type annotation.
type TypeNode interface {
	Expression
	isTypeNode()
}

// Statement is a node that appears in statement lists.
type Statement interface {
	Node
	isStatement()
}

// Declaration is a statement that introduces a binding.
type Declaration interface {
	Statement
	isDeclaration()
}

type nodeBase struct {
	sess *Session
	addr native.Addr
}

func (b *nodeBase) base() *nodeBase { return b }

func (b *nodeBase) Addr() native.Addr { return b.addr }

func (b *nodeBase) Session() *Session { return b.sess }

func (b *nodeBase) Kind() kind.Kind {
	k, err := b.sess.svc.KindOf(b.addr)
	if err != nil {
		return kind.Invalid
	}

	return k
}

func (b *nodeBase) Parent() (Node, error) {
	parent, err := b.sess.svc.Parent(b.addr)
	if err != nil {
		return nil, fromNative(err, "parent of %s", b.addr)
	}

	return b.sess.wrap(parent)
}

func (b *nodeBase) NextSibling() (Node, error) {
	parent, err := b.sess.svc.Parent(b.addr)
	if err != nil {
		return nil, fromNative(err, "parent of %s", b.addr)
	}

	if parent == native.Null {
		return nil, nil
	}

	parentKind, err := b.sess.svc.KindOf(parent)
	if err != nil {
		return nil, fromNative(err, "kind of %s", parent)
	}

	for _, field := range parentKind.Spec().Fields {
		if field.Type != kind.FieldNodes {
			continue
		}

		value, fieldErr := b.sess.field(parent, field.Name)
		if fieldErr != nil {
			return nil, fieldErr
		}

		siblings := value.Nodes()

		idx := slices.Index(siblings, b.addr)
		if idx < 0 {
			continue
		}

		if idx+1 == len(siblings) {
			return nil, nil
		}

		return b.sess.wrap(siblings[idx+1])
	}

	return nil, nil
}

func (b *nodeBase) Modifiers() (native.Modifiers, error) {
	mods, err := b.sess.svc.Modifiers(b.addr)
	if err != nil {
		return native.ModNone, fromNative(err, "modifiers of %s", b.addr)
	}

	return mods, nil
}

func (b *nodeBase) SetModifiers(mods native.Modifiers) error {
	return fromNative(b.sess.svc.SetModifiers(b.addr, mods), "set modifiers of %s", b.addr)
}

func (b *nodeBase) HasModifier(flags native.Modifiers) bool {
	mods, err := b.Modifiers()

	return err == nil && mods.Has(flags)
}

func (b *nodeBase) Comment() (string, error) {
	text, err := b.sess.svc.Comment(b.addr)
	if err != nil {
		return "", fromNative(err, "comment of %s", b.addr)
	}

	return text, nil
}

func (b *nodeBase) Span() (native.Span, error) {
	span, err := b.sess.svc.Span(b.addr)
	if err != nil {
		return native.Span{}, fromNative(err, "span of %s", b.addr)
	}

	return span, nil
}

type expressionBase struct{ nodeBase }

func (*expressionBase) isExpression() {}

type literalBase struct{ expressionBase }

func (*literalBase) isLiteral() {}

type typeNodeBase struct{ expressionBase }

func (*typeNodeBase) isTypeNode() {}

type statementBase struct{ nodeBase }

func (*statementBase) isStatement() {}

type declarationBase struct{ statementBase }

func (*declarationBase) isDeclaration() {}

// Unsupported wraps a stub kind, one with a native layout but no typed
// wrapper. It satisfies every category so it can occupy any slot its native
// kind allows, and visitors never descend into it.
type Unsupported struct{ nodeBase }

func (*Unsupported) isExpression()  {}
func (*Unsupported) isLiteral()     {}
func (*Unsupported) isTypeNode()    {}
func (*Unsupported) isStatement()   {}
func (*Unsupported) isDeclaration() {}

// Text returns the raw source text kept by the stub, if its layout has one.
func (n *Unsupported) Text() (string, error) {
	if _, _, ok := n.Kind().Spec().Field("text"); !ok {
		return "", nil
	}

	return stringField(n.base(), "text")
}

// Err reports the kind as unsupported.
func (n *Unsupported) Err() error {
	return errors.Wrapf(ErrUnsupported, "%s", n.Kind())
}

// IsUnsupported reports whether n wraps a stub kind.
func IsUnsupported(n Node) bool {
	_, ok := n.(*Unsupported)

	return ok
}

// As downcasts n, reporting ErrTypeMismatch when n is not a T. A nil n yields
// the zero T.
func As[T Node](n Node) (T, error) {
	var zero T

	if n == nil {
		return zero, nil
	}

	typed, ok := n.(T)
	if !ok {
		return zero, typeMismatch(n, reflect.TypeFor[T]().String())
	}

	return typed, nil
}

func child[T Node](b *nodeBase, field string) (T, error) {
	var zero T

	value, err := b.sess.field(b.addr, field)
	if err != nil {
		return zero, err
	}

	n, err := b.sess.wrap(value.Node())
	if err != nil {
		return zero, err
	}

	return As[T](n)
}

// children resolves every element on each call; the list is never cached
// since the native array can change underneath.
func children[T Node](b *nodeBase, field string) ([]T, error) {
	value, err := b.sess.field(b.addr, field)
	if err != nil {
		return nil, err
	}

	addrs := value.Nodes()
	out := make([]T, 0, len(addrs))

	for _, addr := range addrs {
		n, wrapErr := b.sess.wrap(addr)
		if wrapErr != nil {
			return nil, wrapErr
		}

		typed, asErr := As[T](n)
		if asErr != nil {
			return nil, asErr
		}

		out = append(out, typed)
	}

	return out, nil
}

func stringField(b *nodeBase, field string) (string, error) {
	value, err := b.sess.field(b.addr, field)
	if err != nil {
		return "", err
	}

	return value.Str(), nil
}

func intField(b *nodeBase, field string) (int64, error) {
	value, err := b.sess.field(b.addr, field)
	if err != nil {
		return 0, err
	}

	return value.Int(), nil
}

func boolField(b *nodeBase, field string) (bool, error) {
	value, err := b.sess.field(b.addr, field)
	if err != nil {
		return false, err
	}

	return value.Bool(), nil
}

// addrOf tolerates typed nil pointers, which callers pass for absent
// optional children.
func addrOf(n Node) native.Addr {
	if n == nil {
		return native.Null
	}

	if rv := reflect.ValueOf(n); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return native.Null
	}

	return n.Addr()
}

func nodeValue(n Node) native.Value { return native.NodeValue(addrOf(n)) }

func nodesValue[T Node](nodes []T) native.Value {
	addrs := make([]native.Addr, 0, len(nodes))
	for _, n := range nodes {
		addrs = append(addrs, addrOf(n))
	}

	return native.NodesValue(addrs)
}
