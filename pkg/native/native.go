// Package native describes the contract of the native tree service: the
// foreign-owned store that allocates, rebuilds and type-checks AST nodes and
// hands out opaque addresses for them.
package native

import (
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/Sumatoshi-tech/arkast/pkg/kind"
)

// Errors reported by services.
var (
	ErrInvalidPeer = errors.New("invalid native peer")
	ErrMalformed   = errors.New("malformed node")
	ErrState       = errors.New("invalid context state")
	ErrDisposed    = errors.New("context disposed")
)

// Addr is an opaque native node address. It is only meaningful inside the
// service that produced it.
type Addr uint64

// Null is the absent address.
const Null Addr = 0

func (a Addr) String() string {
	if a == Null {
		return "null"
	}

	return "0x" + strconv.FormatUint(uint64(a), 16)
}

// Position is a point in source text. Line and Column are zero-based.
type Position struct {
	Line   uint
	Column uint
	Offset uint
}

func (p Position) String() string {
	return strconv.FormatUint(uint64(p.Line+1), 10) + ":" + strconv.FormatUint(uint64(p.Column+1), 10)
}

// Span is the source range a node was parsed from.
type Span struct {
	Start Position
	End   Position
}

// IsZero reports whether no position is known.
func (s Span) IsZero() bool { return s == Span{} }

// State is the compilation context phase.
type State uint8

// Context states in the order a context advances through them.
const (
	StateNew State = iota
	StateParsed
	StateBound
	StateChecked
	StateLowered
	StateError
)

var stateNames = [...]string{
	StateNew:     "new",
	StateParsed:  "parsed",
	StateBound:   "bound",
	StateChecked: "checked",
	StateLowered: "lowered",
	StateError:   "error",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}

	return "State(" + strconv.Itoa(int(s)) + ")"
}

// Service is the native tree store. Implementations are not safe for
// concurrent use; one compilation context runs on one goroutine.
type Service interface {
	// CreateNode allocates a brand-new node from fields in schema order.
	CreateNode(k kind.Kind, fields ...Value) (Addr, error)

	// UpdateNode builds a replacement for original. The returned address may
	// or may not equal original.
	UpdateNode(k kind.Kind, original Addr, fields ...Value) (Addr, error)

	// Field reads one field of a node by schema name.
	Field(addr Addr, name string) (Value, error)

	// KindOf returns the raw kind tag of a node.
	KindOf(addr Addr) (kind.Kind, error)

	// Recheck re-runs binding and type inference below root.
	Recheck(root Addr) error

	// IsValidPeer reports whether addr is live in this context.
	IsValidPeer(addr Addr) bool

	Modifiers(addr Addr) (Modifiers, error)
	SetModifiers(addr Addr, mods Modifiers) error

	// Comment returns the JSDoc text attached to a node.
	Comment(addr Addr) (string, error)
	SetComment(addr Addr, text string) error

	Parent(addr Addr) (Addr, error)
	SetParent(child, parent Addr) error

	Span(addr Addr) (Span, error)

	// TypeOf returns the checked type text of an expression, or "" when the
	// node has not been checked.
	TypeOf(addr Addr) (string, error)

	// Declaration returns the node declaring the identifier at addr, or
	// Null when it is unresolved or unchecked.
	Declaration(addr Addr) (Addr, error)

	Root() Addr
	SetRoot(addr Addr) error

	State() State
	ProceedToState(target State) error
}

// Builder is implemented by services that accept trees from a frontend.
type Builder interface {
	Service

	SetSpan(addr Addr, span Span) error
}

// SchemaReporter is implemented by services that can report which kind a raw
// kind is represented by in their own schema.
type SchemaReporter interface {
	Representative(k kind.Kind) kind.Kind
}
