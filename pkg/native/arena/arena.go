// Package arena is an in-process native tree service. Nodes are records in a
// growing slice and addresses are handles into it, tagged with the arena id so
// that handles from another arena are rejected.
package arena

import (
	"slices"
	"sync/atomic"

	"github.com/cockroachdb/errors"

	"github.com/Sumatoshi-tech/arkast/pkg/kind"
	"github.com/Sumatoshi-tech/arkast/pkg/native"
)

const idShift = 32

var lastID atomic.Uint32

type record struct {
	fields  []native.Value
	comment string
	typ     string
	span    native.Span
	parent  native.Addr
	decl    native.Addr
	mods    native.Modifiers
	kind    kind.Kind
	checked bool
}

// Arena is a native.Builder backed by a slice of records. Handles are never
// reused, so an address stays valid until Dispose. Not safe for concurrent use.
type Arena struct {
	records  []record
	bindings map[string]binding
	root     native.Addr
	rechecks int
	id       uint32
	state    native.State
	disposed bool
}

var (
	_ native.Builder        = (*Arena)(nil)
	_ native.SchemaReporter = (*Arena)(nil)
)

// New returns an empty arena in StateNew.
func New() *Arena {
	return &Arena{
		id:       lastID.Add(1),
		bindings: make(map[string]binding),
	}
}

// ID identifies the arena. It occupies the high half of every address.
func (a *Arena) ID() uint32 { return a.id }

// Len returns the number of records ever allocated.
func (a *Arena) Len() int { return len(a.records) }

// Rechecks returns how many times Recheck ran.
func (a *Arena) Rechecks() int { return a.rechecks }

// Dispose invalidates every address handed out by the arena.
func (a *Arena) Dispose() {
	a.disposed = true
	a.records = nil
	a.bindings = nil
	a.root = native.Null
}

func (a *Arena) addrOf(idx int) native.Addr {
	return native.Addr(uint64(a.id)<<idShift | uint64(idx+1))
}

func (a *Arena) get(addr native.Addr) (*record, error) {
	if a.disposed {
		return nil, errors.Wrapf(native.ErrInvalidPeer, "%s: %v", addr, native.ErrDisposed)
	}

	if uint32(addr>>idShift) != a.id {
		return nil, errors.Wrapf(native.ErrInvalidPeer, "%s: foreign to arena %d", addr, a.id)
	}

	low := uint64(addr) & (1<<idShift - 1)
	if low == 0 || low > uint64(len(a.records)) {
		return nil, errors.Wrapf(native.ErrInvalidPeer, "%s: no such node", addr)
	}

	return &a.records[low-1], nil
}

// IsValidPeer reports whether addr was allocated by this arena and the arena
// is still live.
func (a *Arena) IsValidPeer(addr native.Addr) bool {
	_, err := a.get(addr)

	return err == nil
}

// CreateNode allocates a new node.
func (a *Arena) CreateNode(k kind.Kind, fields ...native.Value) (native.Addr, error) {
	if a.disposed {
		return native.Null, native.ErrDisposed
	}

	err := a.validate(k, fields)
	if err != nil {
		return native.Null, err
	}

	return a.alloc(record{kind: k, fields: cloneFields(fields)}), nil
}

// UpdateNode allocates a replacement for original. The span is kept; modifiers,
// comment, parent and type information are not.
func (a *Arena) UpdateNode(k kind.Kind, original native.Addr, fields ...native.Value) (native.Addr, error) {
	rec, err := a.get(original)
	if err != nil {
		return native.Null, err
	}

	if rec.kind != k {
		return native.Null, errors.Wrapf(native.ErrMalformed, "cannot update %s as %s", rec.kind, k)
	}

	span := rec.span

	err = a.validate(k, fields)
	if err != nil {
		return native.Null, err
	}

	return a.alloc(record{kind: k, fields: cloneFields(fields), span: span}), nil
}

func (a *Arena) alloc(rec record) native.Addr {
	a.records = append(a.records, rec)

	return a.addrOf(len(a.records) - 1)
}

func cloneFields(fields []native.Value) []native.Value {
	out := make([]native.Value, len(fields))
	for idx, field := range fields {
		if field.Tag() == native.ValueNodes {
			field = native.NodesValue(slices.Clone(field.Nodes()))
		}

		out[idx] = field
	}

	return out
}

// Field reads a field by schema name. Node lists are copied.
func (a *Arena) Field(addr native.Addr, name string) (native.Value, error) {
	rec, err := a.get(addr)
	if err != nil {
		return native.Value{}, err
	}

	_, idx, ok := rec.kind.Spec().Field(name)
	if !ok {
		return native.Value{}, errors.Wrapf(native.ErrMalformed, "%s has no field %q", rec.kind, name)
	}

	value := rec.fields[idx]
	if value.Tag() == native.ValueNodes {
		return native.NodesValue(slices.Clone(value.Nodes())), nil
	}

	return value, nil
}

// KindOf returns the raw kind of a node.
func (a *Arena) KindOf(addr native.Addr) (kind.Kind, error) {
	rec, err := a.get(addr)
	if err != nil {
		return kind.Invalid, err
	}

	return rec.kind, nil
}

// Modifiers returns the modifier flags of a node.
func (a *Arena) Modifiers(addr native.Addr) (native.Modifiers, error) {
	rec, err := a.get(addr)
	if err != nil {
		return native.ModNone, err
	}

	return rec.mods, nil
}

// SetModifiers replaces the modifier flags of a node.
func (a *Arena) SetModifiers(addr native.Addr, mods native.Modifiers) error {
	rec, err := a.get(addr)
	if err != nil {
		return err
	}

	rec.mods = mods

	return nil
}

// Comment returns the JSDoc text of a node.
func (a *Arena) Comment(addr native.Addr) (string, error) {
	rec, err := a.get(addr)
	if err != nil {
		return "", err
	}

	return rec.comment, nil
}

// SetComment replaces the JSDoc text of a node.
func (a *Arena) SetComment(addr native.Addr, text string) error {
	rec, err := a.get(addr)
	if err != nil {
		return err
	}

	rec.comment = text

	return nil
}

// Parent returns the parent link of a node, Null when unset.
func (a *Arena) Parent(addr native.Addr) (native.Addr, error) {
	rec, err := a.get(addr)
	if err != nil {
		return native.Null, err
	}

	return rec.parent, nil
}

// SetParent points child at parent. A Null parent detaches.
func (a *Arena) SetParent(child, parent native.Addr) error {
	rec, err := a.get(child)
	if err != nil {
		return err
	}

	if parent != native.Null && !a.IsValidPeer(parent) {
		return errors.Wrapf(native.ErrInvalidPeer, "parent %s", parent)
	}

	rec.parent = parent

	return nil
}

// Span returns the source range of a node.
func (a *Arena) Span(addr native.Addr) (native.Span, error) {
	rec, err := a.get(addr)
	if err != nil {
		return native.Span{}, err
	}

	return rec.span, nil
}

// SetSpan records the source range of a node.
func (a *Arena) SetSpan(addr native.Addr, span native.Span) error {
	rec, err := a.get(addr)
	if err != nil {
		return err
	}

	rec.span = span

	return nil
}

// TypeOf returns the type inferred by the last check covering addr.
func (a *Arena) TypeOf(addr native.Addr) (string, error) {
	rec, err := a.get(addr)
	if err != nil {
		return "", err
	}

	if !rec.checked {
		return "", nil
	}

	return rec.typ, nil
}

// Declaration returns the node that declares the identifier at addr as of
// the last check covering it: a VariableDeclarator, Parameter,
// FunctionDeclaration or ClassDeclaration. Null means unresolved or unchecked.
func (a *Arena) Declaration(addr native.Addr) (native.Addr, error) {
	rec, err := a.get(addr)
	if err != nil {
		return native.Null, err
	}

	if !rec.checked {
		return native.Null, nil
	}

	return rec.decl, nil
}

// Root returns the program root, Null before one is set.
func (a *Arena) Root() native.Addr { return a.root }

// SetRoot replaces the program root.
func (a *Arena) SetRoot(addr native.Addr) error {
	_, err := a.get(addr)
	if err != nil {
		return err
	}

	a.root = addr
	if a.state == native.StateNew {
		a.state = native.StateParsed
	}

	return nil
}

// State returns the context state.
func (a *Arena) State() native.State { return a.state }

// ProceedToState advances the context. Binding links parents below the root;
// checking infers types for the whole tree.
func (a *Arena) ProceedToState(target native.State) error {
	if a.disposed {
		return native.ErrDisposed
	}

	if target < a.state {
		return errors.Wrapf(native.ErrState, "cannot go back from %s to %s", a.state, target)
	}

	if target == a.state {
		return nil
	}

	if target > native.StateParsed && a.root == native.Null {
		return errors.Wrapf(native.ErrState, "cannot reach %s without a root", target)
	}

	if target >= native.StateBound && a.state < native.StateBound {
		a.relink(a.root)
	}

	if target >= native.StateChecked && a.state < native.StateChecked {
		clear(a.bindings)
		a.check(a.root)
	}

	a.state = target

	return nil
}

// Recheck relinks parents and re-infers types below root.
func (a *Arena) Recheck(root native.Addr) error {
	_, err := a.get(root)
	if err != nil {
		return err
	}

	a.rechecks++

	if root == a.root {
		clear(a.bindings)
	}

	a.relink(root)
	a.check(root)

	return nil
}

// Representative reports which kind k is wrapped as.
func (a *Arena) Representative(k kind.Kind) kind.Kind {
	if rep := k.Spec().RepresentedBy; rep != kind.Invalid {
		return rep
	}

	return k
}

func (a *Arena) validate(k kind.Kind, fields []native.Value) error {
	if !k.Valid() {
		return errors.Wrapf(native.ErrMalformed, "unknown kind %d", uint16(k))
	}

	spec := k.Spec()
	if len(fields) != len(spec.Fields) {
		return errors.Wrapf(native.ErrMalformed, "%s takes %d fields, got %d", k, len(spec.Fields), len(fields))
	}

	for idx, field := range spec.Fields {
		err := a.checkField(k, field, fields[idx])
		if err != nil {
			return err
		}
	}

	return nil
}

func (a *Arena) checkField(k kind.Kind, field kind.FieldSpec, value native.Value) error {
	if want := tagOf(field.Type); value.Tag() != want {
		return errors.Wrapf(native.ErrMalformed, "%s.%s wants a %s value, got %s", k, field.Name, want, value.Tag())
	}

	switch field.Type {
	case kind.FieldNode:
		return a.checkChild(k, field, value.Node())
	case kind.FieldNodes:
		for _, child := range value.Nodes() {
			if child == native.Null {
				return errors.Wrapf(native.ErrMalformed, "%s.%s holds a null element", k, field.Name)
			}

			err := a.checkChild(k, field, child)
			if err != nil {
				return err
			}
		}
	case kind.FieldString, kind.FieldInt, kind.FieldBool:
	}

	return nil
}

func (a *Arena) checkChild(k kind.Kind, field kind.FieldSpec, child native.Addr) error {
	if child == native.Null {
		if field.Optional || field.Type == kind.FieldNodes {
			return nil
		}

		return errors.Wrapf(native.ErrMalformed, "%s.%s is required", k, field.Name)
	}

	rec, err := a.get(child)
	if err != nil {
		return err
	}

	if !field.Accept(rec.kind) {
		return errors.Wrapf(native.ErrMalformed, "%s.%s wants %s, got %s", k, field.Name, field.Expect(), rec.kind)
	}

	return nil
}

func tagOf(ft kind.FieldType) native.ValueTag {
	switch ft {
	case kind.FieldNode:
		return native.ValueNode
	case kind.FieldNodes:
		return native.ValueNodes
	case kind.FieldString:
		return native.ValueString
	case kind.FieldInt:
		return native.ValueInt
	case kind.FieldBool:
		return native.ValueBool
	default:
		return native.ValueNone
	}
}

// forEachChild calls fn for every child of rec in field order.
func forEachChild(rec *record, fn func(child native.Addr)) {
	for _, value := range rec.fields {
		switch value.Tag() {
		case native.ValueNode:
			if value.Node() != native.Null {
				fn(value.Node())
			}
		case native.ValueNodes:
			for _, child := range value.Nodes() {
				fn(child)
			}
		case native.ValueNone, native.ValueString, native.ValueInt, native.ValueBool:
		}
	}
}

// relink sets the parent of every node below root, iteratively.
func (a *Arena) relink(root native.Addr) {
	stack := []native.Addr{root}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		rec, err := a.get(current)
		if err != nil {
			continue
		}

		forEachChild(rec, func(child native.Addr) {
			childRec, childErr := a.get(child)
			if childErr != nil {
				return
			}

			childRec.parent = current
			stack = append(stack, child)
		})
	}
}
