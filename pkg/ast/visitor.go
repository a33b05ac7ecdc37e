package ast

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/Sumatoshi-tech/arkast/pkg/kind"
	"github.com/Sumatoshi-tech/arkast/pkg/native"
)

// VisitFunc rewrites one node. Returning the node unchanged keeps it,
// returning another node replaces it, and returning nil removes it from a
// list or clears an optional field.
type VisitFunc func(v *Visitor, n Node) (Node, error)

// Visitor drives a VisitFunc over a tree. Children are visited in field
// declaration order, list elements left to right.
type Visitor struct {
	sess   *Session
	fn     VisitFunc
	path   []Node
	visits int
}

// NewVisitor returns a visitor over nodes of s.
func NewVisitor(s *Session, fn VisitFunc) *Visitor {
	return &Visitor{sess: s, fn: fn}
}

// Session returns the session the visitor works in.
func (v *Visitor) Session() *Session { return v.sess }

// Depth is the number of ancestors currently being rebuilt.
func (v *Visitor) Depth() int { return len(v.path) }

// Path returns the ancestors of the node being visited, outermost first.
func (v *Visitor) Path() []Node { return slices.Clone(v.path) }

// Parent returns the innermost ancestor, or nil at the top.
func (v *Visitor) Parent() Node {
	if len(v.path) == 0 {
		return nil
	}

	return v.path[len(v.path)-1]
}

// Visits counts calls to the visit function.
func (v *Visitor) Visits() int { return v.visits }

// Visit applies the visit function to n. A nil n is passed over.
func (v *Visitor) Visit(n Node) (Node, error) {
	if n == nil {
		return nil, nil
	}

	err := v.own(n)
	if err != nil {
		return nil, err
	}

	v.visits++

	out, err := v.fn(v, n)
	if err != nil {
		return nil, atNode(n, err)
	}

	if out != nil {
		err = v.own(out)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// VisitEachChild visits every child of n and returns n rebuilt with the
// results. When nothing changed n itself is returned. Unsupported nodes are
// returned as they are.
func (v *Visitor) VisitEachChild(n Node) (Node, error) {
	if n == nil || IsUnsupported(n) {
		return n, nil
	}

	err := v.own(n)
	if err != nil {
		return nil, err
	}

	raw, current, err := v.sess.currentFields(n.Addr())
	if err != nil {
		return nil, atNode(n, err)
	}

	v.path = append(v.path, n)
	defer func() { v.path = v.path[:len(v.path)-1] }()

	var proposed []native.Value

	for idx, field := range raw.Spec().Fields {
		var (
			next    native.Value
			changed bool
		)

		switch field.Type {
		case kind.FieldNode:
			next, changed, err = v.visitSlot(n, field, current[idx].Node())
		case kind.FieldNodes:
			next, changed, err = v.visitList(n, field, current[idx].Nodes())
		default:
			continue
		}

		if err != nil {
			return nil, err
		}

		if !changed {
			continue
		}

		if proposed == nil {
			proposed = slices.Clone(current)
		}

		proposed[idx] = next
	}

	if proposed == nil {
		return n, nil
	}

	return v.sess.rebuild(n, raw, current, proposed)
}

func (v *Visitor) visitSlot(owner Node, field kind.FieldSpec, addr native.Addr) (native.Value, bool, error) {
	if addr == native.Null {
		return native.Value{}, false, nil
	}

	child, err := v.sess.wrap(addr)
	if err != nil {
		return native.Value{}, false, atNode(owner, err)
	}

	out, err := v.Visit(child)
	if err != nil {
		return native.Value{}, false, err
	}

	if out == nil {
		if !field.Optional {
			return native.Value{}, false, atNode(owner,
				errors.Wrapf(ErrRequiredField, "%s.%s", owner.Kind(), field.Name))
		}

		return native.NodeValue(native.Null), true, nil
	}

	err = v.accept(owner, field, out)
	if err != nil {
		return native.Value{}, false, err
	}

	return native.NodeValue(out.Addr()), out.Addr() != addr, nil
}

// visitList copies the element slice only once an element changes.
func (v *Visitor) visitList(owner Node, field kind.FieldSpec, addrs []native.Addr) (native.Value, bool, error) {
	var out []native.Addr

	copied := false

	for idx, addr := range addrs {
		child, err := v.sess.wrap(addr)
		if err != nil {
			return native.Value{}, false, atNode(owner, err)
		}

		next, err := v.Visit(child)
		if err != nil {
			return native.Value{}, false, err
		}

		if next == nil {
			if !copied {
				out = slices.Clone(addrs[:idx])
				copied = true
			}

			continue
		}

		err = v.accept(owner, field, next)
		if err != nil {
			return native.Value{}, false, err
		}

		switch {
		case copied:
			out = append(out, next.Addr())
		case next.Addr() != addr:
			out = append(slices.Clone(addrs[:idx]), next.Addr())
			copied = true
		}
	}

	if !copied {
		return native.Value{}, false, nil
	}

	if out == nil {
		out = []native.Addr{}
	}

	return native.NodesValue(out), true, nil
}

func (v *Visitor) accept(owner Node, field kind.FieldSpec, n Node) error {
	if field.Accept(n.Kind()) {
		return nil
	}

	return atNode(owner, errors.WithDetailf(
		errors.Wrapf(ErrTypeMismatch, "%s.%s expects %s, got %s", owner.Kind(), field.Name, field.Expect(), n.Kind()),
		"offending node %s", n.Addr(),
	))
}

func (v *Visitor) own(n Node) error {
	if n.Session() == v.sess {
		return nil
	}

	return atNode(n, ErrForeignSession)
}

// VisitEachChild visits the children of n with fn.
func VisitEachChild(n Node, fn VisitFunc) (Node, error) {
	if n == nil {
		return nil, nil
	}

	return NewVisitor(n.Session(), fn).VisitEachChild(n)
}

// Transform applies fn to root and returns the result.
func Transform(root Node, fn VisitFunc) (Node, error) {
	if root == nil {
		return nil, nil
	}

	return NewVisitor(root.Session(), fn).Visit(root)
}

// Inspect walks the tree at root in pre-order. Returning false from fn skips
// the children of that node. Unsupported nodes are reported but not entered.
func Inspect(root Node, fn func(n Node) (bool, error)) error {
	if root == nil {
		return nil
	}

	descend, err := fn(root)
	if err != nil || !descend || IsUnsupported(root) {
		return err
	}

	sess := root.Session()

	raw, current, err := sess.currentFields(root.Addr())
	if err != nil {
		return atNode(root, err)
	}

	for idx, field := range raw.Spec().Fields {
		var addrs []native.Addr

		switch field.Type {
		case kind.FieldNode:
			addrs = []native.Addr{current[idx].Node()}
		case kind.FieldNodes:
			addrs = current[idx].Nodes()
		default:
			continue
		}

		for _, addr := range addrs {
			child, wrapErr := sess.wrap(addr)
			if wrapErr != nil {
				return atNode(root, wrapErr)
			}

			err = Inspect(child, fn)
			if err != nil {
				return err
			}
		}
	}

	return nil
}
