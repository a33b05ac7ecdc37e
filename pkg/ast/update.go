package ast

import (
	"github.com/cockroachdb/errors"

	"github.com/Sumatoshi-tech/arkast/pkg/kind"
	"github.com/Sumatoshi-tech/arkast/pkg/native"
)

func createAs[T Node](s *Session, k kind.Kind, fields ...native.Value) (T, error) {
	var zero T

	if s == nil {
		return zero, errors.Wrapf(ErrInvalidPeer, "create %s without a session", k)
	}

	n, err := s.create(k, fields)
	if err != nil {
		return zero, err
	}

	return As[T](n)
}

func updateAs[T Node](original T, fields ...native.Value) (T, error) {
	var zero T

	if addrOf(original) == native.Null {
		return zero, errors.Wrap(ErrInvalidPeer, "update of a nil node")
	}

	n, err := original.Session().update(original, fields)
	if err != nil {
		return zero, err
	}

	return As[T](n)
}

// Create allocates a node of kind k from positional field values. The typed
// CreateX functions are the usual entry point; Create serves generic tooling.
func (s *Session) Create(k kind.Kind, fields ...native.Value) (Node, error) {
	return s.create(k, fields)
}

// Update rebuilds n with the given positional field values, or returns n
// when they all match its current fields.
func (s *Session) Update(n Node, fields ...native.Value) (Node, error) {
	if n.Session() != s {
		return nil, atNode(n, ErrForeignSession)
	}

	return s.update(n, fields)
}

// Fields reads every field of n in declaration order.
func (s *Session) Fields(n Node) ([]native.Value, error) {
	_, values, err := s.currentFields(n.Addr())

	return values, err
}

func (s *Session) create(k kind.Kind, fields []native.Value) (Node, error) {
	err := s.alive()
	if err != nil {
		return nil, err
	}

	addr, err := s.svc.CreateNode(k, fields...)
	if err != nil {
		return nil, fromNative(err, "create %s", k)
	}

	n, err := s.wrap(addr)
	if err != nil {
		return nil, err
	}

	s.stats.Created++

	err = s.adopt(addr, fields)
	if err != nil {
		return nil, err
	}

	s.markDirty(addr)

	return n, nil
}

func (s *Session) currentFields(addr native.Addr) (kind.Kind, []native.Value, error) {
	err := s.alive()
	if err != nil {
		return kind.Invalid, nil, err
	}

	raw, err := s.svc.KindOf(addr)
	if err != nil {
		return kind.Invalid, nil, fromNative(err, "kind of %s", addr)
	}

	spec := raw.Spec()
	values := make([]native.Value, len(spec.Fields))

	for idx, field := range spec.Fields {
		values[idx], err = s.field(addr, field.Name)
		if err != nil {
			return kind.Invalid, nil, err
		}
	}

	return raw, values, nil
}

func (s *Session) update(original Node, proposed []native.Value) (Node, error) {
	raw, current, err := s.currentFields(original.Addr())
	if err != nil {
		return nil, atNode(original, err)
	}

	return s.rebuild(original, raw, current, proposed)
}

// rebuild is the structural sharing step: identical fields keep the original
// wrapper, anything else allocates a fresh native node that inherits the
// original's modifiers, comment, parent and metadata.
func (s *Session) rebuild(original Node, raw kind.Kind, current, proposed []native.Value) (Node, error) {
	if len(proposed) != len(current) {
		return nil, atNode(original, errors.Wrapf(ErrMalformedUpdate,
			"%s takes %d fields, got %d", raw, len(current), len(proposed)))
	}

	if sameFields(current, proposed) {
		s.stats.Shared++

		return original, nil
	}

	addr, err := s.svc.UpdateNode(raw, original.Addr(), proposed...)
	if err != nil {
		return nil, atNode(original, fromNative(err, "update %s", raw))
	}

	rebuilt, err := s.wrap(addr)
	if err != nil {
		return nil, err
	}

	s.stats.Rebuilt++

	err = s.reattach(original.Addr(), addr, raw, proposed)
	if err != nil {
		return nil, atNode(original, err)
	}

	return rebuilt, nil
}

func (s *Session) reattach(from, to native.Addr, raw kind.Kind, fields []native.Value) error {
	if from != to {
		err := s.inherit(from, to)
		if err != nil {
			return err
		}

		s.cache.refresh(from, to)
		s.cache.derive(from, to)
	}

	var err error
	if raw.Spec().Reindex {
		err = s.relink(to)
	} else {
		err = s.adopt(to, fields)
	}

	if err != nil {
		return err
	}

	s.markDirty(to)

	return nil
}

func (s *Session) inherit(from, to native.Addr) error {
	mods, err := s.svc.Modifiers(from)
	if err != nil {
		return fromNative(err, "modifiers of %s", from)
	}

	err = s.svc.SetModifiers(to, mods)
	if err != nil {
		return fromNative(err, "modifiers of %s", to)
	}

	comment, err := s.svc.Comment(from)
	if err != nil {
		return fromNative(err, "comment of %s", from)
	}

	if comment != "" {
		err = s.svc.SetComment(to, comment)
		if err != nil {
			return fromNative(err, "comment of %s", to)
		}
	}

	parent, err := s.svc.Parent(from)
	if err != nil {
		return fromNative(err, "parent of %s", from)
	}

	if parent != native.Null {
		err = s.svc.SetParent(to, parent)
		if err != nil {
			return fromNative(err, "parent of %s", to)
		}
	}

	return nil
}

// adopt points the direct children named in fields at parent.
func (s *Session) adopt(parent native.Addr, fields []native.Value) error {
	for _, value := range fields {
		switch value.Tag() {
		case native.ValueNode:
			if value.Node() == native.Null {
				continue
			}

			err := s.svc.SetParent(value.Node(), parent)
			if err != nil {
				return fromNative(err, "adopt %s", value.Node())
			}
		case native.ValueNodes:
			for _, addr := range value.Nodes() {
				err := s.svc.SetParent(addr, parent)
				if err != nil {
					return fromNative(err, "adopt %s", addr)
				}
			}
		default:
		}
	}

	return nil
}

func sameFields(current, proposed []native.Value) bool {
	for idx := range current {
		if !current[idx].Same(proposed[idx]) {
			return false
		}
	}

	return true
}
