package ast

import (
	"log/slog"
	"maps"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/Sumatoshi-tech/arkast/pkg/kind"
	"github.com/Sumatoshi-tech/arkast/pkg/native"
)

// Stats counts node construction in a session.
type Stats struct {
	Created     int64
	Rebuilt     int64
	Shared      int64
	Rechecks    int64
	Unsupported int64
}

// Session is one compilation context: a native service, the identity cache
// over its addresses, and the bookkeeping of which nodes still need a
// recheck. A Session must not be shared between goroutines, and every native
// service needs its own Session.
type Session struct {
	svc      native.Service
	cache    *Cache
	logger   *slog.Logger
	dirty    map[native.Addr]struct{}
	spoiled  error
	stats    Stats
	id       uuid.UUID
	disposed bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithID overrides the generated session id.
func WithID(id uuid.UUID) Option {
	return func(s *Session) { s.id = id }
}

// NewSession opens a session over svc. When svc reports its schema, the
// kind remap table is checked against it first.
func NewSession(svc native.Service, opts ...Option) (*Session, error) {
	sess := &Session{
		svc:    svc,
		cache:  NewCache(),
		logger: slog.Default(),
		dirty:  make(map[native.Addr]struct{}),
		id:     uuid.New(),
	}

	for _, opt := range opts {
		opt(sess)
	}

	err := verifyRemap(svc)
	if err != nil {
		return nil, err
	}

	sess.logger = sess.logger.With("session", sess.id.String())

	return sess, nil
}

func verifyRemap(svc native.Service) error {
	reporter, ok := svc.(native.SchemaReporter)
	if !ok {
		return nil
	}

	for _, k := range kind.All() {
		got, want := reporter.Representative(k), kind.Canonical(k)
		if got != want {
			return errors.Wrapf(ErrSchemaDrift, "%s is represented by %s natively, %s here", k, got, want)
		}
	}

	return nil
}

// ID identifies the session in logs and traces.
func (s *Session) ID() uuid.UUID { return s.id }

// Service returns the native service.
func (s *Session) Service() native.Service { return s.svc }

// Cache returns the identity cache.
func (s *Session) Cache() *Cache { return s.cache }

// Logger returns the session logger.
func (s *Session) Logger() *slog.Logger { return s.logger }

// Stats returns a snapshot of the construction counters.
func (s *Session) Stats() Stats { return s.stats }

// Spoiled returns the error that spoiled the session, if any.
func (s *Session) Spoiled() error { return s.spoiled }

func (s *Session) spoil(err error) {
	if s.spoiled == nil {
		s.spoiled = err
	}
}

func (s *Session) alive() error {
	if s.disposed {
		return errors.Wrapf(ErrInvalidPeer, "session %s is disposed", s.id)
	}

	return nil
}

// Dispose tears down the identity cache and, when it supports it, the native
// service. Every wrapper of the session becomes invalid.
func (s *Session) Dispose() {
	if s.disposed {
		return
	}

	s.disposed = true
	s.cache.reset()
	s.dirty = nil

	if disposer, ok := s.svc.(interface{ Dispose() }); ok {
		disposer.Dispose()
	}
}

// Wrap returns the single wrapper for addr, constructing and registering it
// on first use. Null yields nil.
func (s *Session) Wrap(addr native.Addr) (Node, error) {
	return s.wrap(addr)
}

func (s *Session) wrap(addr native.Addr) (Node, error) {
	if addr == native.Null {
		return nil, nil
	}

	err := s.alive()
	if err != nil {
		return nil, err
	}

	if !s.svc.IsValidPeer(addr) {
		return nil, invalidPeer(addr, nil)
	}

	if n, ok := s.cache.Lookup(addr); ok {
		return n, nil
	}

	raw, err := s.svc.KindOf(addr)
	if err != nil {
		return nil, fromNative(err, "kind of %s", addr)
	}

	n, err := s.construct(addr, raw)
	if err != nil {
		return nil, err
	}

	err = s.cache.Register(addr, n)
	if err != nil {
		return nil, err
	}

	return n, nil
}

// construct dispatches on the canonical kind. Constructors never touch
// children.
func (s *Session) construct(addr native.Addr, raw kind.Kind) (Node, error) {
	canonical := kind.Canonical(raw)
	base := nodeBase{sess: s, addr: addr}

	if canonical.IsStub() {
		s.stats.Unsupported++
		s.logger.Debug("wrapping stub kind", "kind", raw.String(), "addr", addr.String())

		return &Unsupported{base}, nil
	}

	ctor, ok := constructors[canonical]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownKindTag, "%s at %s", raw, addr)
	}

	return ctor(base), nil
}

func (s *Session) field(addr native.Addr, name string) (native.Value, error) {
	err := s.alive()
	if err != nil {
		return native.Value{}, err
	}

	value, err := s.svc.Field(addr, name)
	if err != nil {
		return native.Value{}, fromNative(err, "field %s of %s", name, addr)
	}

	return value, nil
}

// Root wraps the program root.
func (s *Session) Root() (Node, error) {
	return s.wrap(s.svc.Root())
}

// SetRoot makes n the program root.
func (s *Session) SetRoot(n Node) error {
	err := s.alive()
	if err != nil {
		return err
	}

	return fromNative(s.svc.SetRoot(addrOf(n)), "set root")
}

// State returns the native context state.
func (s *Session) State() native.State { return s.svc.State() }

// ProceedToState advances the native context. Reaching the checked state
// types the whole tree, so nothing is pending a recheck afterwards. The
// identity cache is kept.
func (s *Session) ProceedToState(target native.State) error {
	err := s.alive()
	if err != nil {
		return err
	}

	before := s.svc.State()

	err = s.svc.ProceedToState(target)
	if err != nil {
		return fromNative(err, "proceed to %s", target)
	}

	if before < native.StateChecked && target >= native.StateChecked {
		clear(s.dirty)
	}

	s.logger.Debug("context state", "from", before.String(), "to", target.String())

	return nil
}

// NeedsRecheck reports whether nodes were built since the last recheck.
func (s *Session) NeedsRecheck() bool { return len(s.dirty) > 0 }

// Recheck asks the native service to rebind and retype the subtree at n.
// Type information on nodes built since the previous check is only
// trustworthy after this.
func (s *Session) Recheck(n Node) error {
	err := s.alive()
	if err != nil {
		return err
	}

	err = s.svc.Recheck(n.Addr())
	if err != nil {
		return atNode(n, fromNative(err, "recheck"))
	}

	s.stats.Rechecks++

	// Whatever a root recheck did not reach is detached from the program.
	if n.Addr() == s.svc.Root() {
		clear(s.dirty)

		return nil
	}

	return s.walk(n.Addr(), func(addr, _ native.Addr) error {
		delete(s.dirty, addr)

		return nil
	})
}

// TypeOf returns the checked type of n. It reports ErrUnchecked for nodes
// built after the last recheck and for contexts not yet checked.
func (s *Session) TypeOf(n Node) (string, error) {
	err := s.alive()
	if err != nil {
		return "", err
	}

	if _, stale := s.dirty[n.Addr()]; stale {
		return "", errors.WithHint(
			errors.Wrapf(ErrUnchecked, "%s %s was built after the last recheck", n.Kind(), n.Addr()),
			"call Session.Recheck on the edited subtree",
		)
	}

	if state := s.svc.State(); state < native.StateChecked {
		return "", errors.Wrapf(ErrUnchecked, "context is %s", state)
	}

	typ, err := s.svc.TypeOf(n.Addr())
	if err != nil {
		return "", fromNative(err, "type of %s", n.Addr())
	}

	if typ == "" {
		return "", errors.Wrapf(ErrUnchecked, "%s %s has no type", n.Kind(), n.Addr())
	}

	return typ, nil
}

// DeclOf resolves an identifier to the node that declares it, as of the
// last check. A member expression resolves through its property. Nil means
// the name is not bound to any declaration.
func (s *Session) DeclOf(n Node) (Node, error) {
	err := s.alive()
	if err != nil {
		return nil, err
	}

	if member, ok := n.(*MemberExpression); ok {
		property, propErr := member.Property()
		if propErr != nil {
			return nil, propErr
		}

		return s.DeclOf(property)
	}

	if n == nil {
		return nil, nil
	}

	if _, stale := s.dirty[n.Addr()]; stale {
		return nil, errors.Wrapf(ErrUnchecked, "%s %s was built after the last recheck", n.Kind(), n.Addr())
	}

	if state := s.svc.State(); state < native.StateChecked {
		return nil, errors.Wrapf(ErrUnchecked, "context is %s", state)
	}

	decl, err := s.svc.Declaration(n.Addr())
	if err != nil {
		return nil, atNode(n, fromNative(err, "declaration of %s", n.Addr()))
	}

	return s.wrap(decl)
}

// Original returns the node n was first rebuilt from by updates, following
// the whole chain back. A node that was never rebuilt is its own original.
func (s *Session) Original(n Node) (Node, error) {
	err := s.alive()
	if err != nil {
		return nil, err
	}

	origin := s.cache.origin(n.Addr())
	if origin == native.Null {
		return n, nil
	}

	return s.wrap(origin)
}

// SetMetadata attaches an engine-side value to n.
func (s *Session) SetMetadata(n Node, key string, value any) error {
	err := s.alive()
	if err != nil {
		return err
	}

	if !s.cache.setMetadata(n.Addr(), key, value) {
		return invalidPeer(n.Addr(), nil)
	}

	return nil
}

// Metadata returns a copy of the engine-side values attached to n.
func (s *Session) Metadata(n Node) Metadata {
	if s.disposed {
		return nil
	}

	return maps.Clone(s.cache.metadata(n.Addr()))
}

// RelinkParents points every node below root at its parent.
func (s *Session) RelinkParents(root Node) error {
	err := s.alive()
	if err != nil {
		return err
	}

	return s.relink(root.Addr())
}

func (s *Session) relink(root native.Addr) error {
	return s.walk(root, func(addr, parent native.Addr) error {
		if parent == native.Null {
			return nil
		}

		return fromNative(s.svc.SetParent(addr, parent), "relink %s", addr)
	})
}

func (s *Session) markDirty(addr native.Addr) {
	if s.svc.State() >= native.StateChecked {
		s.dirty[addr] = struct{}{}
	}
}

// walk visits root and its descendants in pre-order, left to right, passing
// each address with its parent.
func (s *Session) walk(root native.Addr, fn func(addr, parent native.Addr) error) error {
	type frame struct{ addr, parent native.Addr }

	stack := []frame{{addr: root}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		err := fn(top.addr, top.parent)
		if err != nil {
			return err
		}

		raw, err := s.svc.KindOf(top.addr)
		if err != nil {
			return fromNative(err, "kind of %s", top.addr)
		}

		var kids []native.Addr

		for _, field := range raw.Spec().Fields {
			if !field.Type.IsNode() {
				continue
			}

			value, fieldErr := s.field(top.addr, field.Name)
			if fieldErr != nil {
				return fieldErr
			}

			if field.Type == kind.FieldNode {
				if value.Node() != native.Null {
					kids = append(kids, value.Node())
				}

				continue
			}

			kids = append(kids, value.Nodes()...)
		}

		for idx := len(kids) - 1; idx >= 0; idx-- {
			stack = append(stack, frame{addr: kids[idx], parent: top.addr})
		}
	}

	return nil
}
