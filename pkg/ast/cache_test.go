package ast_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/arkast/pkg/ast"
	"github.com/Sumatoshi-tech/arkast/pkg/kind"
	"github.com/Sumatoshi-tech/arkast/pkg/native"
	"github.com/Sumatoshi-tech/arkast/pkg/native/arena"
)

func TestWrap_SameAddressSameWrapper(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)
	bin := binary(t, sess, ident(t, sess, "a"), "+", ident(t, sess, "b"))
	program(t, sess, exprStmt(t, sess, bin))

	first, err := sess.Root()
	require.NoError(t, err)

	second, err := sess.Wrap(first.Addr())
	require.NoError(t, err)

	assert.Same(t, first, second)

	leftOnce, err := bin.Left()
	require.NoError(t, err)

	leftTwice, err := bin.Left()
	require.NoError(t, err)

	assert.Same(t, leftOnce, leftTwice)
}

func TestWrap_ParentAccessorAndSiblingAgree(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)
	prog := program(t, sess,
		exprStmt(t, sess, ident(t, sess, "s1")),
		exprStmt(t, sess, ident(t, sess, "s2")),
		exprStmt(t, sess, ident(t, sess, "s3")),
	)

	stmts := statements(t, prog)
	require.Len(t, stmts, 3)

	next, err := stmts[0].NextSibling()
	require.NoError(t, err)
	assert.Same(t, stmts[1], next)

	last, err := stmts[2].NextSibling()
	require.NoError(t, err)
	assert.Nil(t, last)

	parent, err := stmts[1].Parent()
	require.NoError(t, err)
	assert.Same(t, prog, parent)
}

func TestWrap_Null(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)

	n, err := sess.Wrap(native.Null)
	require.NoError(t, err)
	assert.Nil(t, n)

	id := ident(t, sess, "x")

	ann, err := id.TypeAnnotation()
	require.NoError(t, err)
	assert.Nil(t, ann)
}

func TestWrap_ForeignAndDisposed(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)
	other, _ := newSession(t)

	foreign := ident(t, other, "x")

	_, err := sess.Wrap(foreign.Addr())
	require.ErrorIs(t, err, ast.ErrInvalidPeer)

	local := ident(t, sess, "y")
	sess.Dispose()

	_, err = sess.Wrap(local.Addr())
	require.ErrorIs(t, err, ast.ErrInvalidPeer)

	_, err = local.Name()
	require.ErrorIs(t, err, ast.ErrInvalidPeer)
}

func TestWrap_CanonicalRemap(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)

	tests := []struct {
		native kind.Kind
		want   ast.Node
	}{
		{kind.ArrayPattern, (*ast.ArrayExpression)(nil)},
		{kind.ObjectPattern, (*ast.ObjectExpression)(nil)},
		{kind.AssignmentPattern, (*ast.AssignmentExpression)(nil)},
		{kind.RestElement, (*ast.SpreadElement)(nil)},
	}

	for _, tt := range tests {
		n, err := sess.Create(tt.native, sampleFields(t, sess, tt.native)...)
		require.NoError(t, err, tt.native.String())

		assert.IsType(t, tt.want, n)
		assert.Equal(t, tt.native, n.Kind(), "raw kind is kept")
	}
}

func TestWrap_StubKindIsUnsupported(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)

	n, err := sess.Create(kind.OpaqueExpression, native.StringValue("x satisfies T"))
	require.NoError(t, err)

	require.True(t, ast.IsUnsupported(n))

	stub, err := ast.As[*ast.Unsupported](n)
	require.NoError(t, err)

	text, err := stub.Text()
	require.NoError(t, err)
	assert.Equal(t, "x satisfies T", text)
	require.ErrorIs(t, stub.Err(), ast.ErrUnsupported)

	// A stub still fits any slot its native kind is allowed in.
	stmt, err := ast.CreateExpressionStatement(sess, stub)
	require.NoError(t, err)

	expr, err := stmt.Expression()
	require.NoError(t, err)
	assert.Same(t, n, expr)

	assert.Equal(t, int64(1), sess.Stats().Unsupported)
}

type rogueKinds struct {
	*arena.Arena
}

func (rogueKinds) KindOf(native.Addr) (kind.Kind, error) { return kind.Kind(999), nil }

func TestWrap_UnknownKindTag(t *testing.T) {
	t.Parallel()

	svc := arena.New()
	addr, err := svc.CreateNode(kind.EmptyStatement)
	require.NoError(t, err)

	sess, err := ast.NewSession(rogueKinds{svc})
	require.NoError(t, err)

	_, err = sess.Wrap(addr)
	require.ErrorIs(t, err, ast.ErrUnknownKindTag)
}

type driftedSchema struct {
	*arena.Arena
}

func (driftedSchema) Representative(k kind.Kind) kind.Kind { return k }

func TestNewSession_SchemaDrift(t *testing.T) {
	t.Parallel()

	_, err := ast.NewSession(driftedSchema{arena.New()})
	require.ErrorIs(t, err, ast.ErrSchemaDrift)
}

func TestCache_RegisterAndStats(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)
	other, _ := newSession(t)

	a := ident(t, sess, "a")
	b := ident(t, other, "b")

	cache := ast.NewCache()
	require.NoError(t, cache.Register(a.Addr(), a))
	require.NoError(t, cache.Register(a.Addr(), a))

	err := cache.Register(a.Addr(), b)
	require.ErrorIs(t, err, ast.ErrDuplicateWrapper)

	got, ok := cache.Lookup(a.Addr())
	require.True(t, ok)
	assert.Same(t, a, got)

	_, ok = cache.Lookup(b.Addr() + 1)
	assert.False(t, ok)

	stats := cache.Stats()
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestSession_ProceedToStateKeepsCache(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)
	id := ident(t, sess, "a")
	program(t, sess, exprStmt(t, sess, id))

	before := sess.Cache().Len()

	require.NoError(t, sess.ProceedToState(native.StateChecked))

	again, err := sess.Wrap(id.Addr())
	require.NoError(t, err)
	assert.Same(t, id, again)
	assert.Equal(t, before, sess.Cache().Len())

	err = sess.ProceedToState(native.StateParsed)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ast.ErrInvalidPeer))
}

func TestSession_Metadata(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)
	id := ident(t, sess, "a")

	assert.Empty(t, sess.Metadata(id))

	require.NoError(t, sess.SetMetadata(id, "origin", "test"))

	meta := sess.Metadata(id)
	assert.Equal(t, "test", meta["origin"])

	meta["origin"] = "mutated"
	assert.Equal(t, "test", sess.Metadata(id)["origin"])
}
