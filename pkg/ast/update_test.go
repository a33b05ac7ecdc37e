package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/arkast/pkg/ast"
	"github.com/Sumatoshi-tech/arkast/pkg/kind"
	"github.com/Sumatoshi-tech/arkast/pkg/native"
)

func TestUpdate_UnchangedFieldsReturnOriginal(t *testing.T) {
	t.Parallel()

	for _, k := range kind.All() {
		if len(k.Spec().Fields) == 0 {
			continue
		}

		t.Run(k.String(), func(t *testing.T) {
			t.Parallel()

			sess, svc := newSession(t)

			n, err := sess.Create(k, sampleFields(t, sess, k)...)
			require.NoError(t, err)

			current, err := sess.Fields(n)
			require.NoError(t, err)

			allocated := svc.Len()

			got, err := sess.Update(n, current...)
			require.NoError(t, err)

			assert.Same(t, n, got)
			assert.Equal(t, allocated, svc.Len(), "no native allocation")
			assert.Equal(t, int64(1), sess.Stats().Shared)
		})
	}
}

func TestUpdate_AddThenReplaceRight(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)

	a, b := ident(t, sess, "a"), ident(t, sess, "b")
	sum := binary(t, sess, a, "+", b)

	same, err := ast.UpdateBinaryExpression(sum, a, "+", b)
	require.NoError(t, err)
	assert.Same(t, sum, same)

	c := ident(t, sess, "c")

	changed, err := ast.UpdateBinaryExpression(sum, a, "+", c)
	require.NoError(t, err)
	assert.NotSame(t, sum, changed)
	assert.NotEqual(t, sum.Addr(), changed.Addr())

	right, err := changed.Right()
	require.NoError(t, err)

	rightID, err := ast.As[*ast.Identifier](right)
	require.NoError(t, err)

	name, err := rightID.Name()
	require.NoError(t, err)
	assert.Equal(t, "c", name)

	left, err := changed.Left()
	require.NoError(t, err)
	assert.Same(t, a, left)

	// The original is untouched.
	oldRight, err := sum.Right()
	require.NoError(t, err)
	assert.Same(t, b, oldRight)

	parent, err := c.Parent()
	require.NoError(t, err)
	assert.Same(t, changed, parent)
}

func TestUpdate_ScalarChangeRebuilds(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)

	a, b := ident(t, sess, "a"), ident(t, sess, "b")
	sum := binary(t, sess, a, "+", b)

	product, err := ast.UpdateBinaryExpression(sum, a, "*", b)
	require.NoError(t, err)
	assert.NotSame(t, sum, product)

	op, err := product.Operator()
	require.NoError(t, err)
	assert.Equal(t, "*", op)
}

func TestUpdate_CarriesModifiersCommentParentAndMetadata(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)

	declarator, err := ast.CreateVariableDeclarator(sess, ident(t, sess, "x"), nil, number(t, sess, "1"))
	require.NoError(t, err)

	decl, err := ast.CreateVariableDeclaration(sess, "let", []*ast.VariableDeclarator{declarator})
	require.NoError(t, err)

	prog := program(t, sess, decl)

	require.NoError(t, decl.SetModifiers(native.ModExport|native.ModDeclare))
	require.NoError(t, sess.Service().SetComment(decl.Addr(), "/** answer */"))
	require.NoError(t, sess.SetMetadata(decl, "origin", "source"))

	rebuilt, err := ast.UpdateVariableDeclaration(decl, "const", []*ast.VariableDeclarator{declarator})
	require.NoError(t, err)
	require.NotSame(t, decl, rebuilt)

	assert.True(t, rebuilt.HasModifier(native.ModExport))
	assert.True(t, rebuilt.HasModifier(native.ModDeclare))

	comment, err := rebuilt.Comment()
	require.NoError(t, err)
	assert.Equal(t, "/** answer */", comment)

	parent, err := rebuilt.Parent()
	require.NoError(t, err)
	assert.Same(t, prog, parent)

	assert.Equal(t, "source", sess.Metadata(rebuilt)["origin"])
}

func TestUpdate_ReindexRelinksSubtree(t *testing.T) {
	t.Parallel()

	sess, svc := newSession(t)

	a := ident(t, sess, "a")
	stmt := exprStmt(t, sess, a)
	prog := program(t, sess, stmt)

	// Break a grandchild link; rebuilding a reindex kind restores it.
	require.NoError(t, svc.SetParent(a.Addr(), native.Null))

	extra := exprStmt(t, sess, ident(t, sess, "b"))

	rebuilt, err := ast.UpdateProgram(prog, []ast.Statement{stmt, extra})
	require.NoError(t, err)

	parent, err := a.Parent()
	require.NoError(t, err)
	assert.Same(t, stmt, parent)

	stmtParent, err := stmt.Parent()
	require.NoError(t, err)
	assert.Same(t, rebuilt, stmtParent)
}

func TestUpdate_Malformed(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)
	sum := binary(t, sess, ident(t, sess, "a"), "+", ident(t, sess, "b"))

	_, err := sess.Update(sum, native.StringValue("+"))
	require.ErrorIs(t, err, ast.ErrMalformedUpdate)

	_, err = ast.CreateBinaryExpression(sess, nil, "+", ident(t, sess, "b"))
	require.ErrorIs(t, err, ast.ErrMalformedUpdate)

	stmt := exprStmt(t, sess, ident(t, sess, "z"))

	_, err = sess.Create(kind.UnaryExpression, native.StringValue("-"), native.NodeValue(stmt.Addr()))
	require.ErrorIs(t, err, ast.ErrMalformedUpdate)
}

func TestUpdate_ForeignSession(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)
	other, _ := newSession(t)

	n := ident(t, other, "x")

	_, err := sess.Update(n, native.StringValue("y"), native.NodeValue(native.Null))
	require.ErrorIs(t, err, ast.ErrInvalidPeer)
	require.ErrorIs(t, err, ast.ErrForeignSession)

	_, err = ast.CreateExpressionStatement(sess, n)
	require.ErrorIs(t, err, ast.ErrInvalidPeer)
}

func TestCreate_LinksChildren(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)

	args := []ast.Expression{ident(t, sess, "x"), number(t, sess, "2")}
	call, err := ast.CreateCallExpression(sess, ident(t, sess, "f"), nil, args, false)
	require.NoError(t, err)

	got, err := call.Arguments()
	require.NoError(t, err)
	require.Len(t, got, 2)

	for idx, arg := range got {
		assert.Same(t, args[idx], arg)

		parent, parentErr := arg.Parent()
		require.NoError(t, parentErr)
		assert.Same(t, call, parent)
	}

	typeArgs, err := call.TypeArguments()
	require.NoError(t, err)
	assert.Empty(t, typeArgs)
}
