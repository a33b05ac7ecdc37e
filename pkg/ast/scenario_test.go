package ast_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/arkast/pkg/ast"
	"github.com/Sumatoshi-tech/arkast/pkg/native"
)

// Builds "1 + 2;", checks it, swaps the right operand for a string and
// follows the type through the recheck.
func TestScenario_CheckedAddition(t *testing.T) {
	t.Parallel()

	sess, svc := newSession(t)

	one, two := number(t, sess, "1"), number(t, sess, "2")
	sum := binary(t, sess, one, "+", two)
	stmt := exprStmt(t, sess, sum)
	prog := program(t, sess, stmt)

	require.NoError(t, sess.ProceedToState(native.StateChecked))

	typ, err := sess.TypeOf(sum)
	require.NoError(t, err)
	assert.Equal(t, "number", typ)

	text, err := ast.CreateStringLiteral(sess, "x")
	require.NoError(t, err)

	swapped, err := ast.UpdateBinaryExpression(sum, one, "+", text)
	require.NoError(t, err)
	require.NotSame(t, sum, swapped)

	_, err = sess.TypeOf(swapped)
	require.ErrorIs(t, err, ast.ErrUnchecked)
	assert.True(t, sess.NeedsRecheck())

	newStmt, err := ast.UpdateExpressionStatement(stmt, swapped)
	require.NoError(t, err)

	newProg, err := ast.UpdateProgram(prog, []ast.Statement{newStmt})
	require.NoError(t, err)
	require.NoError(t, sess.SetRoot(newProg))

	rechecks := svc.Rechecks()
	require.NoError(t, sess.Recheck(newProg))
	assert.Equal(t, rechecks+1, svc.Rechecks())
	assert.False(t, sess.NeedsRecheck())

	typ, err = sess.TypeOf(swapped)
	require.NoError(t, err)
	assert.Equal(t, "string", typ)

	parent, err := swapped.Parent()
	require.NoError(t, err)
	assert.Same(t, newStmt, parent)

	// The left operand was shared through every rebuild.
	left, err := swapped.Left()
	require.NoError(t, err)
	assert.Same(t, one, left)
}

func TestScenario_PipelineRename(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)

	a := ident(t, sess, "a")
	keep := exprStmt(t, sess, ident(t, sess, "other"))
	program(t, sess, exprStmt(t, sess, binary(t, sess, a, "+", ident(t, sess, "b"))), keep)

	rename := ast.PassFunc("rename", ast.PhaseParsed, func(v *ast.Visitor, n ast.Node) (ast.Node, error) {
		id, ok := n.(*ast.Identifier)
		if !ok {
			return v.VisitEachChild(n)
		}

		name, err := id.Name()
		if err != nil || name != "b" {
			return n, err
		}

		return ast.UpdateIdentifier(id, "c", nil)
	})

	root, err := ast.NewPipeline([]ast.Pass{rename}).Run(context.Background(), sess)
	require.NoError(t, err)

	stmts := statements(t, root.(*ast.Program))
	require.Len(t, stmts, 2)
	assert.Same(t, keep, stmts[1])

	expr, err := stmts[0].(*ast.ExpressionStatement).Expression()
	require.NoError(t, err)

	sum := expr.(*ast.BinaryExpression)

	left, err := sum.Left()
	require.NoError(t, err)
	assert.Same(t, a, left)

	right, err := sum.Right()
	require.NoError(t, err)
	assert.Equal(t, "c", identName(t, right))

	current, err := sess.Root()
	require.NoError(t, err)
	assert.Same(t, root, current)
}
