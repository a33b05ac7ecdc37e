package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/arkast/pkg/ast"
	"github.com/Sumatoshi-tech/arkast/pkg/kind"
)

type changeRow struct {
	kind kind.Kind
	typ  ast.ChangeType
}

func changeRows(changes []ast.NodeChange) []changeRow {
	rows := make([]changeRow, 0, len(changes))

	for _, change := range changes {
		n := change.After
		if n == nil {
			n = change.Before
		}

		rows = append(rows, changeRow{kind: n.Kind(), typ: change.Type})
	}

	return rows
}

func TestDetectChanges_SameTree(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)
	prog := program(t, sess, exprStmt(t, sess, ident(t, sess, "a")))

	changes, err := ast.DetectChanges(prog, prog)
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestDetectChanges_ReplacedLeaf(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)

	b := ident(t, sess, "b")
	prog := program(t, sess,
		exprStmt(t, sess, binary(t, sess, ident(t, sess, "a"), "+", b)),
		exprStmt(t, sess, ident(t, sess, "untouched")),
	)

	out, err := ast.Transform(prog, func(v *ast.Visitor, n ast.Node) (ast.Node, error) {
		if n == b {
			return number(t, sess, "1"), nil
		}

		return v.VisitEachChild(n)
	})
	require.NoError(t, err)

	changes, err := ast.DetectChanges(prog, out)
	require.NoError(t, err)

	assert.Equal(t, []changeRow{
		{kind: kind.Program, typ: ast.ChangeModified},
		{kind: kind.ExpressionStatement, typ: ast.ChangeModified},
		{kind: kind.BinaryExpression, typ: ast.ChangeModified},
		{kind: kind.Identifier, typ: ast.ChangeRemoved},
		{kind: kind.NumberLiteral, typ: ast.ChangeAdded},
	}, changeRows(changes))

	assert.Equal(t, ast.ChangeSummary{Added: 1, Removed: 1, Modified: 3}, ast.Summarize(changes))
}

func TestDetectChanges_ListEdits(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)

	s1 := exprStmt(t, sess, ident(t, sess, "s1"))
	s2 := exprStmt(t, sess, ident(t, sess, "s2"))
	prog := program(t, sess, s1, s2)

	empty, err := ast.CreateEmptyStatement(sess)
	require.NoError(t, err)

	next, err := ast.UpdateProgram(prog, []ast.Statement{s1, empty})
	require.NoError(t, err)

	changes, err := ast.DetectChanges(prog, next)
	require.NoError(t, err)

	assert.Equal(t, []changeRow{
		{kind: kind.Program, typ: ast.ChangeModified},
		{kind: kind.ExpressionStatement, typ: ast.ChangeRemoved},
		{kind: kind.EmptyStatement, typ: ast.ChangeAdded},
	}, changeRows(changes))
}

func TestChangeType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  ast.ChangeType
		want string
	}{
		{ast.ChangeAdded, "added"},
		{ast.ChangeRemoved, "removed"},
		{ast.ChangeModified, "modified"},
		{ast.ChangeType(42), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.String())
	}
}
