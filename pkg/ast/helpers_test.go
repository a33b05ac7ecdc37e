package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/arkast/pkg/ast"
	"github.com/Sumatoshi-tech/arkast/pkg/kind"
	"github.com/Sumatoshi-tech/arkast/pkg/native"
	"github.com/Sumatoshi-tech/arkast/pkg/native/arena"
)

func newSession(t *testing.T) (*ast.Session, *arena.Arena) {
	t.Helper()

	svc := arena.New()

	sess, err := ast.NewSession(svc)
	require.NoError(t, err)

	t.Cleanup(sess.Dispose)

	return sess, svc
}

func ident(t *testing.T, s *ast.Session, name string) *ast.Identifier {
	t.Helper()

	id, err := ast.CreateIdentifier(s, name, nil)
	require.NoError(t, err)

	return id
}

func number(t *testing.T, s *ast.Session, text string) *ast.NumberLiteral {
	t.Helper()

	lit, err := ast.CreateNumberLiteral(s, text)
	require.NoError(t, err)

	return lit
}

func binary(t *testing.T, s *ast.Session, left ast.Expression, op string, right ast.Expression) *ast.BinaryExpression {
	t.Helper()

	bin, err := ast.CreateBinaryExpression(s, left, op, right)
	require.NoError(t, err)

	return bin
}

func exprStmt(t *testing.T, s *ast.Session, expr ast.Expression) *ast.ExpressionStatement {
	t.Helper()

	stmt, err := ast.CreateExpressionStatement(s, expr)
	require.NoError(t, err)

	return stmt
}

// program builds a Program from stmts and installs it as the session root.
func program(t *testing.T, s *ast.Session, stmts ...ast.Statement) *ast.Program {
	t.Helper()

	prog, err := ast.CreateProgram(s, stmts)
	require.NoError(t, err)
	require.NoError(t, s.SetRoot(prog))

	return prog
}

func statements(t *testing.T, prog *ast.Program) []ast.Statement {
	t.Helper()

	stmts, err := prog.Statements()
	require.NoError(t, err)

	return stmts
}

// sampleFields builds a valid positional field list for k, creating
// whatever children its required slots need.
func sampleFields(t *testing.T, s *ast.Session, k kind.Kind) []native.Value {
	t.Helper()

	spec := k.Spec()
	fields := make([]native.Value, len(spec.Fields))

	for idx, field := range spec.Fields {
		switch field.Type {
		case kind.FieldNode:
			if field.Optional {
				fields[idx] = native.NodeValue(native.Null)

				continue
			}

			fields[idx] = native.NodeValue(sampleChild(t, s, field).Addr())
		case kind.FieldNodes:
			fields[idx] = native.NodesValue([]native.Addr{sampleChild(t, s, field).Addr()})
		case kind.FieldString:
			fields[idx] = native.StringValue("v")
		case kind.FieldInt:
			fields[idx] = native.IntValue(1)
		case kind.FieldBool:
			fields[idx] = native.BoolValue(true)
		}
	}

	return fields
}

func sampleChild(t *testing.T, s *ast.Session, field kind.FieldSpec) ast.Node {
	t.Helper()

	target := field.Kind
	if target == kind.Invalid {
		switch field.Accepts {
		case kind.CategoryLiteral:
			target = kind.NumberLiteral
		case kind.CategoryTypeNode:
			target = kind.PrimitiveType
		case kind.CategoryStatement:
			target = kind.EmptyStatement
		case kind.CategoryDeclaration:
			target = kind.VariableDeclaration
		default:
			target = kind.Identifier
		}
	}

	n, err := s.Create(target, sampleFields(t, s, target)...)
	require.NoError(t, err)

	return n
}
