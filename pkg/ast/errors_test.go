package ast_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/arkast/pkg/ast"
	"github.com/Sumatoshi-tech/arkast/pkg/kind"
	"github.com/Sumatoshi-tech/arkast/pkg/native"
)

func TestErrors_Taxonomy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		trigger func(t *testing.T) error
		want    error
	}{
		{
			name: "stale address",
			trigger: func(t *testing.T) error {
				t.Helper()

				sess, svc := newSession(t)
				_, err := sess.Wrap(native.Addr(uint64(svc.ID())<<32 | 999))

				return err
			},
			want: ast.ErrInvalidPeer,
		},
		{
			name: "downcast to wrong kind",
			trigger: func(t *testing.T) error {
				t.Helper()

				sess, _ := newSession(t)
				_, err := ast.As[*ast.BinaryExpression](ident(t, sess, "a"))

				return err
			},
			want: ast.ErrTypeMismatch,
		},
		{
			name: "wrong field count",
			trigger: func(t *testing.T) error {
				t.Helper()

				sess, _ := newSession(t)
				_, err := sess.Create(kind.Identifier, native.StringValue("a"))

				return err
			},
			want: ast.ErrMalformedUpdate,
		},
		{
			name: "statement in expression slot",
			trigger: func(t *testing.T) error {
				t.Helper()

				sess, _ := newSession(t)
				empty, err := ast.CreateEmptyStatement(sess)
				require.NoError(t, err)

				_, err = sess.Create(kind.ExpressionStatement, native.NodeValue(empty.Addr()))

				return err
			},
			want: ast.ErrMalformedUpdate,
		},
		{
			name: "stub text",
			trigger: func(t *testing.T) error {
				t.Helper()

				sess, _ := newSession(t)
				stub, err := sess.Create(kind.OpaqueExpression, sampleFields(t, sess, kind.OpaqueExpression)...)
				require.NoError(t, err)

				return stub.(*ast.Unsupported).Err()
			},
			want: ast.ErrUnsupported,
		},
		{
			name: "type of unchecked tree",
			trigger: func(t *testing.T) error {
				t.Helper()

				sess, _ := newSession(t)
				_, err := sess.TypeOf(ident(t, sess, "a"))

				return err
			},
			want: ast.ErrUnchecked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.trigger(t)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestErrors_ClassifiedKeepsBothChains(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, ast.ErrForeignSession, ast.ErrInvalidPeer)
	require.ErrorIs(t, ast.ErrRequiredField, ast.ErrMalformedUpdate)
	assert.NotErrorIs(t, ast.ErrForeignSession, ast.ErrMalformedUpdate)
	assert.Equal(t, "node belongs to another session", ast.ErrForeignSession.Error())
}

func TestErrors_NativeCauseSurvives(t *testing.T) {
	t.Parallel()

	sess, _ := newSession(t)

	_, err := sess.Create(kind.Identifier)
	require.ErrorIs(t, err, ast.ErrMalformedUpdate)
	require.ErrorIs(t, err, native.ErrMalformed)
	assert.Contains(t, err.Error(), "create Identifier")
}

func TestNodeError_Span(t *testing.T) {
	t.Parallel()

	sess, svc := newSession(t)

	stmt := exprStmt(t, sess, ident(t, sess, "a"))
	span := native.Span{
		Start: native.Position{Line: 2, Column: 4, Offset: 20},
		End:   native.Position{Line: 2, Column: 6, Offset: 22},
	}
	require.NoError(t, svc.SetSpan(stmt.Addr(), span))

	_, err := ast.VisitEachChild(stmt, func(_ *ast.Visitor, _ ast.Node) (ast.Node, error) {
		return nil, nil
	})
	require.Error(t, err)

	var nodeErr *ast.NodeError
	require.ErrorAs(t, err, &nodeErr)
	assert.Equal(t, kind.ExpressionStatement, nodeErr.Kind)
	assert.Equal(t, stmt.Addr(), nodeErr.Addr)

	got, ok := ast.SpanOf(err)
	require.True(t, ok)
	assert.Equal(t, span, got)
	assert.Contains(t, err.Error(), "ExpressionStatement at 3:5")
}

func TestNodeError_NoSpan(t *testing.T) {
	t.Parallel()

	_, ok := ast.SpanOf(errors.New("plain"))
	assert.False(t, ok)

	err := &ast.NodeError{Err: ast.ErrTypeMismatch, Kind: kind.Identifier, Addr: native.Addr(7)}
	assert.Equal(t, "Identifier 0x7: type mismatch", err.Error())
	require.ErrorIs(t, err, ast.ErrTypeMismatch)
}
