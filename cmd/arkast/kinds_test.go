package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/arkast/pkg/kind"
)

func TestRunKinds(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, runKinds("", &buf))

	out := buf.String()
	assert.Contains(t, out, "BinaryExpression")
	assert.Contains(t, out, "left, operator, right")
	assert.Contains(t, out, "statements[]")
	assert.Contains(t, out, "unsupported")
}

func TestRunKinds_Category(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, runKinds("Declaration", &buf))

	out := buf.String()
	assert.Contains(t, out, "FunctionDeclaration")
	assert.NotContains(t, out, "IfStatement")
	assert.NotContains(t, out, "NumberLiteral")
}

func TestRunKinds_UnknownCategory(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, runKinds("Widget", &bytes.Buffer{}), ErrUnknownCategory)
}

func TestFieldList(t *testing.T) {
	t.Parallel()

	fields := []kind.FieldSpec{
		{Name: "id", Type: kind.FieldNode, Optional: true},
		{Name: "params", Type: kind.FieldNodes},
		{Name: "async", Type: kind.FieldBool},
	}

	assert.Equal(t, "id?, params[], async", fieldList(fields))
}
