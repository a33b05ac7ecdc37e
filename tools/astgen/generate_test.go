package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKinds(t *testing.T) {
	t.Parallel()

	schema, err := ParseSchema([]byte(tinySchema))
	require.NoError(t, err)

	src, err := GenerateKinds(schema, "schema/tiny.yaml")
	require.NoError(t, err)

	out := string(src)
	assert.True(t, strings.HasPrefix(out, "// Code generated by astgen from schema/tiny.yaml. DO NOT EDIT."))
	assert.Contains(t, out, "const SchemaVersion = 1")
	assert.Contains(t, out, "RepresentedBy: ArrayExpression,")
	assert.Contains(t, out, "Stub:     true,")
	assert.Contains(t, out, `{Name: "statements", Type: FieldNodes, Accepts: CategoryStatement},`)

	// Schema order is kept.
	assert.Less(t, strings.Index(out, "\tProgram\n"), strings.Index(out, "\tIdentifier\n"))
	assert.Less(t, strings.Index(out, "\tIdentifier\n"), strings.Index(out, "\tOpaqueStatement\n"))
}

func TestGenerateNodes(t *testing.T) {
	t.Parallel()

	schema, err := ParseSchema([]byte(tinySchema))
	require.NoError(t, err)

	src, err := GenerateNodes(schema, "schema/tiny.yaml")
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "type Identifier struct{ expressionBase }")
	assert.Contains(t, out, "func CreateIdentifier(s *Session, name string) (*Identifier, error)")
	assert.Contains(t, out, "func UpdateExpressionStatement(original *ExpressionStatement, expression Expression) (*ExpressionStatement, error)")
	assert.Contains(t, out, "func (n *Program) Statements() ([]Statement, error)")

	// Represented and stub kinds get no wrapper of their own.
	assert.NotContains(t, out, "type ArrayPattern struct")
	assert.NotContains(t, out, "type OpaqueStatement struct")
	assert.NotContains(t, out, "kind.ArrayPattern:")
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	schema, err := ParseSchema([]byte(tinySchema))
	require.NoError(t, err)

	first, err := GenerateNodes(schema, "schema/tiny.yaml")
	require.NoError(t, err)

	for range 3 {
		again, genErr := GenerateNodes(schema, "schema/tiny.yaml")
		require.NoError(t, genErr)
		assert.Equal(t, first, again)
	}
}
