package kind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/arkast/pkg/kind"
)

func TestCanonical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   kind.Kind
		want kind.Kind
	}{
		{kind.ArrayPattern, kind.ArrayExpression},
		{kind.ObjectPattern, kind.ObjectExpression},
		{kind.AssignmentPattern, kind.AssignmentExpression},
		{kind.RestElement, kind.SpreadElement},
		{kind.Identifier, kind.Identifier},
		{kind.Invalid, kind.Invalid},
		{kind.Kind(60000), kind.Kind(60000)},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, kind.Canonical(tt.in))
		})
	}
}

func TestCanonical_RepresentativesShareLayout(t *testing.T) {
	t.Parallel()

	for _, k := range kind.All() {
		rep := kind.Canonical(k)
		if rep == k {
			continue
		}

		assert.Equal(t, k.Spec().Fields, rep.Spec().Fields, "%s vs %s", k, rep)
		assert.Equal(t, k.Category(), rep.Category(), "%s vs %s", k, rep)
		assert.Equal(t, rep, kind.Canonical(rep), "representatives map to themselves")
	}
}

func TestCategory_Lattice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cat  kind.Category
		k    kind.Kind
		want bool
	}{
		{kind.CategoryExpression, kind.NumberLiteral, true},
		{kind.CategoryExpression, kind.PrimitiveType, true},
		{kind.CategoryLiteral, kind.Identifier, false},
		{kind.CategoryStatement, kind.VariableDeclaration, true},
		{kind.CategoryDeclaration, kind.ExpressionStatement, false},
		{kind.CategoryNode, kind.ExpressionStatement, true},
		{kind.CategoryNode, kind.Program, true},
		{kind.CategoryExpression, kind.Program, false},
		{kind.CategoryNode, kind.Invalid, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.cat.Contains(tt.k), "%s contains %s", tt.cat, tt.k)
	}

	super, ok := kind.CategoryDeclaration.Super()
	require.True(t, ok)
	assert.Equal(t, kind.CategoryStatement, super)

	_, ok = kind.CategoryNode.Super()
	assert.False(t, ok)
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	cat, ok := kind.ParseCategory("TypeNode")
	require.True(t, ok)
	assert.Equal(t, kind.CategoryTypeNode, cat)

	_, ok = kind.ParseCategory("Pattern")
	assert.False(t, ok)

	assert.Equal(t, "Category(42)", kind.Category(42).String())
}

func TestLookupAndAll(t *testing.T) {
	t.Parallel()

	all := kind.All()
	require.Len(t, all, kind.Count())

	seen := make(map[string]bool, len(all))

	for _, k := range all {
		name := k.String()
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true

		got, ok := kind.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, k, got)
	}

	_, ok := kind.Lookup("NoSuchKind")
	assert.False(t, ok)

	assert.Equal(t, "Invalid", kind.Invalid.String())
	assert.Equal(t, "Kind(60000)", kind.Kind(60000).String())
	assert.Equal(t, kind.Spec{}, kind.Kind(60000).Spec())
}

func TestFieldSpec(t *testing.T) {
	t.Parallel()

	spec := kind.BinaryExpression.Spec()

	left, idx, ok := spec.Field("left")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.True(t, left.Accept(kind.Identifier))
	assert.False(t, left.Accept(kind.EmptyStatement))
	assert.Equal(t, "Expression", left.Expect())

	op, _, ok := spec.Field("operator")
	require.True(t, ok)
	assert.False(t, op.Accept(kind.Identifier), "scalar fields take no children")

	_, _, ok = spec.Field("missing")
	assert.False(t, ok)

	// A slot pinned to a concrete kind also takes kinds represented by it.
	for _, k := range kind.All() {
		for _, field := range k.Spec().Fields {
			if field.Kind == kind.ArrayExpression {
				assert.True(t, field.Accept(kind.ArrayPattern))
			}
		}
	}
}

func TestStubKinds(t *testing.T) {
	t.Parallel()

	for _, k := range []kind.Kind{kind.OpaqueExpression, kind.OpaqueStatement, kind.TSEnumDeclaration} {
		assert.True(t, k.IsStub(), k.String())
	}

	assert.False(t, kind.Identifier.IsStub())
}

func TestFieldType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "nodes", kind.FieldNodes.String())
	assert.True(t, kind.FieldNode.IsNode())
	assert.False(t, kind.FieldBool.IsNode())
	assert.Equal(t, "FieldType(9)", kind.FieldType(9).String())
}
