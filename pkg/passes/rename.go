package passes

import (
	"github.com/Sumatoshi-tech/arkast/pkg/ast"
)

// Rename replaces identifier names found in mapping. Property names after a
// dot and non-computed keys are left alone. A renamed shorthand property is
// expanded so its key keeps the old name.
func Rename(mapping map[string]string) ast.Pass {
	return ast.PassFunc(NameRename, ast.PhaseParsed, func(v *ast.Visitor, n ast.Node) (ast.Node, error) {
		return rename(v, n, mapping)
	})
}

func rename(v *ast.Visitor, n ast.Node, mapping map[string]string) (ast.Node, error) {
	switch n := n.(type) {
	case *ast.Identifier:
		if isKey(v.Parent(), n) {
			return n, nil
		}

		name, err := n.Name()
		if err != nil {
			return nil, err
		}

		next, err := v.VisitEachChild(n)
		if err != nil {
			return nil, err
		}

		to, ok := mapping[name]
		if !ok {
			return next, nil
		}

		id, err := ast.As[*ast.Identifier](next)
		if err != nil {
			return nil, err
		}

		typ, err := id.TypeAnnotation()
		if err != nil {
			return nil, err
		}

		return ast.UpdateIdentifier(id, to, typ)
	case *ast.Property:
		return renameProperty(v, n)
	default:
		return v.VisitEachChild(n)
	}
}

func renameProperty(v *ast.Visitor, prop *ast.Property) (ast.Node, error) {
	next, err := v.VisitEachChild(prop)
	if err != nil || next == ast.Node(prop) {
		return next, err
	}

	rebuilt, err := ast.As[*ast.Property](next)
	if err != nil {
		return nil, err
	}

	shorthand, err := rebuilt.Shorthand()
	if err != nil || !shorthand {
		return rebuilt, err
	}

	key, err := rebuilt.Key()
	if err != nil {
		return nil, err
	}

	value, err := rebuilt.Value()
	if err != nil {
		return nil, err
	}

	return ast.UpdateProperty(rebuilt, key, value, false, false)
}

// isKey reports whether id names a member rather than a binding.
func isKey(parent ast.Node, id *ast.Identifier) bool {
	switch parent := parent.(type) {
	case *ast.MemberExpression:
		computed, _ := parent.Computed()
		property, _ := parent.Property()

		return !computed && property == ast.Expression(id)
	case *ast.Property:
		computed, _ := parent.Computed()
		key, _ := parent.Key()

		return !computed && key == ast.Expression(id)
	case *ast.ClassProperty:
		key, _ := parent.Key()

		return key == ast.Expression(id)
	case *ast.MethodDefinition:
		key, _ := parent.Key()

		return key == ast.Expression(id)
	case *ast.TSPropertySignature:
		key, _ := parent.Key()

		return key == ast.Expression(id)
	default:
		return false
	}
}
