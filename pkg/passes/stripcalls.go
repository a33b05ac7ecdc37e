package passes

import (
	"github.com/Sumatoshi-tech/arkast/pkg/ast"
)

// DefaultCallees are stripped when no callees are configured.
var DefaultCallees = []string{"console.log", "console.debug", "console.info"}

// StripCalls removes expression statements that only call one of callees.
// A statement in a list is dropped; a statement in a single statement slot,
// such as an if branch, becomes an empty statement.
func StripCalls(callees ...string) ast.Pass {
	match := make(map[string]bool, len(callees))
	for _, callee := range callees {
		match[callee] = true
	}

	return ast.PassFunc(NameStripCalls, ast.PhaseParsed, func(v *ast.Visitor, n ast.Node) (ast.Node, error) {
		stmt, ok := n.(*ast.ExpressionStatement)
		if !ok {
			return v.VisitEachChild(n)
		}

		expr, err := stmt.Expression()
		if err != nil {
			return nil, err
		}

		call, ok := expr.(*ast.CallExpression)
		if !ok {
			return v.VisitEachChild(n)
		}

		callee, err := call.Callee()
		if err != nil {
			return nil, err
		}

		if !match[dottedName(callee)] {
			return v.VisitEachChild(n)
		}

		switch v.Parent().(type) {
		case *ast.Program, *ast.BlockStatement, *ast.SwitchCase:
			return nil, nil
		default:
			return ast.CreateEmptyStatement(v.Session())
		}
	})
}

// dottedName spells identifiers and dotted member chains; anything else
// yields "".
func dottedName(n ast.Expression) string {
	switch n := n.(type) {
	case *ast.Identifier:
		name, _ := n.Name()

		return name
	case *ast.MemberExpression:
		if computed, _ := n.Computed(); computed {
			return ""
		}

		object, _ := n.Object()
		property, _ := n.Property()

		head, tail := dottedName(object), dottedName(property)
		if head == "" || tail == "" {
			return ""
		}

		return head + "." + tail
	default:
		return ""
	}
}
