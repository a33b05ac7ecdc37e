package parser

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/Sumatoshi-tech/arkast/pkg/kind"
	"github.com/Sumatoshi-tech/arkast/pkg/native"
)

func (c *converter) optExpr(n sitter.Node) native.Addr {
	if n.IsNull() {
		return native.Null
	}

	return c.expr(n)
}

func (c *converter) optStmt(n sitter.Node) native.Addr {
	if n.IsNull() {
		return native.Null
	}

	return c.stmt(n)
}

func (c *converter) ident(n sitter.Node) native.Addr {
	return c.identText(n, c.text(n))
}

func (c *converter) identText(n sitter.Node, name string) native.Addr {
	return c.node(n, kind.Identifier, str(name), one(native.Null))
}

func (c *converter) optIdent(n sitter.Node) native.Addr {
	if n.IsNull() {
		return native.Null
	}

	return c.ident(n)
}

func (c *converter) opaqueExpression(n sitter.Node) native.Addr {
	return c.node(n, kind.OpaqueExpression, str(c.text(n)))
}

func (c *converter) exprs(parent sitter.Node) []native.Addr {
	var out []native.Addr

	for _, child := range named(parent) {
		out = append(out, c.expr(child))
	}

	return out
}

// unquote strips the delimiters of a string token and keeps escapes as
// written.
func unquote(text string) string {
	if len(text) < 2 {
		return text
	}

	return text[1 : len(text)-1]
}

func (c *converter) stringLiteral(n sitter.Node) native.Addr {
	return c.node(n, kind.StringLiteral, str(unquote(c.text(n))))
}

func isOptionalChain(n sitter.Node) bool {
	if hasToken(n, "?.") {
		return true
	}

	for idx := range n.NamedChildCount() {
		if n.NamedChild(idx).Type() == "optional_chain" {
			return true
		}
	}

	return false
}

//nolint:gocyclo,cyclop,funlen // one case per expression syntax.
func (c *converter) expr(n sitter.Node) native.Addr {
	switch n.Type() {
	case "identifier", "property_identifier", "private_property_identifier",
		"shorthand_property_identifier", "type_identifier", "statement_identifier":
		return c.ident(n)
	case "number":
		return c.node(n, kind.NumberLiteral, str(c.text(n)))
	case "string":
		return c.stringLiteral(n)
	case "true", "false":
		return c.node(n, kind.BooleanLiteral, flag(n.Type() == "true"))
	case "null":
		return c.node(n, kind.NullLiteral)
	case "undefined":
		return c.node(n, kind.UndefinedLiteral)
	case "template_string":
		return c.template(n)
	case "this":
		return c.node(n, kind.ThisExpression)
	case "super":
		return c.node(n, kind.SuperExpression)
	case "parenthesized_expression":
		return c.expr(firstNamed(n))
	case "binary_expression":
		return c.node(n, kind.BinaryExpression,
			one(c.expr(field(n, "left"))),
			str(c.text(field(n, "operator"))),
			one(c.expr(field(n, "right"))),
		)
	case "unary_expression":
		return c.node(n, kind.UnaryExpression, str(c.text(field(n, "operator"))), one(c.expr(field(n, "argument"))))
	case "update_expression":
		first := n.Child(0)

		return c.node(n, kind.UpdateExpression,
			str(c.text(field(n, "operator"))),
			one(c.expr(field(n, "argument"))),
			flag(first.Type() == "++" || first.Type() == "--"),
		)
	case "assignment_expression":
		return c.node(n, kind.AssignmentExpression,
			one(c.pattern(field(n, "left"))), str("="), one(c.expr(field(n, "right"))))
	case "augmented_assignment_expression":
		return c.node(n, kind.AssignmentExpression,
			one(c.pattern(field(n, "left"))), str(c.text(field(n, "operator"))), one(c.expr(field(n, "right"))))
	case "ternary_expression":
		return c.node(n, kind.ConditionalExpression,
			one(c.expr(field(n, "condition"))),
			one(c.expr(field(n, "consequence"))),
			one(c.expr(field(n, "alternative"))),
		)
	case "call_expression":
		return c.call(n)
	case "new_expression":
		return c.node(n, kind.NewExpression,
			one(c.expr(field(n, "constructor"))),
			many(c.typeList(field(n, "type_arguments"))),
			many(c.exprs(field(n, "arguments"))),
		)
	case "member_expression":
		return c.node(n, kind.MemberExpression,
			one(c.expr(field(n, "object"))),
			one(c.ident(field(n, "property"))),
			flag(false),
			flag(isOptionalChain(n)),
		)
	case "subscript_expression":
		return c.node(n, kind.MemberExpression,
			one(c.expr(field(n, "object"))),
			one(c.expr(field(n, "index"))),
			flag(true),
			flag(isOptionalChain(n)),
		)
	case "arrow_function":
		return c.node(n, kind.ArrowFunctionExpression, one(c.function(n)))
	case "function_expression", "function":
		return c.node(n, kind.FunctionExpression, one(c.function(n)))
	case "array":
		return c.node(n, kind.ArrayExpression, many(c.exprs(n)))
	case "object":
		return c.node(n, kind.ObjectExpression, many(c.properties(n)))
	case "spread_element":
		return c.node(n, kind.SpreadElement, one(c.expr(firstNamed(n))))
	case "await_expression":
		return c.node(n, kind.AwaitExpression, one(c.expr(firstNamed(n))))
	case "as_expression":
		return c.asExpression(n)
	case "non_null_expression":
		return c.node(n, kind.TSNonNullExpression, one(c.expr(firstNamed(n))))
	default:
		return c.opaqueExpression(n)
	}
}

func (c *converter) call(n sitter.Node) native.Addr {
	args := field(n, "arguments")
	if args.Type() == "template_string" {
		return c.opaqueExpression(n)
	}

	return c.node(n, kind.CallExpression,
		one(c.expr(field(n, "function"))),
		many(c.typeList(field(n, "type_arguments"))),
		many(c.exprs(args)),
		flag(isOptionalChain(n)),
	)
}

// asExpression keeps `x as const` as a primitive type named const.
func (c *converter) asExpression(n sitter.Node) native.Addr {
	kids := named(n)
	if len(kids) == 0 {
		return c.opaqueExpression(n)
	}

	var typ native.Addr
	if len(kids) > 1 {
		typ = c.typeNode(kids[1])
	} else {
		typ = c.node(n, kind.PrimitiveType, str("const"))
	}

	return c.node(n, kind.TSAsExpression, one(c.expr(kids[0])), one(typ))
}

// template splits a template string into its literal chunks and the
// substitutions between them. There is always one more chunk than
// substitutions.
func (c *converter) template(n sitter.Node) native.Addr {
	var quasis, exprs []native.Addr

	start := n.StartByte() + 1

	for _, sub := range named(n) {
		if sub.Type() != "template_substitution" {
			continue
		}

		quasis = append(quasis, c.node(sub, kind.TemplateElement, str(c.slice(start, sub.StartByte()))))
		exprs = append(exprs, c.expr(firstNamed(sub)))
		start = sub.EndByte()
	}

	end := max(n.EndByte()-1, start)
	quasis = append(quasis, c.node(n, kind.TemplateElement, str(c.slice(start, end))))

	return c.node(n, kind.TemplateLiteral, many(quasis), many(exprs))
}

func (c *converter) propertyKey(n sitter.Node) native.Addr {
	switch n.Type() {
	case "computed_property_name":
		return c.expr(firstNamed(n))
	case "string":
		return c.stringLiteral(n)
	case "number":
		return c.node(n, kind.NumberLiteral, str(c.text(n)))
	default:
		return c.ident(n)
	}
}

func (c *converter) properties(obj sitter.Node) []native.Addr {
	var out []native.Addr

	for _, child := range named(obj) {
		switch child.Type() {
		case "pair":
			key := field(child, "key")
			out = append(out, c.node(child, kind.Property,
				one(c.propertyKey(key)),
				one(c.expr(field(child, "value"))),
				flag(key.Type() == "computed_property_name"),
				flag(false),
			))
		case "shorthand_property_identifier":
			out = append(out, c.node(child, kind.Property,
				one(c.ident(child)), one(c.ident(child)), flag(false), flag(true)))
		case "method_definition":
			key := field(child, "name")
			fn := c.node(child, kind.FunctionExpression, one(c.function(child)))
			out = append(out, c.node(child, kind.Property,
				one(c.propertyKey(key)), one(fn), flag(key.Type() == "computed_property_name"), flag(false)))
		default:
			out = append(out, c.expr(child))
		}
	}

	return out
}

func (c *converter) optPattern(n sitter.Node) native.Addr {
	if n.IsNull() {
		return native.Null
	}

	return c.pattern(n)
}

// pattern converts a binding or assignment target. Destructuring produces
// the pattern kinds; anything else is an ordinary expression.
func (c *converter) pattern(n sitter.Node) native.Addr {
	switch n.Type() {
	case "identifier", "shorthand_property_identifier_pattern":
		return c.ident(n)
	case "array_pattern":
		var elements []native.Addr
		for _, child := range named(n) {
			elements = append(elements, c.pattern(child))
		}

		return c.node(n, kind.ArrayPattern, many(elements))
	case "object_pattern":
		return c.node(n, kind.ObjectPattern, many(c.patternProperties(n)))
	case "assignment_pattern":
		return c.node(n, kind.AssignmentPattern,
			one(c.pattern(field(n, "left"))), str("="), one(c.expr(field(n, "right"))))
	case "rest_pattern":
		return c.node(n, kind.RestElement, one(c.pattern(firstNamed(n))))
	default:
		return c.expr(n)
	}
}

func (c *converter) patternProperties(n sitter.Node) []native.Addr {
	var out []native.Addr

	for _, child := range named(n) {
		switch child.Type() {
		case "pair_pattern":
			key := field(child, "key")
			out = append(out, c.node(child, kind.Property,
				one(c.propertyKey(key)),
				one(c.pattern(field(child, "value"))),
				flag(key.Type() == "computed_property_name"),
				flag(false),
			))
		case "shorthand_property_identifier_pattern":
			out = append(out, c.node(child, kind.Property,
				one(c.ident(child)), one(c.ident(child)), flag(false), flag(true)))
		case "object_assignment_pattern":
			left := field(child, "left")
			value := c.node(child, kind.AssignmentPattern,
				one(c.pattern(left)), str("="), one(c.expr(field(child, "right"))))
			out = append(out, c.node(child, kind.Property,
				one(c.ident(left)), one(value), flag(false), flag(true)))
		default:
			out = append(out, c.pattern(child))
		}
	}

	return out
}

func (c *converter) optType(n sitter.Node) native.Addr {
	if n.IsNull() {
		return native.Null
	}

	return c.typeNode(n)
}

func (c *converter) typeList(n sitter.Node) []native.Addr {
	var out []native.Addr

	for _, child := range named(n) {
		out = append(out, c.typeNode(child))
	}

	return out
}

func (c *converter) typeNode(n sitter.Node) native.Addr {
	switch n.Type() {
	case "type_annotation", "parenthesized_type", "opting_type_annotation", "asserts_annotation":
		return c.typeNode(firstNamed(n))
	case "predefined_type", "literal_type":
		return c.node(n, kind.PrimitiveType, str(c.text(n)))
	case "this_type":
		return c.node(n, kind.PrimitiveType, str("this"))
	case "generic_type":
		name := field(n, "name")
		if name.IsNull() {
			name = firstNamed(n)
		}

		return c.node(n, kind.TypeReference, one(c.ident(name)), many(c.typeList(field(n, "type_arguments"))))
	case "union_type":
		return c.node(n, kind.UnionType, many(c.unionMembers(n)))
	case "array_type":
		return c.node(n, kind.ArrayType, one(c.typeNode(firstNamed(n))))
	case "function_type":
		return c.node(n, kind.FunctionType,
			many(c.params(field(n, "parameters"))),
			one(c.typeNode(field(n, "return_type"))),
		)
	default:
		return c.node(n, kind.TypeReference, one(c.ident(n)), many(nil))
	}
}

// unionMembers flattens the left-nested union tree-sitter builds for A | B | C.
func (c *converter) unionMembers(n sitter.Node) []native.Addr {
	var out []native.Addr

	for _, child := range named(n) {
		if child.Type() == "union_type" {
			out = append(out, c.unionMembers(child)...)

			continue
		}

		out = append(out, c.typeNode(child))
	}

	return out
}
