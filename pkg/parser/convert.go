package parser

import (
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
	"github.com/cockroachdb/errors"

	"github.com/Sumatoshi-tech/arkast/pkg/kind"
	"github.com/Sumatoshi-tech/arkast/pkg/native"
	"github.com/Sumatoshi-tech/arkast/pkg/safeconv"
)

// converter maps a tree-sitter tree onto native nodes. The first builder
// error sticks; every later call is a no-op returning Null.
type converter struct {
	b   native.Builder
	res *Result
	err error
	src []byte
}

func str(s string) native.Value          { return native.StringValue(s) }
func one(addr native.Addr) native.Value  { return native.NodeValue(addr) }
func flag(b bool) native.Value           { return native.BoolValue(b) }
func many(addrs []native.Addr) native.Value {
	if addrs == nil {
		addrs = []native.Addr{}
	}

	return native.NodesValue(addrs)
}

func spanOf(n sitter.Node) native.Span {
	if n.IsNull() {
		return native.Span{}
	}

	start, end := n.StartPoint(), n.EndPoint()

	return native.Span{
		Start: native.Position{Line: start.Row, Column: start.Column, Offset: n.StartByte()},
		End:   native.Position{Line: end.Row, Column: end.Column, Offset: n.EndByte()},
	}
}

func named(n sitter.Node) []sitter.Node {
	if n.IsNull() {
		return nil
	}

	out := make([]sitter.Node, 0, n.NamedChildCount())
	for idx := range n.NamedChildCount() {
		if child := n.NamedChild(idx); child.Type() != "comment" {
			out = append(out, child)
		}
	}

	return out
}

func firstNamed(n sitter.Node) sitter.Node {
	if kids := named(n); len(kids) > 0 {
		return kids[0]
	}

	return sitter.Node{}
}

func field(n sitter.Node, name string) sitter.Node {
	if n.IsNull() {
		return sitter.Node{}
	}

	return n.ChildByFieldName(name)
}

// hasToken reports whether n has a direct anonymous child spelled tok.
func hasToken(n sitter.Node, tok string) bool {
	for idx := range n.ChildCount() {
		child := n.Child(idx)
		if !child.IsNamed() && child.Type() == tok {
			return true
		}
	}

	return false
}

func (c *converter) text(n sitter.Node) string {
	if n.IsNull() {
		return ""
	}

	return n.Content(c.src)
}

func (c *converter) slice(start, end uint) string {
	return string(c.src[safeconv.MustUintToInt(start):safeconv.MustUintToInt(end)])
}

func (c *converter) fail(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

func (c *converter) node(n sitter.Node, k kind.Kind, fields ...native.Value) native.Addr {
	if c.err != nil {
		return native.Null
	}

	addr, err := c.b.CreateNode(k, fields...)
	if err != nil {
		c.err = errors.Wrapf(err, "%s from %s at %s", k, n.Type(), spanOf(n).Start)

		return native.Null
	}

	c.fail(c.b.SetSpan(addr, spanOf(n)))
	c.res.Nodes++

	if k.IsStub() {
		c.res.Opaque++
	}

	return addr
}

// keywords collects the modifier keywords written directly on n.
func (c *converter) keywords(n sitter.Node) native.Modifiers {
	mods := native.ModNone

	for idx := range n.ChildCount() {
		child := n.Child(idx)

		word := child.Type()

		switch {
		case child.Type() == "accessibility_modifier", child.Type() == "override_modifier":
			word = c.text(child)
		case child.IsNamed():
			continue
		case word == "?":
			word = "optional"
		}

		if mod, ok := native.ParseModifier(word); ok && mod != native.ModConst {
			mods = mods.With(mod)
		}
	}

	return mods
}

func (c *converter) modify(addr native.Addr, mods native.Modifiers) {
	if c.err != nil || addr == native.Null || mods == native.ModNone {
		return
	}

	current, err := c.b.Modifiers(addr)
	if err != nil {
		c.fail(err)

		return
	}

	c.fail(c.b.SetModifiers(addr, current.With(mods)))
}

func (c *converter) document(addr native.Addr, doc string) {
	if c.err != nil || addr == native.Null || doc == "" {
		return
	}

	c.fail(c.b.SetComment(addr, doc))
}

func (c *converter) collectErrors(n sitter.Node) {
	if n.Type() == "ERROR" {
		c.res.Errors = append(c.res.Errors, SyntaxError{Text: c.text(n), Span: spanOf(n)})

		return
	}

	for idx := range n.ChildCount() {
		c.collectErrors(n.Child(idx))
	}
}

func (c *converter) program(root sitter.Node) native.Addr {
	c.collectErrors(root)

	return c.node(root, kind.Program, many(c.statements(root, 0)))
}

// statements converts the named children of parent from index skip on,
// attaching each JSDoc block to the statement that follows it.
func (c *converter) statements(parent sitter.Node, skip int) []native.Addr {
	var (
		out []native.Addr
		doc string
		pos int
	)

	for idx := range parent.NamedChildCount() {
		child := parent.NamedChild(idx)

		switch child.Type() {
		case "comment":
			if text := c.text(child); strings.HasPrefix(text, "/**") {
				doc = text
			}

			continue
		case "hash_bang_line":
			continue
		}

		pos++
		if pos <= skip {
			continue
		}

		addr := c.stmt(child)
		c.document(addr, doc)
		doc = ""

		out = append(out, addr)
	}

	return out
}

//nolint:gocyclo,cyclop,funlen // one case per statement syntax.
func (c *converter) stmt(n sitter.Node) native.Addr {
	switch n.Type() {
	case "expression_statement":
		return c.node(n, kind.ExpressionStatement, one(c.expr(firstNamed(n))))
	case "lexical_declaration", "variable_declaration":
		return c.variables(n)
	case "function_declaration", "generator_function_declaration", "function_signature":
		return c.node(n, kind.FunctionDeclaration, one(c.function(n)), many(c.annotations(n)))
	case "class_declaration", "abstract_class_declaration":
		decl := c.node(n, kind.ClassDeclaration, one(c.classDefinition(n)), many(c.annotations(n)))
		c.modify(decl, c.keywords(n))

		return decl
	case "return_statement":
		return c.node(n, kind.ReturnStatement, one(c.optExpr(firstNamed(n))))
	case "if_statement":
		alternate := native.Null
		if alt := field(n, "alternative"); !alt.IsNull() {
			alternate = c.stmt(firstNamed(alt))
		}

		return c.node(n, kind.IfStatement,
			one(c.expr(field(n, "condition"))),
			one(c.stmt(field(n, "consequence"))),
			one(alternate),
		)
	case "while_statement":
		return c.node(n, kind.WhileStatement, one(c.expr(field(n, "condition"))), one(c.stmt(field(n, "body"))))
	case "for_in_statement":
		return c.forOf(n)
	case "for_statement":
		return c.forUpdate(n)
	case "break_statement":
		return c.node(n, kind.BreakStatement, one(c.optIdent(field(n, "label"))))
	case "continue_statement":
		return c.node(n, kind.ContinueStatement, one(c.optIdent(field(n, "label"))))
	case "throw_statement":
		return c.node(n, kind.ThrowStatement, one(c.expr(firstNamed(n))))
	case "try_statement":
		return c.try(n)
	case "switch_statement":
		return c.switchStatement(n)
	case "statement_block":
		return c.node(n, kind.BlockStatement, many(c.statements(n, 0)))
	case "empty_statement":
		return c.node(n, kind.EmptyStatement)
	case "import_statement":
		return c.importStatement(n)
	case "export_statement":
		return c.export(n)
	case "ambient_declaration":
		inner := firstNamed(n)
		if inner.IsNull() || !strings.HasSuffix(inner.Type(), "declaration") && inner.Type() != "function_signature" {
			return c.opaqueStatement(n)
		}

		decl := c.stmt(inner)
		c.modify(decl, native.ModDeclare)

		return decl
	case "interface_declaration":
		return c.node(n, kind.TSInterfaceDeclaration,
			one(c.ident(field(n, "name"))),
			many(c.extendsTypes(n)),
			many(c.typeMembers(field(n, "body"))),
		)
	case "type_alias_declaration":
		return c.node(n, kind.TSTypeAliasDeclaration, one(c.ident(field(n, "name"))), one(c.typeNode(field(n, "value"))))
	case "enum_declaration":
		decl := c.node(n, kind.TSEnumDeclaration, one(c.ident(field(n, "name"))), str(c.text(n)))
		c.modify(decl, c.keywords(n))

		return decl
	default:
		return c.opaqueStatement(n)
	}
}

func (c *converter) opaqueStatement(n sitter.Node) native.Addr {
	return c.node(n, kind.OpaqueStatement, str(c.text(n)))
}

func (c *converter) variables(n sitter.Node) native.Addr {
	declKind := c.text(n.Child(0))

	var declarators []native.Addr

	for _, child := range named(n) {
		if child.Type() != "variable_declarator" {
			continue
		}

		declarators = append(declarators, c.node(child, kind.VariableDeclarator,
			one(c.pattern(field(child, "name"))),
			one(c.optType(field(child, "type"))),
			one(c.optExpr(field(child, "value"))),
		))
	}

	return c.node(n, kind.VariableDeclaration, str(declKind), many(declarators))
}

// forOf handles for-of loops. for-in has no node kind and stays opaque.
func (c *converter) forOf(n sitter.Node) native.Addr {
	if !hasToken(n, "of") {
		return c.opaqueStatement(n)
	}

	left := c.pattern(field(n, "left"))

	if declKind := field(n, "kind"); !declKind.IsNull() {
		declarator := c.node(field(n, "left"), kind.VariableDeclarator, one(left), one(native.Null), one(native.Null))
		left = c.node(n, kind.VariableDeclaration, str(c.text(declKind)), many([]native.Addr{declarator}))
	}

	return c.node(n, kind.ForOfStatement,
		one(left),
		one(c.expr(field(n, "right"))),
		one(c.stmt(field(n, "body"))),
		flag(hasToken(n, "await")),
	)
}

func (c *converter) forUpdate(n sitter.Node) native.Addr {
	init := native.Null

	switch initNode := field(n, "initializer"); initNode.Type() {
	case "lexical_declaration", "variable_declaration":
		init = c.variables(initNode)
	case "expression_statement":
		init = c.expr(firstNamed(initNode))
	case "", "empty_statement", ";":
	default:
		init = c.expr(initNode)
	}

	test := native.Null

	switch cond := field(n, "condition"); cond.Type() {
	case "expression_statement":
		test = c.expr(firstNamed(cond))
	case "", "empty_statement", ";":
	default:
		test = c.expr(cond)
	}

	return c.node(n, kind.ForUpdateStatement,
		one(init),
		one(test),
		one(c.optExpr(field(n, "increment"))),
		one(c.stmt(field(n, "body"))),
	)
}

func (c *converter) try(n sitter.Node) native.Addr {
	handler := native.Null
	if clause := field(n, "handler"); !clause.IsNull() {
		handler = c.node(clause, kind.CatchClause,
			one(c.optPattern(field(clause, "parameter"))),
			one(c.stmt(field(clause, "body"))),
		)
	}

	finalizer := native.Null
	if clause := field(n, "finalizer"); !clause.IsNull() {
		finalizer = c.stmt(field(clause, "body"))
	}

	return c.node(n, kind.TryStatement, one(c.stmt(field(n, "body"))), one(handler), one(finalizer))
}

func (c *converter) switchStatement(n sitter.Node) native.Addr {
	var cases []native.Addr

	for _, child := range named(field(n, "body")) {
		switch child.Type() {
		case "switch_case":
			cases = append(cases, c.node(child, kind.SwitchCase,
				one(c.expr(firstNamed(child))),
				many(c.statements(child, 1)),
			))
		case "switch_default":
			cases = append(cases, c.node(child, kind.SwitchCase, one(native.Null), many(c.statements(child, 0))))
		}
	}

	return c.node(n, kind.SwitchStatement, one(c.expr(field(n, "value"))), many(cases))
}

func (c *converter) importStatement(n sitter.Node) native.Addr {
	var specifiers []native.Addr

	for _, clause := range named(n) {
		if clause.Type() != "import_clause" {
			continue
		}

		for _, part := range named(clause) {
			switch part.Type() {
			case "identifier":
				specifiers = append(specifiers, c.node(part, kind.ImportSpecifier,
					one(c.identText(part, "default")), one(c.ident(part))))
			case "namespace_import":
				specifiers = append(specifiers, c.node(part, kind.ImportSpecifier,
					one(c.identText(part, "*")), one(c.ident(firstNamed(part)))))
			case "named_imports":
				for _, spec := range named(part) {
					specifiers = append(specifiers, c.node(spec, kind.ImportSpecifier,
						one(c.ident(field(spec, "name"))), one(c.optIdent(field(spec, "alias")))))
				}
			}
		}
	}

	return c.node(n, kind.ImportDeclaration, one(c.stringLiteral(field(n, "source"))), many(specifiers))
}

func (c *converter) export(n sitter.Node) native.Addr {
	mods := native.ModExport
	if hasToken(n, "default") {
		mods = mods.With(native.ModDefault)
	}

	var addr native.Addr

	switch {
	case !field(n, "declaration").IsNull():
		addr = c.stmt(field(n, "declaration"))
	case !field(n, "value").IsNull():
		addr = c.node(n, kind.ExpressionStatement, one(c.expr(field(n, "value"))))
	default:
		return c.opaqueStatement(n)
	}

	if c.err == nil {
		c.fail(c.b.SetSpan(addr, spanOf(n)))
	}

	c.modify(addr, mods)

	return addr
}

func (c *converter) annotations(n sitter.Node) []native.Addr {
	var out []native.Addr

	for _, child := range named(n) {
		if child.Type() == "decorator" {
			out = append(out, c.annotation(child))
		}
	}

	return out
}

func (c *converter) annotation(n sitter.Node) native.Addr {
	return c.node(n, kind.AnnotationUsage, one(c.expr(firstNamed(n))))
}

func (c *converter) function(n sitter.Node) native.Addr {
	var params []native.Addr

	if list := field(n, "parameters"); !list.IsNull() {
		params = c.params(list)
	} else if single := field(n, "parameter"); !single.IsNull() {
		params = []native.Addr{c.node(single, kind.Parameter,
			one(c.pattern(single)), one(native.Null), one(native.Null), flag(false))}
	}

	body := native.Null
	if b := field(n, "body"); !b.IsNull() {
		if b.Type() == "statement_block" {
			body = c.stmt(b)
		} else {
			body = c.expr(b)
		}
	}

	fn := c.node(n, kind.ScriptFunction,
		one(c.optIdent(field(n, "name"))),
		many(params),
		one(c.optType(field(n, "return_type"))),
		one(body),
	)
	c.modify(fn, c.keywords(n)&native.ModAsync)

	return fn
}

func (c *converter) params(list sitter.Node) []native.Addr {
	var out []native.Addr

	for _, child := range named(list) {
		switch child.Type() {
		case "required_parameter", "optional_parameter":
			pat := field(child, "pattern")

			rest := pat.Type() == "rest_pattern"
			if rest {
				pat = firstNamed(pat)
			}

			param := c.node(child, kind.Parameter,
				one(c.pattern(pat)),
				one(c.optType(field(child, "type"))),
				one(c.optExpr(field(child, "value"))),
				flag(rest),
			)

			mods := c.keywords(child)
			if child.Type() == "optional_parameter" {
				mods = mods.With(native.ModOptional)
			}

			c.modify(param, mods)
			out = append(out, param)
		default:
			out = append(out, c.node(child, kind.Parameter,
				one(c.pattern(child)), one(native.Null), one(native.Null), flag(false)))
		}
	}

	return out
}

func (c *converter) classDefinition(n sitter.Node) native.Addr {
	superClass := native.Null

	var implements []native.Addr

	for _, heritage := range named(n) {
		if heritage.Type() != "class_heritage" {
			continue
		}

		for _, clause := range named(heritage) {
			switch clause.Type() {
			case "extends_clause":
				superClass = c.expr(firstNamed(clause))
			case "implements_clause":
				for _, typ := range named(clause) {
					implements = append(implements, c.typeNode(typ))
				}
			}
		}
	}

	return c.node(n, kind.ClassDefinition,
		one(c.optIdent(field(n, "name"))),
		one(superClass),
		many(implements),
		many(c.classMembers(field(n, "body"))),
	)
}

func (c *converter) classMembers(body sitter.Node) []native.Addr {
	var (
		out     []native.Addr
		pending []native.Addr
		doc     string
	)

	for idx := range body.NamedChildCount() {
		child := body.NamedChild(idx)

		var addr native.Addr

		switch child.Type() {
		case "comment":
			if text := c.text(child); strings.HasPrefix(text, "/**") {
				doc = text
			}

			continue
		case "decorator":
			pending = append(pending, c.annotation(child))

			continue
		case "method_definition", "method_signature", "abstract_method_signature":
			addr = c.method(child, append(pending, c.annotations(child)...))
		case "public_field_definition", "property_signature":
			addr = c.classProperty(child, append(pending, c.annotations(child)...))
		default:
			addr = c.opaqueExpression(child)
		}

		c.document(addr, doc)
		out = append(out, addr)
		pending, doc = nil, ""
	}

	return out
}

func (c *converter) method(n sitter.Node, annotations []native.Addr) native.Addr {
	key := field(n, "name")

	methodKind := "method"

	switch {
	case c.text(key) == "constructor":
		methodKind = "constructor"
	case hasToken(n, "get"):
		methodKind = "get"
	case hasToken(n, "set"):
		methodKind = "set"
	}

	fn := c.node(n, kind.ScriptFunction,
		one(native.Null),
		many(c.params(field(n, "parameters"))),
		one(c.optType(field(n, "return_type"))),
		one(c.optStmt(field(n, "body"))),
	)

	method := c.node(n, kind.MethodDefinition, str(methodKind), one(c.propertyKey(key)), one(fn), many(annotations))
	c.modify(method, c.keywords(n))

	return method
}

func (c *converter) classProperty(n sitter.Node, annotations []native.Addr) native.Addr {
	prop := c.node(n, kind.ClassProperty,
		one(c.propertyKey(field(n, "name"))),
		one(c.optType(field(n, "type"))),
		one(c.optExpr(field(n, "value"))),
		many(annotations),
	)
	c.modify(prop, c.keywords(n))

	return prop
}

func (c *converter) extendsTypes(n sitter.Node) []native.Addr {
	var out []native.Addr

	for _, clause := range named(n) {
		if clause.Type() != "extends_type_clause" {
			continue
		}

		for _, typ := range named(clause) {
			out = append(out, c.typeNode(typ))
		}
	}

	return out
}

func (c *converter) typeMembers(body sitter.Node) []native.Addr {
	var out []native.Addr

	for _, member := range named(body) {
		if member.Type() != "property_signature" {
			out = append(out, c.opaqueExpression(member))

			continue
		}

		sig := c.node(member, kind.TSPropertySignature,
			one(c.propertyKey(field(member, "name"))),
			one(c.optType(field(member, "type"))),
		)
		c.modify(sig, c.keywords(member))
		out = append(out, sig)
	}

	return out
}
