package passes

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/Sumatoshi-tech/arkast/pkg/ast"
	"github.com/Sumatoshi-tech/arkast/pkg/native"
)

const indentUnit = "  "

// Print writes the tree at root as source text. Opaque nodes are written as
// the text they were parsed from.
func Print(w io.Writer, root ast.Node) error {
	text, err := Sprint(root)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, text)
	if err != nil {
		return errors.Wrap(err, "write source")
	}

	return nil
}

// Sprint returns the tree at root as source text.
func Sprint(root ast.Node) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(printError)
			if !ok {
				panic(r)
			}

			err = errors.Wrap(pe.err, "print")
		}
	}()

	p := &printer{}
	p.node(root)

	return p.buf.String(), nil
}

type printer struct {
	buf    strings.Builder
	indent int
}

// printError carries an accessor error out of the recursive printer up to
// Sprint.
type printError struct{ err error }

func try[T any](v T, err error) T {
	if err != nil {
		panic(printError{err})
	}

	return v
}

func (p *printer) write(parts ...string) {
	for _, part := range parts {
		p.buf.WriteString(part)
	}
}

func (p *printer) newline() {
	p.buf.WriteByte('\n')
	p.buf.WriteString(strings.Repeat(indentUnit, p.indent))
}

func list[T ast.Node](p *printer, items []T, sep string) {
	for idx, item := range items {
		if idx > 0 {
			p.write(sep)
		}

		p.node(item)
	}
}

func (p *printer) typeArgs(args []ast.TypeNode) {
	if len(args) == 0 {
		return
	}

	p.write("<")
	list(p, args, ", ")
	p.write(">")
}

func (p *printer) optType(typ ast.TypeNode) {
	if typ != nil {
		p.write(": ")
		p.node(typ)
	}
}

// modifiers writes the keywords of n followed by a space, leaving out skip.
func (p *printer) modifiers(n ast.Node, skip native.Modifiers) {
	mods := try(n.Modifiers()).Without(skip)
	for _, word := range mods.Keywords() {
		p.write(word, " ")
	}
}

func (p *printer) annotations(items []*ast.AnnotationUsage) {
	for _, item := range items {
		p.node(item)
		p.newline()
	}
}

func (p *printer) comment(n ast.Node) {
	if text := try(n.Comment()); text != "" {
		p.write(text)
		p.newline()
	}
}

func (p *printer) statements(stmts []ast.Statement) {
	for idx, stmt := range stmts {
		if idx > 0 {
			p.newline()
		}

		p.comment(stmt)
		p.node(stmt)
	}
}

func (p *printer) block(stmts []ast.Statement) {
	if len(stmts) == 0 {
		p.write("{}")

		return
	}

	p.write("{")
	p.indent++
	p.newline()
	p.statements(stmts)
	p.indent--
	p.newline()
	p.write("}")
}

//nolint:gocyclo,cyclop,funlen // one case per node kind.
func (p *printer) node(n ast.Node) {
	if n == nil {
		return
	}

	switch n := n.(type) {
	case *ast.Unsupported:
		p.modifiers(n, native.ModOptional)
		p.write(try(n.Text()))
	case *ast.Program:
		p.statements(try(n.Statements()))
		p.write("\n")
	case *ast.ExpressionStatement:
		p.node(try(n.Expression()))
		p.write(";")
	case *ast.BlockStatement:
		p.block(try(n.Statements()))
	case *ast.ReturnStatement:
		p.write("return")

		if arg := try(n.Argument()); arg != nil {
			p.write(" ")
			p.node(arg)
		}

		p.write(";")
	case *ast.IfStatement:
		p.write("if (")
		p.node(try(n.Test()))
		p.write(") ")
		p.node(try(n.Consequent()))

		if alt := try(n.Alternate()); alt != nil {
			p.write(" else ")
			p.node(alt)
		}
	case *ast.WhileStatement:
		p.write("while (")
		p.node(try(n.Test()))
		p.write(") ")
		p.node(try(n.Body()))
	case *ast.ForOfStatement:
		p.write("for ")

		if try(n.Await()) {
			p.write("await ")
		}

		p.write("(")
		p.forHead(try(n.Left()))
		p.write(" of ")
		p.node(try(n.Right()))
		p.write(") ")
		p.node(try(n.Body()))
	case *ast.ForUpdateStatement:
		p.write("for (")
		p.forHead(try(n.Init()))
		p.write("; ")
		p.node(try(n.Test()))
		p.write("; ")
		p.node(try(n.Update()))
		p.write(") ")
		p.node(try(n.Body()))
	case *ast.BreakStatement:
		p.jump("break", try(n.Label()))
	case *ast.ContinueStatement:
		p.jump("continue", try(n.Label()))
	case *ast.ThrowStatement:
		p.write("throw ")
		p.node(try(n.Argument()))
		p.write(";")
	case *ast.TryStatement:
		p.tryStatement(n)
	case *ast.SwitchStatement:
		p.switchStatement(n)
	case *ast.EmptyStatement:
		p.write(";")
	case *ast.VariableDeclaration:
		p.variables(n)
		p.write(";")
	case *ast.VariableDeclarator:
		p.node(try(n.ID()))
		p.optType(try(n.TypeAnnotation()))

		if init := try(n.Init()); init != nil {
			p.write(" = ")
			p.node(init)
		}
	case *ast.FunctionDeclaration:
		p.annotations(try(n.Annotations()))
		p.modifiers(n, native.ModAsync|native.ModOptional)
		p.function(try(n.Function()), "function")
	case *ast.ClassDeclaration:
		p.annotations(try(n.Annotations()))
		p.modifiers(n, native.ModOptional)
		p.write("class")
		p.node(try(n.Definition()))
	case *ast.StructDeclaration:
		p.annotations(try(n.Annotations()))
		p.modifiers(n, native.ModOptional)
		p.write("struct")
		p.node(try(n.Definition()))
	case *ast.ClassDefinition:
		p.classDefinition(n)
	case *ast.ClassProperty:
		p.annotations(try(n.Annotations()))
		p.modifiers(n, native.ModOptional)
		p.node(try(n.Key()))
		p.optional(n)
		p.optType(try(n.TypeAnnotation()))

		if value := try(n.Value()); value != nil {
			p.write(" = ")
			p.node(value)
		}

		p.write(";")
	case *ast.MethodDefinition:
		p.method(n)
	case *ast.AnnotationUsage:
		p.write("@")
		p.node(try(n.Expression()))
	case *ast.ImportDeclaration:
		p.importDeclaration(n)
	case *ast.TSInterfaceDeclaration:
		p.interfaceDeclaration(n)
	case *ast.TSPropertySignature:
		p.modifiers(n, native.ModOptional)
		p.node(try(n.Key()))
		p.optional(n)
		p.optType(try(n.TypeAnnotation()))
		p.write(";")
	case *ast.TSTypeAliasDeclaration:
		p.modifiers(n, native.ModOptional)
		p.write("type ")
		p.identifier(try(n.ID()))
		p.write(" = ")
		p.node(try(n.TypeAnnotation()))
		p.write(";")
	default:
		p.expression(n)
	}
}

func (p *printer) identifier(id *ast.Identifier) {
	if id != nil {
		p.node(id)
	}
}

func (p *printer) optional(n ast.Node) {
	if n.HasModifier(native.ModOptional) {
		p.write("?")
	}
}

func (p *printer) jump(keyword string, label *ast.Identifier) {
	p.write(keyword)

	if label != nil {
		p.write(" ")
		p.node(label)
	}

	p.write(";")
}

// forHead prints a loop initializer without its terminating semicolon.
func (p *printer) forHead(n ast.Node) {
	if decl, ok := n.(*ast.VariableDeclaration); ok {
		p.variables(decl)

		return
	}

	p.node(n)
}

func (p *printer) variables(n *ast.VariableDeclaration) {
	p.modifiers(n, native.ModConst|native.ModOptional)
	p.write(try(n.DeclKind()), " ")
	list(p, try(n.Declarators()), ", ")
}

func (p *printer) tryStatement(n *ast.TryStatement) {
	p.write("try ")
	p.node(try(n.Block()))

	if handler := try(n.Handler()); handler != nil {
		p.write(" catch ")

		if param := try(handler.Param()); param != nil {
			p.write("(")
			p.node(param)
			p.write(") ")
		}

		p.node(try(handler.Body()))
	}

	if finalizer := try(n.Finalizer()); finalizer != nil {
		p.write(" finally ")
		p.node(finalizer)
	}
}

func (p *printer) switchStatement(n *ast.SwitchStatement) {
	p.write("switch (")
	p.node(try(n.Discriminant()))
	p.write(") {")

	for _, clause := range try(n.Cases()) {
		p.newline()

		if test := try(clause.Test()); test != nil {
			p.write("case ")
			p.node(test)
			p.write(":")
		} else {
			p.write("default:")
		}

		p.indent++

		for _, stmt := range try(clause.Consequent()) {
			p.newline()
			p.node(stmt)
		}

		p.indent--
	}

	p.newline()
	p.write("}")
}

func (p *printer) function(fn *ast.ScriptFunction, keyword string) {
	if fn == nil {
		return
	}

	if fn.HasModifier(native.ModAsync) {
		p.write("async ")
	}

	p.write(keyword)

	if id := try(fn.ID()); id != nil {
		p.write(" ")
		p.node(id)
	}

	p.signature(fn)

	if body := try(fn.Body()); body != nil {
		p.write(" ")
		p.node(body)
	} else {
		p.write(";")
	}
}

func (p *printer) signature(fn *ast.ScriptFunction) {
	p.write("(")
	list(p, try(fn.Params()), ", ")
	p.write(")")
	p.optType(try(fn.ReturnType()))
}

func (p *printer) classDefinition(n *ast.ClassDefinition) {
	if id := try(n.ID()); id != nil {
		p.write(" ")
		p.node(id)
	}

	if super := try(n.SuperClass()); super != nil {
		p.write(" extends ")
		p.node(super)
	}

	if implements := try(n.Implements()); len(implements) > 0 {
		p.write(" implements ")
		list(p, implements, ", ")
	}

	p.write(" ")
	p.members(try(n.Body()))
}

func (p *printer) members(members []ast.Node) {
	if len(members) == 0 {
		p.write("{}")

		return
	}

	p.write("{")
	p.indent++

	for _, member := range members {
		p.newline()
		p.comment(member)
		p.node(member)
	}

	p.indent--
	p.newline()
	p.write("}")
}

func (p *printer) method(n *ast.MethodDefinition) {
	p.annotations(try(n.Annotations()))
	p.modifiers(n, native.ModOptional)

	switch kind := try(n.MethodKind()); kind {
	case "get", "set":
		p.write(kind, " ")
	}

	p.node(try(n.Key()))
	p.optional(n)

	fn := try(n.Function())
	if fn == nil {
		return
	}

	p.signature(fn)

	if body := try(fn.Body()); body != nil {
		p.write(" ")
		p.node(body)
	} else {
		p.write(";")
	}
}

func (p *printer) importDeclaration(n *ast.ImportDeclaration) {
	p.write("import ")

	var named []*ast.ImportSpecifier

	wrote := false

	for _, spec := range try(n.Specifiers()) {
		imported := try(try(spec.Imported()).Name())

		switch imported {
		case "default", "*":
			if wrote {
				p.write(", ")
			}

			if imported == "*" {
				p.write("* as ")
			}

			p.identifier(try(spec.Local()))

			wrote = true
		default:
			named = append(named, spec)
		}
	}

	if len(named) > 0 {
		if wrote {
			p.write(", ")
		}

		p.write("{ ")

		for idx, spec := range named {
			if idx > 0 {
				p.write(", ")
			}

			p.identifier(try(spec.Imported()))

			if local := try(spec.Local()); local != nil {
				p.write(" as ")
				p.node(local)
			}
		}

		p.write(" }")

		wrote = true
	}

	if wrote {
		p.write(" from ")
	}

	p.node(try(n.Source()))
	p.write(";")
}

func (p *printer) interfaceDeclaration(n *ast.TSInterfaceDeclaration) {
	p.modifiers(n, native.ModOptional)
	p.write("interface ")
	p.identifier(try(n.ID()))

	if extends := try(n.Extends()); len(extends) > 0 {
		p.write(" extends ")
		list(p, extends, ", ")
	}

	p.write(" ")
	p.members(try(n.Body()))
}
