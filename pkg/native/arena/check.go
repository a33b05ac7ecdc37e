package arena

import (
	"strings"

	"github.com/Sumatoshi-tech/arkast/pkg/kind"
	"github.com/Sumatoshi-tech/arkast/pkg/native"
)

// Type names produced by the checker.
const (
	typeNumber    = "number"
	typeString    = "string"
	typeBoolean   = "boolean"
	typeNull      = "null"
	typeUndefined = "undefined"
	typeUnknown   = "unknown"
	typeFunction  = "function"
	typeObject    = "object"
)

func fieldOf(rec *record, name string) native.Value {
	_, idx, ok := rec.kind.Spec().Field(name)
	if !ok {
		return native.Value{}
	}

	return rec.fields[idx]
}

// check infers types for every node below root in source order, binding
// declarations as they are reached.
func (a *Arena) check(root native.Addr) {
	a.infer(root)
}

func (a *Arena) infer(addr native.Addr) string {
	rec, err := a.get(addr)
	if err != nil {
		return typeUnknown
	}

	typ := a.inferKind(addr, rec)

	rec.checked = true
	if kind.CategoryExpression.Contains(rec.kind) {
		rec.typ = typ
	} else {
		rec.typ = ""
	}

	return typ
}

func (a *Arena) inferChildren(rec *record) {
	var children []native.Addr

	forEachChild(rec, func(child native.Addr) { children = append(children, child) })

	for _, child := range children {
		a.infer(child)
	}
}

func (a *Arena) inferField(rec *record, name string) string {
	value := fieldOf(rec, name)
	if value.Tag() != native.ValueNode || value.Node() == native.Null {
		return ""
	}

	return a.infer(value.Node())
}

//nolint:gocyclo,cyclop,funlen // one case per kind with a typing rule.
func (a *Arena) inferKind(addr native.Addr, rec *record) string {
	switch kind.Canonical(rec.kind) {
	case kind.NumberLiteral, kind.UpdateExpression:
		a.inferChildren(rec)

		return typeNumber
	case kind.StringLiteral, kind.TemplateLiteral:
		a.inferChildren(rec)

		return typeString
	case kind.BooleanLiteral:
		return typeBoolean
	case kind.NullLiteral:
		return typeNull
	case kind.UndefinedLiteral:
		return typeUndefined
	case kind.ObjectExpression:
		a.inferChildren(rec)

		return typeObject
	case kind.Identifier:
		a.inferChildren(rec)

		bound, ok := a.bindings[fieldOf(rec, "name").Str()]
		rec.decl = bound.decl

		if annotated := a.typeText(fieldOf(rec, "typeAnnotation").Node()); annotated != "" {
			return annotated
		}

		if ok {
			return bound.typ
		}

		return typeUnknown
	case kind.MemberExpression:
		a.inferField(rec, "object")

		if fieldOf(rec, "computed").Bool() {
			a.inferField(rec, "property")
		} else {
			a.member(fieldOf(rec, "property").Node())
		}

		return typeUnknown
	case kind.BinaryExpression:
		left := a.inferField(rec, "left")
		right := a.inferField(rec, "right")

		return binaryType(fieldOf(rec, "operator").Str(), left, right)
	case kind.UnaryExpression:
		a.inferChildren(rec)

		return unaryType(fieldOf(rec, "operator").Str())
	case kind.AssignmentExpression:
		a.inferField(rec, "left")

		return a.inferField(rec, "right")
	case kind.ConditionalExpression:
		a.inferField(rec, "test")
		consequent := a.inferField(rec, "consequent")
		alternate := a.inferField(rec, "alternate")

		if consequent == alternate {
			return consequent
		}

		return consequent + " | " + alternate
	case kind.ArrayExpression:
		return a.arrayType(rec)
	case kind.TSAsExpression:
		a.inferChildren(rec)

		return a.typeText(fieldOf(rec, "typeAnnotation").Node())
	case kind.TSNonNullExpression:
		return a.inferField(rec, "expression")
	case kind.ArrowFunctionExpression, kind.FunctionExpression:
		a.inferChildren(rec)

		return typeFunction
	case kind.NewExpression:
		a.inferChildren(rec)

		if name := a.identName(fieldOf(rec, "callee").Node()); name != "" {
			return name
		}

		return typeObject
	case kind.ThisExpression:
		return "this"
	case kind.Parameter:
		a.inferField(rec, "initializer")
		typ := a.typeText(fieldOf(rec, "typeAnnotation").Node())
		if typ == "" {
			typ = typeUnknown
		}

		a.bind(fieldOf(rec, "name").Node(), typ, addr)
		a.inferField(rec, "name")

		return typ
	case kind.VariableDeclarator:
		typ := a.typeText(fieldOf(rec, "typeAnnotation").Node())
		initType := a.inferField(rec, "init")

		if typ == "" {
			typ = initType
		}

		if typ == "" {
			typ = typeUnknown
		}

		a.bind(fieldOf(rec, "id").Node(), typ, addr)
		a.inferField(rec, "id")

		return ""
	case kind.FunctionDeclaration, kind.ClassDeclaration, kind.StructDeclaration:
		a.bindDeclaration(addr, rec)
		a.inferChildren(rec)

		return ""
	default:
		a.inferChildren(rec)

		if kind.CategoryExpression.Contains(rec.kind) {
			return typeUnknown
		}

		return ""
	}
}

func (a *Arena) arrayType(rec *record) string {
	elem := ""

	for _, child := range fieldOf(rec, "elements").Nodes() {
		typ := a.infer(child)

		switch elem {
		case "":
			elem = typ
		case typ:
		default:
			elem = typeUnknown
		}
	}

	if elem == "" {
		elem = typeUnknown
	}

	return elem + "[]"
}

func binaryType(operator, left, right string) string {
	switch operator {
	case "+":
		if left == typeString || right == typeString {
			return typeString
		}

		if left == typeNumber && right == typeNumber {
			return typeNumber
		}

		return typeUnknown
	case "-", "*", "/", "%", "**", "<<", ">>", ">>>", "&", "|", "^":
		return typeNumber
	case "==", "!=", "===", "!==", "<", ">", "<=", ">=", "instanceof", "in":
		return typeBoolean
	default:
		if left == right {
			return left
		}

		return typeUnknown
	}
}

func unaryType(operator string) string {
	switch operator {
	case "!", "delete":
		return typeBoolean
	case "typeof":
		return typeString
	case "void":
		return typeUndefined
	default:
		return typeNumber
	}
}

// binding is what a name in scope resolves to: its type and the node that
// declares it.
type binding struct {
	typ  string
	decl native.Addr
}

func (a *Arena) bind(target native.Addr, typ string, decl native.Addr) {
	if name := a.identName(target); name != "" {
		a.bindings[name] = binding{typ: typ, decl: decl}
	}
}

func (a *Arena) bindDeclaration(addr native.Addr, rec *record) {
	switch rec.kind {
	case kind.FunctionDeclaration:
		fn, err := a.get(fieldOf(rec, "function").Node())
		if err == nil {
			a.bind(fieldOf(fn, "id").Node(), typeFunction, addr)
		}
	case kind.ClassDeclaration, kind.StructDeclaration:
		def, err := a.get(fieldOf(rec, "definition").Node())
		if err == nil {
			id := fieldOf(def, "id").Node()
			if name := a.identName(id); name != "" {
				a.bind(id, "typeof "+name, addr)
			}
		}
	default:
	}
}

// member checks the name after a dot. It names a property, not a binding in
// scope, so it gets no type and no declaration.
func (a *Arena) member(property native.Addr) {
	rec, err := a.get(property)
	if err != nil {
		return
	}

	a.inferChildren(rec)

	rec.checked = true
	rec.typ = typeUnknown
	rec.decl = native.Null
}

func (a *Arena) identName(addr native.Addr) string {
	if addr == native.Null {
		return ""
	}

	rec, err := a.get(addr)
	if err != nil || rec.kind != kind.Identifier {
		return ""
	}

	return fieldOf(rec, "name").Str()
}

// typeText renders a type annotation as text, "" when absent.
func (a *Arena) typeText(addr native.Addr) string {
	if addr == native.Null {
		return ""
	}

	rec, err := a.get(addr)
	if err != nil {
		return ""
	}

	switch rec.kind {
	case kind.PrimitiveType:
		return fieldOf(rec, "name").Str()
	case kind.TypeReference:
		name := a.identName(fieldOf(rec, "typeName").Node())
		args := fieldOf(rec, "typeArguments").Nodes()

		if len(args) == 0 {
			return name
		}

		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, a.typeText(arg))
		}

		return name + "<" + strings.Join(parts, ", ") + ">"
	case kind.ArrayType:
		return a.typeText(fieldOf(rec, "elementType").Node()) + "[]"
	case kind.UnionType:
		members := fieldOf(rec, "types").Nodes()
		parts := make([]string, 0, len(members))

		for _, member := range members {
			parts = append(parts, a.typeText(member))
		}

		return strings.Join(parts, " | ")
	case kind.FunctionType:
		return typeFunction
	default:
		return typeUnknown
	}
}
