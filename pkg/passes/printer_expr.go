package passes

import (
	"strings"

	"github.com/Sumatoshi-tech/arkast/pkg/ast"
	"github.com/Sumatoshi-tech/arkast/pkg/native"
)

// Binding power of binary operators, loosest first.
var precedence = map[string]int{
	"??": 1,
	"||": 2,
	"&&": 3,
	"|":  4,
	"^":  5,
	"&":  6,
	"==": 7, "!=": 7, "===": 7, "!==": 7,
	"<": 8, ">": 8, "<=": 8, ">=": 8, "instanceof": 8, "in": 8,
	"<<": 9, ">>": 9, ">>>": 9,
	"+": 10, "-": 10,
	"*": 11, "/": 11, "%": 11,
	"**": 12,
}

const (
	precAssign  = -1
	precPrimary = 100
)

func (p *printer) precedenceOf(n ast.Node) int {
	switch n := n.(type) {
	case *ast.BinaryExpression:
		return precedence[try(n.Operator())]
	case *ast.ConditionalExpression:
		return 0
	case *ast.AssignmentExpression, *ast.ArrowFunctionExpression:
		return precAssign
	default:
		return precPrimary
	}
}

// operand prints n, parenthesized when it binds looser than floor.
func (p *printer) operand(n ast.Node, floor int) {
	if n != nil && p.precedenceOf(n) < floor {
		p.write("(")
		p.node(n)
		p.write(")")

		return
	}

	p.node(n)
}

func quote(value string) string {
	if strings.Contains(value, `"`) && !strings.Contains(value, "'") {
		return "'" + value + "'"
	}

	return `"` + value + `"`
}

//nolint:gocyclo,cyclop,funlen // one case per node kind.
func (p *printer) expression(n ast.Node) {
	switch n := n.(type) {
	case *ast.Identifier:
		p.write(try(n.Name()))
		p.optType(try(n.TypeAnnotation()))
	case *ast.NumberLiteral:
		p.write(try(n.Value()))
	case *ast.StringLiteral:
		p.write(quote(try(n.Value())))
	case *ast.BooleanLiteral:
		if try(n.Value()) {
			p.write("true")
		} else {
			p.write("false")
		}
	case *ast.NullLiteral:
		p.write("null")
	case *ast.UndefinedLiteral:
		p.write("undefined")
	case *ast.TemplateLiteral:
		p.template(n)
	case *ast.ThisExpression:
		p.write("this")
	case *ast.SuperExpression:
		p.write("super")
	case *ast.BinaryExpression:
		op := try(n.Operator())
		prec := precedence[op]

		p.operand(try(n.Left()), prec)
		p.write(" ", op, " ")
		p.operand(try(n.Right()), prec+1)
	case *ast.UnaryExpression:
		op := try(n.Operator())

		p.write(op)

		if op == "typeof" || op == "void" || op == "delete" {
			p.write(" ")
		}

		p.operand(try(n.Argument()), precPrimary)
	case *ast.UpdateExpression:
		op := try(n.Operator())

		if try(n.Prefix()) {
			p.write(op)
			p.node(try(n.Argument()))
		} else {
			p.node(try(n.Argument()))
			p.write(op)
		}
	case *ast.AssignmentExpression:
		p.node(try(n.Left()))
		p.write(" ", try(n.Operator()), " ")
		p.node(try(n.Right()))
	case *ast.ConditionalExpression:
		p.operand(try(n.Test()), 1)
		p.write(" ? ")
		p.node(try(n.Consequent()))
		p.write(" : ")
		p.node(try(n.Alternate()))
	case *ast.CallExpression:
		p.operand(try(n.Callee()), precPrimary)
		p.typeArgs(try(n.TypeArguments()))

		if try(n.Optional()) {
			p.write("?.")
		}

		p.write("(")
		list(p, try(n.Arguments()), ", ")
		p.write(")")
	case *ast.NewExpression:
		p.write("new ")
		p.operand(try(n.Callee()), precPrimary)
		p.typeArgs(try(n.TypeArguments()))
		p.write("(")
		list(p, try(n.Arguments()), ", ")
		p.write(")")
	case *ast.MemberExpression:
		p.member(n)
	case *ast.ArrowFunctionExpression:
		p.arrow(try(n.Function()))
	case *ast.FunctionExpression:
		p.function(try(n.Function()), "function")
	case *ast.ArrayExpression:
		p.write("[")
		list(p, try(n.Elements()), ", ")
		p.write("]")
	case *ast.ObjectExpression:
		p.object(try(n.Properties()))
	case *ast.Property:
		p.property(n)
	case *ast.SpreadElement:
		p.write("...")
		p.node(try(n.Argument()))
	case *ast.AwaitExpression:
		p.write("await ")
		p.operand(try(n.Argument()), precPrimary)
	case *ast.TSAsExpression:
		p.operand(try(n.Expression()), precPrimary)
		p.write(" as ")
		p.node(try(n.TypeAnnotation()))
	case *ast.TSNonNullExpression:
		p.operand(try(n.Expression()), precPrimary)
		p.write("!")
	case *ast.Parameter:
		p.parameter(n)
	case *ast.TemplateElement:
		p.write(try(n.Raw()))
	case *ast.TypeReference:
		p.node(try(n.TypeName()))
		p.typeArgs(try(n.TypeArguments()))
	case *ast.PrimitiveType:
		p.write(try(n.Name()))
	case *ast.UnionType:
		list(p, try(n.Types()), " | ")
	case *ast.ArrayType:
		elem := try(n.ElementType())

		switch elem.(type) {
		case *ast.UnionType, *ast.FunctionType:
			p.write("(")
			p.node(elem)
			p.write(")")
		default:
			p.node(elem)
		}

		p.write("[]")
	case *ast.FunctionType:
		p.write("(")
		list(p, try(n.Params()), ", ")
		p.write(") => ")
		p.node(try(n.ReturnType()))
	case *ast.ScriptFunction:
		p.function(n, "function")
	}
}

func (p *printer) template(n *ast.TemplateLiteral) {
	quasis := try(n.Quasis())
	exprs := try(n.Expressions())

	p.write("`")

	for idx, quasi := range quasis {
		p.node(quasi)

		if idx < len(exprs) {
			p.write("${")
			p.node(exprs[idx])
			p.write("}")
		}
	}

	p.write("`")
}

func (p *printer) member(n *ast.MemberExpression) {
	p.operand(try(n.Object()), precPrimary)

	optional := try(n.Optional())

	if try(n.Computed()) {
		if optional {
			p.write("?.")
		}

		p.write("[")
		p.node(try(n.Property()))
		p.write("]")

		return
	}

	if optional {
		p.write("?.")
	} else {
		p.write(".")
	}

	p.node(try(n.Property()))
}

func (p *printer) arrow(fn *ast.ScriptFunction) {
	if fn == nil {
		return
	}

	if fn.HasModifier(native.ModAsync) {
		p.write("async ")
	}

	p.signature(fn)
	p.write(" => ")

	body := try(fn.Body())
	if _, ok := body.(*ast.ObjectExpression); ok {
		p.write("(")
		p.node(body)
		p.write(")")

		return
	}

	p.node(body)
}

func (p *printer) object(props []ast.Node) {
	if len(props) == 0 {
		p.write("{}")

		return
	}

	p.write("{ ")
	list(p, props, ", ")
	p.write(" }")
}

func (p *printer) property(n *ast.Property) {
	value := try(n.Value())

	if try(n.Shorthand()) {
		p.node(value)

		return
	}

	if try(n.Computed()) {
		p.write("[")
		p.node(try(n.Key()))
		p.write("]")
	} else {
		p.node(try(n.Key()))
	}

	p.write(": ")
	p.node(value)
}

func (p *printer) parameter(n *ast.Parameter) {
	p.modifiers(n, native.ModOptional)

	if try(n.Rest()) {
		p.write("...")
	}

	p.node(try(n.Name()))
	p.optional(n)
	p.optType(try(n.TypeAnnotation()))

	if init := try(n.Initializer()); init != nil {
		p.write(" = ")
		p.node(init)
	}
}
