package passes

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/Sumatoshi-tech/arkast/pkg/ast"
)

// ConstFold replaces binary expressions over number literals, and string
// concatenations of string literals, with their value. It runs on the checked
// tree and only folds expressions the checker typed as number or string.
func ConstFold() ast.Pass {
	return ast.PassFunc(NameConstFold, ast.PhaseChecked, fold)
}

func fold(v *ast.Visitor, n ast.Node) (ast.Node, error) {
	bin, ok := n.(*ast.BinaryExpression)
	if !ok {
		return v.VisitEachChild(n)
	}

	// The type is read before the children are folded; a rebuilt node has
	// no type until the next recheck.
	typ, err := v.Session().TypeOf(bin)
	if err != nil && !errors.Is(err, ast.ErrUnchecked) {
		return nil, err
	}

	next, err := v.VisitEachChild(bin)
	if err != nil {
		return nil, err
	}

	bin, err = ast.As[*ast.BinaryExpression](next)
	if err != nil {
		return nil, err
	}

	switch typ {
	case "number":
		return foldNumbers(v.Session(), bin)
	case "string":
		return foldStrings(v.Session(), bin)
	default:
		return bin, nil
	}
}

func operands(bin *ast.BinaryExpression) (ast.Expression, string, ast.Expression, error) {
	left, err := bin.Left()
	if err != nil {
		return nil, "", nil, err
	}

	op, err := bin.Operator()
	if err != nil {
		return nil, "", nil, err
	}

	right, err := bin.Right()
	if err != nil {
		return nil, "", nil, err
	}

	return left, op, right, nil
}

func numberValue(n ast.Expression) (float64, bool) {
	lit, ok := n.(*ast.NumberLiteral)
	if !ok {
		return 0, false
	}

	text, err := lit.Value()
	if err != nil {
		return 0, false
	}

	value, err := strconv.ParseFloat(text, 64)

	return value, err == nil
}

func foldNumbers(s *ast.Session, bin *ast.BinaryExpression) (ast.Node, error) {
	left, op, right, err := operands(bin)
	if err != nil {
		return nil, err
	}

	a, okA := numberValue(left)
	b, okB := numberValue(right)

	if !okA || !okB {
		return bin, nil
	}

	var result float64

	switch op {
	case "+":
		result = a + b
	case "-":
		result = a - b
	case "*":
		result = a * b
	case "/":
		result = a / b
	case "%":
		result = math.Mod(a, b)
	case "**":
		result = math.Pow(a, b)
	default:
		return bin, nil
	}

	if math.IsInf(result, 0) || math.IsNaN(result) {
		return bin, nil
	}

	return ast.CreateNumberLiteral(s, formatNumber(result))
}

// formatNumber spells a float the way a script engine prints it for the
// common cases: integers without a fraction, exponents from 1e21 up.
func formatNumber(value float64) string {
	if math.Abs(value) >= 1e21 {
		return strconv.FormatFloat(value, 'g', -1, 64)
	}

	return strconv.FormatFloat(value, 'f', -1, 64)
}

func foldStrings(s *ast.Session, bin *ast.BinaryExpression) (ast.Node, error) {
	left, op, right, err := operands(bin)
	if err != nil {
		return nil, err
	}

	a, okA := left.(*ast.StringLiteral)
	b, okB := right.(*ast.StringLiteral)

	if op != "+" || !okA || !okB {
		return bin, nil
	}

	head, err := a.Value()
	if err != nil {
		return nil, err
	}

	tail, err := b.Value()
	if err != nil {
		return nil, err
	}

	return ast.CreateStringLiteral(s, head+tail)
}
