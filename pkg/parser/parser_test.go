package parser_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/arkast/pkg/ast"
	"github.com/Sumatoshi-tech/arkast/pkg/kind"
	"github.com/Sumatoshi-tech/arkast/pkg/native"
	"github.com/Sumatoshi-tech/arkast/pkg/native/arena"
	"github.com/Sumatoshi-tech/arkast/pkg/parser"
)

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		want     parser.Language
		wantErr  bool
	}{
		{name: "arkts", filename: "pages/Index.ets", want: parser.LangTypeScript},
		{name: "typescript", filename: "src/main.ts", want: parser.LangTypeScript},
		{name: "module typescript", filename: "lib/util.MTS", want: parser.LangTypeScript},
		{name: "tsx", filename: "App.tsx", want: parser.LangTSX},
		{name: "python", filename: "main.py", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parser.DetectLanguage(tt.filename, []byte("print('hi')\n"))
			if tt.wantErr {
				require.ErrorIs(t, err, parser.ErrUnsupportedLanguage)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"ts", "TypeScript", "ets", "ArkTS"} {
		lang, err := parser.ParseLanguage(name)
		require.NoError(t, err, name)
		assert.Equal(t, parser.LangTypeScript, lang, name)
	}

	lang, err := parser.ParseLanguage("tsx")
	require.NoError(t, err)
	assert.Equal(t, parser.LangTSX, lang)

	_, err = parser.ParseLanguage("cobol")
	require.ErrorIs(t, err, parser.ErrUnsupportedLanguage)
}

func open(t *testing.T, src string, opts ...parser.Option) (*ast.Session, *parser.Result) {
	t.Helper()

	opts = append([]parser.Option{parser.WithLogger(slog.New(slog.DiscardHandler))}, opts...)

	sess, res, err := parser.Open(context.Background(), "main.ets", []byte(src), opts...)
	require.NoError(t, err)

	t.Cleanup(sess.Dispose)

	return sess, res
}

func topLevel(t *testing.T, sess *ast.Session) []ast.Statement {
	t.Helper()

	root, err := sess.Root()
	require.NoError(t, err)

	prog, err := ast.As[*ast.Program](root)
	require.NoError(t, err)

	stmts, err := prog.Statements()
	require.NoError(t, err)

	return stmts
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}

func TestParse_VariableWithBinary(t *testing.T) {
	t.Parallel()

	sess, res := open(t, "let x = a + b;\n")

	assert.Equal(t, parser.LangTypeScript, res.Language)
	assert.Empty(t, res.Errors)
	assert.Zero(t, res.Opaque)

	stmts := topLevel(t, sess)
	require.Len(t, stmts, 1)

	decl := must(ast.As[*ast.VariableDeclaration](stmts[0]))
	assert.Equal(t, "let", must(decl.DeclKind()))

	declarators := must(decl.Declarators())
	require.Len(t, declarators, 1)

	id := must(ast.As[*ast.Identifier](must(declarators[0].ID())))
	assert.Equal(t, "x", must(id.Name()))

	bin := must(ast.As[*ast.BinaryExpression](must(declarators[0].Init())))
	assert.Equal(t, "+", must(bin.Operator()))

	span := must(bin.Span())
	assert.Equal(t, native.Position{Line: 0, Column: 8, Offset: 8}, span.Start)
	assert.Equal(t, native.Position{Line: 0, Column: 13, Offset: 13}, span.End)
}

func TestParse_ExportedFunctionWithDoc(t *testing.T) {
	t.Parallel()

	sess, _ := open(t, "/** Doubles n. */\nexport function double(n: number): number {\n  return n * 2;\n}\n")

	stmts := topLevel(t, sess)
	require.Len(t, stmts, 1)

	decl := must(ast.As[*ast.FunctionDeclaration](stmts[0]))
	assert.True(t, decl.HasModifier(native.ModExport))
	assert.Equal(t, "/** Doubles n. */", must(decl.Comment()))

	fn := must(decl.Function())
	assert.Equal(t, "double", must(must(fn.ID()).Name()))

	params := must(fn.Params())
	require.Len(t, params, 1)

	typ := must(ast.As[*ast.PrimitiveType](must(params[0].TypeAnnotation())))
	assert.Equal(t, "number", must(typ.Name()))

	body := must(ast.As[*ast.BlockStatement](must(fn.Body())))
	inner := must(body.Statements())
	require.Len(t, inner, 1)
	assert.Equal(t, kind.ReturnStatement, inner[0].Kind())
}

func TestParse_DecoratedStruct(t *testing.T) {
	t.Parallel()

	sess, _ := open(t, "@Component\nclass Counter {\n  @State count: number = 0;\n  build() {}\n}\n")

	stmts := topLevel(t, sess)
	require.Len(t, stmts, 1)

	decl := must(ast.As[*ast.ClassDeclaration](stmts[0]))

	annotations := must(decl.Annotations())
	require.Len(t, annotations, 1)

	name := must(ast.As[*ast.Identifier](must(annotations[0].Expression())))
	assert.Equal(t, "Component", must(name.Name()))

	members := must(must(decl.Definition()).Body())
	require.Len(t, members, 2)

	prop := must(ast.As[*ast.ClassProperty](members[0]))
	assert.Len(t, must(prop.Annotations()), 1)

	method := must(ast.As[*ast.MethodDefinition](members[1]))
	assert.Equal(t, "method", must(method.MethodKind()))
}

func TestParse_Patterns(t *testing.T) {
	t.Parallel()

	sess, _ := open(t, "const [first, ...rest] = items;\nfor (const item of rest) { total += item; }\n")

	stmts := topLevel(t, sess)
	require.Len(t, stmts, 2)

	decl := must(ast.As[*ast.VariableDeclaration](stmts[0]))
	assert.Equal(t, "const", must(decl.DeclKind()))

	declarators := must(decl.Declarators())
	require.Len(t, declarators, 1)

	id := must(declarators[0].ID())
	assert.Equal(t, kind.ArrayPattern, id.Kind())

	pattern := must(ast.As[*ast.ArrayExpression](id))
	elements := must(pattern.Elements())
	require.Len(t, elements, 2)
	assert.Equal(t, kind.RestElement, elements[1].Kind())

	loop := must(ast.As[*ast.ForOfStatement](stmts[1]))
	assert.Equal(t, kind.VariableDeclaration, must(loop.Left()).Kind())
	assert.False(t, must(loop.Await()))
}

func TestParse_Template(t *testing.T) {
	t.Parallel()

	sess, _ := open(t, "greet(`hi ${name}!`);\n")

	stmts := topLevel(t, sess)
	require.Len(t, stmts, 1)

	call := must(ast.As[*ast.CallExpression](must(must(ast.As[*ast.ExpressionStatement](stmts[0])).Expression())))

	args := must(call.Arguments())
	require.Len(t, args, 1)

	tmpl := must(ast.As[*ast.TemplateLiteral](args[0]))

	quasis := must(tmpl.Quasis())
	require.Len(t, quasis, 2)
	assert.Equal(t, "hi ", must(quasis[0].Raw()))
	assert.Equal(t, "!", must(quasis[1].Raw()))

	exprs := must(tmpl.Expressions())
	require.Len(t, exprs, 1)
	assert.Equal(t, kind.Identifier, exprs[0].Kind())
}

func TestParse_EnumIsUnsupported(t *testing.T) {
	t.Parallel()

	sess, res := open(t, "enum Color { Red, Green }\n")

	assert.Equal(t, 1, res.Opaque)

	stmts := topLevel(t, sess)
	require.Len(t, stmts, 1)
	assert.True(t, ast.IsUnsupported(stmts[0]))
	assert.Equal(t, kind.TSEnumDeclaration, stmts[0].Kind())
}

func TestParse_SyntaxErrors(t *testing.T) {
	t.Parallel()

	const src = "const a = 1;\n)))\n"

	_, res := open(t, src)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0].Text, ")")

	p, err := parser.New(parser.LangTypeScript, parser.WithStrict(true))
	require.NoError(t, err)

	svc := arena.New()
	defer svc.Dispose()

	_, err = p.Parse(context.Background(), svc, []byte(src))
	require.ErrorIs(t, err, parser.ErrSyntax)
	assert.Equal(t, native.Null, svc.Root())
}

func TestParse_MaxSize(t *testing.T) {
	t.Parallel()

	_, _, err := parser.Open(context.Background(), "big.ts", []byte("let x = 1;"), parser.WithMaxSize(4))
	require.ErrorIs(t, err, parser.ErrTooLarge)
}

func TestParse_CheckedPipeline(t *testing.T) {
	t.Parallel()

	sess, _ := open(t, "let total = 1 + 2;\n")

	var seen string

	probe := ast.PassFunc("probe", ast.PhaseChecked, func(v *ast.Visitor, n ast.Node) (ast.Node, error) {
		err := ast.Inspect(n, func(node ast.Node) (bool, error) {
			if node.Kind() != kind.BinaryExpression {
				return true, nil
			}

			typ, err := v.Session().TypeOf(node)
			seen = typ

			return false, err
		})

		return n, err
	})

	_, err := ast.NewPipeline([]ast.Pass{probe}).Run(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, "number", seen)
	assert.Equal(t, native.StateChecked, sess.State())
}
