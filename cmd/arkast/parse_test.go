package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/arkast/pkg/parser"
)

func TestRunParse_Tree(t *testing.T) {
	t.Parallel()

	env := testEnv(t, "", "")
	path := writeFile(t, "main.ets", "let a = 1 + 2;\n")

	var out, errOut bytes.Buffer

	err := runParse(context.Background(), env, path, parseOptions{format: formatTree, noColor: true}, &out, &errOut)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Program\n")
	assert.Contains(t, out.String(), `BinaryExpression operator="+"`)
	assert.Contains(t, out.String(), `NumberLiteral value="2"`)
	assert.Contains(t, errOut.String(), "0 opaque")
}

func TestRunParse_JSON(t *testing.T) {
	t.Parallel()

	env := testEnv(t, "", "")
	path := writeFile(t, "main.ts", "export function f() {}\n")

	var out bytes.Buffer

	err := runParse(context.Background(), env, path, parseOptions{format: formatJSON}, &out, &bytes.Buffer{})
	require.NoError(t, err)

	var dump map[string]any

	require.NoError(t, json.Unmarshal(out.Bytes(), &dump))
	assert.Equal(t, "Program", dump["kind"])

	stmts, ok := dump["statements"].([]any)
	require.True(t, ok)
	require.Len(t, stmts, 1)

	fn, ok := stmts[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "FunctionDeclaration", fn["kind"])
	assert.Equal(t, []any{"export"}, fn["modifiers"])
}

func TestRunParse_SyntaxErrorsAreReported(t *testing.T) {
	t.Parallel()

	env := testEnv(t, "", "")
	path := writeFile(t, "broken.ts", "const a = 1;\n)))\n")

	var errOut bytes.Buffer

	err := runParse(context.Background(), env, path, parseOptions{format: formatTree, noColor: true}, &bytes.Buffer{}, &errOut)
	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "warning:")
}

func TestRunParse_StrictRejectsSyntaxErrors(t *testing.T) {
	t.Parallel()

	env := testEnv(t, "engine:\n  strict: true\n", "")
	path := writeFile(t, "broken.ts", "const a = 1;\n)))\n")

	err := runParse(context.Background(), env, path, parseOptions{format: formatTree}, &bytes.Buffer{}, &bytes.Buffer{})
	require.ErrorIs(t, err, parser.ErrSyntax)
}

func TestRunParse_Errors(t *testing.T) {
	t.Parallel()

	env := testEnv(t, "", "")
	path := writeFile(t, "main.ts", "let a;\n")

	tests := []struct {
		name   string
		path   string
		opts   parseOptions
		target error
	}{
		{name: "bad format", path: path, opts: parseOptions{format: "xml"}, target: ErrUnsupportedFormat},
		{name: "empty path", path: " ", opts: parseOptions{format: formatTree}, target: ErrEmptyPath},
		{name: "directory", path: os.TempDir(), opts: parseOptions{format: formatTree}, target: ErrDirectoryPath},
		{name: "missing file", path: path + ".missing", opts: parseOptions{format: formatTree}, target: os.ErrNotExist},
		{
			name:   "bad language",
			path:   path,
			opts:   parseOptions{format: formatTree, language: "cobol"},
			target: parser.ErrUnsupportedLanguage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := runParse(context.Background(), env, tt.path, tt.opts, &bytes.Buffer{}, &bytes.Buffer{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}
