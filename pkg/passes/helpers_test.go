package passes_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/arkast/pkg/ast"
	"github.com/Sumatoshi-tech/arkast/pkg/parser"
	"github.com/Sumatoshi-tech/arkast/pkg/passes"
)

func parse(t *testing.T, src string) *ast.Session {
	t.Helper()

	sess, _, err := parser.Open(context.Background(), "main.ets", []byte(src),
		parser.WithLogger(slog.New(slog.DiscardHandler)))
	require.NoError(t, err)

	t.Cleanup(sess.Dispose)

	return sess
}

// run applies passes to src and returns the printed result.
func run(t *testing.T, src string, list ...ast.Pass) (*ast.Session, string) {
	t.Helper()

	sess := parse(t, src)

	root, err := ast.NewPipeline(list).Run(context.Background(), sess)
	require.NoError(t, err)

	out, err := passes.Sprint(root)
	require.NoError(t, err)

	return sess, out
}
