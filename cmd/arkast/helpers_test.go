package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quietConfig = "logging:\n  level: error\n"

// testEnv loads a runtime environment from the given config text.
func testEnv(t *testing.T, configText, metricsTextfile string) *runtimeEnv {
	t.Helper()

	path := writeFile(t, "arkast.yaml", quietConfig+configText)

	env, err := setupEnv(path, false, metricsTextfile)
	require.NoError(t, err)

	t.Cleanup(func() { assert.NoError(t, env.close()) })

	return env
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}
