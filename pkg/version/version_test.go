package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/arkast/pkg/version"
)

func TestString(t *testing.T) {
	t.Parallel()

	line := version.String()

	assert.Contains(t, line, "arkast "+version.Version)
	assert.Contains(t, line, "commit "+version.Commit)
	assert.Contains(t, line, "schema v")
}
