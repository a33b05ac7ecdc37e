package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteUnifiedDiff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		before string
		after  string
		want   string
	}{
		{
			name:   "identical",
			before: "a;\nb;\n",
			after:  "a;\nb;\n",
			want:   "",
		},
		{
			name:   "replaced line",
			before: "a;\nb;\nc;\n",
			after:  "a;\nx;\nc;\n",
			want:   "--- a/f.ts\n+++ b/f.ts\n@@ -1,3 +1,3 @@\n a;\n-b;\n+x;\n c;\n",
		},
		{
			name:   "removed line",
			before: "a;\nb;\n",
			after:  "a;\n",
			want:   "--- a/f.ts\n+++ b/f.ts\n@@ -1,2 +1,1 @@\n a;\n-b;\n",
		},
		{
			name:   "insert into empty",
			before: "",
			after:  "a;\n",
			want:   "--- a/f.ts\n+++ b/f.ts\n@@ -0,0 +1,1 @@\n+a;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			require.NoError(t, writeUnifiedDiff(&buf, "f.ts", lineDiff(tt.before, tt.after)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestHunks_SplitsDistantChanges(t *testing.T) {
	t.Parallel()

	before := "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n11\n12\n"
	after := "one\n2\n3\n4\n5\n6\n7\n8\n9\n10\n11\ntwelve\n"

	groups := hunks(lineDiff(before, after))

	require.Len(t, groups, 2)
	assert.Equal(t, hunk{start: 0, end: 5}, groups[0])
}
