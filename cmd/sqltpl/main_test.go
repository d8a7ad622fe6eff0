package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Konsultn-Engineering/sqltpl/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "Integer",
			args:     []string{"render", "SELECT * FROM t WHERE id = ?d", "--args", "[42]"},
			expected: "SELECT * FROM t WHERE id = 42\n",
		},
		{
			name:     "ObjectKeepsKeyOrder",
			args:     []string{"render", "UPDATE t SET ?a", "--args", `[{"b": "x", "a": 1}]`},
			expected: "UPDATE t SET `b` = 'x', `a` = 1\n",
		},
		{
			name:     "SkipToken",
			args:     []string{"render", "SELECT * FROM t{ WHERE id = ?d}", "--args", `["__SKIP__"]`},
			expected: "SELECT * FROM t\n",
		},
		{
			name:     "CustomSkipToken",
			args:     []string{"render", "SELECT 1{ AND ?# = 1}", "--args", `["-"]`, "--skip-token", "-"},
			expected: "SELECT 1\n",
		},
		{
			name:     "IdentifierList",
			args:     []string{"render", "SELECT ?# FROM t", "--args", `[["a", "b"]]`},
			expected: "SELECT `a`, `b` FROM t\n",
		},
		{
			name:     "FloatAndNull",
			args:     []string{"render", "?f, ?", "--args", `[1.25, null]`},
			expected: "1.25, NULL\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRenderFromFileWithConfig(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "q.sql")
	cfg := filepath.Join(dir, "sqltpl.toml")
	require.NoError(t, os.WriteFile(tpl, []byte("SELECT ?d"), 0o600))
	require.NoError(t, os.WriteFile(cfg, []byte("cache_size = 8\nlog_level = \"error\"\n"), 0o600))

	out, err := run(t, "--config", cfg, "render", "--file", tpl, "--args", "[7]")
	require.NoError(t, err)
	assert.Equal(t, "SELECT 7\n", out)
}

func TestRenderErrors(t *testing.T) {
	_, err := run(t, "render", "?d ?d", "--args", "[1]")
	assert.ErrorIs(t, err, query.ErrArgumentCountMismatch)

	_, err = run(t, "render", "?d", "--args", "{}")
	assert.ErrorContains(t, err, "JSON array")

	_, err = run(t, "render")
	assert.ErrorContains(t, err, "missing template")

	_, err = run(t, "--color", "rainbow", "render", "x")
	assert.ErrorContains(t, err, "invalid --color")
}

func TestTokens(t *testing.T) {
	out, err := run(t, "tokens", "SELECT ?# FROM t WHERE ?x{ AND a = ?d}")
	require.NoError(t, err)

	assert.Contains(t, out, "OFFSET")
	assert.Contains(t, out, "identifier")
	assert.Contains(t, out, "unknown")
	assert.Contains(t, out, "block")
	assert.Contains(t, out, `"{ AND a = ?d}"`)
}

func TestParseArgs(t *testing.T) {
	args, err := parseArgs(`[1, 2.5, "s", true, null, "__SKIP__", [1, "a"], {"k": 1}]`, "__SKIP__")
	require.NoError(t, err)
	require.Len(t, args, 8)

	assert.Equal(t, int64(1), args[0])
	assert.Equal(t, 2.5, args[1])
	assert.Equal(t, "s", args[2])
	assert.Equal(t, true, args[3])
	assert.Nil(t, args[4])
	assert.Equal(t, query.Skip(), args[5])
	assert.Equal(t, []any{int64(1), "a"}, args[6])

	a, ok := args[7].(*query.Assoc)
	require.True(t, ok)
	assert.Equal(t, query.List{query.Int(1)}, a.Values())

	args, err = parseArgs("  ", "")
	require.NoError(t, err)
	assert.Empty(t, args)
}
