package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/inspect"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	c := New(strings.NewReader(stdin), &stdout, &stderr, LogInfo)
	cmd := c.RootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootStdinText(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, `{"a": 1, "needs-quotes": [true, null]}`, "--to", "text")
	require.NoError(t, err)
	assert.Equal(t, "{\n  a: 1,\n  'needs-quotes': [\n    true,\n    null\n  ]\n}\n", out)
}

func TestRootStdinHTML(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, `"hi"`)
	require.NoError(t, err)
	assert.Equal(t, "<div><span class=\"string\">&apos;hi&apos;</span></div>\n", out)
}

func TestRootHTMLModes(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, `["x"]`, "--quote", "double", "--space", "entity")
	require.NoError(t, err)
	assert.Equal(t, "<div><div>[</div><div>&nbsp;&nbsp;<span class=\"string\">&quot;x&quot;</span></div><div>]</div></div>\n", out)
}

func TestRootFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	yml := filepath.Join(dir, "doc.yaml")
	require.NoError(t, os.WriteFile(yml, []byte("a: 1\n---\nb: 2\n"), 0o600))
	tml := filepath.Join(dir, "doc.toml")
	require.NoError(t, os.WriteFile(tml, []byte("z = 1\ny = 2\n"), 0o600))

	out, _, err := execute(t, "", "--to", "text", yml, tml)
	require.NoError(t, err)
	assert.Equal(t, "{\n  a: 1\n}\n{\n  b: 2\n}\n{\n  z: 1,\n  y: 2\n}\n", out)
}

func TestRootFromOverridesExtension(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("- 1\n"), 0o600))

	out, _, err := execute(t, "", "--to", "text", "--from", "yaml", path)
	require.NoError(t, err)
	assert.Equal(t, "[\n  1\n]\n", out)
}

func TestRootBorderAndColor(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, `1`, "--to", "text", "--border", "ascii", "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, "+---+\n| 1 |\n+---+\n", out)

	out, _, err = execute(t, `1`, "--to", "text", "--color", "always")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
}

func TestRootErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		stdin string
		args  []string
		want  error
	}{
		"unknown output": {stdin: "1", args: []string{"--to", "pdf"}, want: inspect.ErrUnsupportedStyle},
		"unknown quote":  {stdin: "1", args: []string{"--quote", "back"}, want: inspect.ErrUnsupportedStyle},
		"unknown space":  {stdin: "1", args: []string{"--space", "tab"}, want: inspect.ErrUnsupportedStyle},
		"unknown border": {stdin: "1", args: []string{"--to", "text", "--border", "dotted"}, want: inspect.ErrUnsupportedStyle},
		"unknown color":  {stdin: "1", args: []string{"--to", "text", "--color", "maybe"}, want: inspect.ErrUnsupportedStyle},
		"unknown format": {stdin: "1", args: []string{"--from", "xml"}, want: inspect.ErrUnsupportedFormat},
		"bad document":   {stdin: "{", want: inspect.ErrInvalidDocument},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, _, err := execute(t, tt.stdin, tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRootMissingFile(t *testing.T) {
	t.Parallel()
	_, _, err := execute(t, "", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRootVerboseLogs(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	c := New(strings.NewReader(`[1]`), &stdout, &stderr, LogInfo)
	cmd := c.RootCommand()
	cmd.SetArgs([]string{"-v"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, stderr.String(), "decoded")
	assert.Contains(t, stderr.String(), "documents=1")
}

func TestNewLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	logger.Debug("hidden")
	assert.Zero(t, buf.Len())
	logger.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestLoggerFromContext(t *testing.T) {
	t.Parallel()
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}
