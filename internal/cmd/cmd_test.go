package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const readme = "# Demo\n" +
	"\n" +
	"```py file=hello.py\n" +
	"print(1)\n" +
	"```\n" +
	"\n" +
	"```go\n" +
	"package main\n" +
	"```\n"

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer

	code := run(args, strings.NewReader(stdin), &stdout, &stderr)

	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeReadme(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")

	require.NoError(t, os.WriteFile(path, []byte(readme), 0o600))

	return path, filepath.Join(dir, "settings.yaml")
}

func TestList(t *testing.T) {
	t.Parallel()

	path, _ := writeReadme(t)

	res := execute(t, "", "list", path)
	require.Equal(t, 0, res.code, res.stderr)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"INDEX", "LANG", "START", "END", "FILE"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"0", "py", "3", "5", "hello.py"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"1", "go", "7", "9"}, strings.Fields(lines[2]))
}

func TestListFilter(t *testing.T) {
	t.Parallel()

	path, _ := writeReadme(t)

	res := execute(t, "", "list", "--lang", "g*", path)
	require.Equal(t, 0, res.code, res.stderr)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "go", strings.Fields(lines[1])[1])

	res = execute(t, "", "list", "--file", "*.py", path)
	require.Equal(t, 0, res.code, res.stderr)

	lines = strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "hello.py", strings.Fields(lines[1])[4])
}

func TestListFromStdin(t *testing.T) {
	t.Parallel()

	res := execute(t, readme, "ls", "-")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "hello.py")
}

func TestListBadGlob(t *testing.T) {
	t.Parallel()

	path, _ := writeReadme(t)

	res := execute(t, "", "list", "--lang", "[", path)
	assert.Equal(t, 1, res.code)
	assert.True(t, strings.HasPrefix(res.stderr, "Error: "), res.stderr)
}

func TestEditRequiresCursor(t *testing.T) {
	t.Parallel()

	path, conf := writeReadme(t)

	res := execute(t, "", "edit", "--config", conf, path)
	assert.Equal(t, 1, res.code)
	assert.Equal(t, "Error: --line or --index is required\n", res.stderr)
}

func TestEditRequiresFile(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "edit", "--line", "1")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, errMissingFile.Error())
}

func TestEditNotFound(t *testing.T) {
	t.Parallel()

	path, conf := writeReadme(t)

	res := execute(t, "", "edit", "--config", conf, "--line", "1", "--command", `["true"]`, path)
	assert.Equal(t, 1, res.code)
	assert.Equal(t, "No codeblock found at cursor position\n", res.stderr)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, readme, string(data))
}

func TestEditUnknownIndex(t *testing.T) {
	t.Parallel()

	path, conf := writeReadme(t)

	res := execute(t, "", "edit", "--config", conf, "--index", "5", path)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "no code block with index: 5")
}

func TestEditInvalidCommand(t *testing.T) {
	t.Parallel()

	path, conf := writeReadme(t)

	res := execute(t, "", "edit", "--config", conf, "--line", "4", "--command", `nvim`, path)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "invalid command")
}

func TestEditAttachWithStdin(t *testing.T) {
	t.Parallel()

	_, conf := writeReadme(t)

	res := execute(t, readme, "edit", "--config", conf, "--line", "4", "--attach", "-")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "--attach cannot be used")
}

func TestConfig(t *testing.T) {
	t.Parallel()

	_, conf := writeReadme(t)

	res := execute(t, "", "config", "show", "--config", conf)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, `command: ["alacritty","-e","sh","-c","vi"]`)
	assert.Contains(t, res.stdout, "attach:  false")

	res = execute(t, "", "--config", conf, "config", "set", "--attach", `["nvim"]`)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "saved "+conf+"\n", res.stderr)

	res = execute(t, "", "--config", conf, "config", "set", `not json`)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, `keeping ["nvim"]`)

	res = execute(t, "", "--config", conf, "config", "show")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, `command: ["nvim"]`)
	assert.Contains(t, res.stdout, "attach:  true")

	res = execute(t, "", "-q", "--config", conf, "config", "reset")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Empty(t, res.stderr)

	res = execute(t, "", "--config", conf, "config", "show")
	assert.Contains(t, res.stdout, `command: ["alacritty","-e","sh","-c","vi"]`)
}

func TestDocumentCursorClamp(t *testing.T) {
	t.Parallel()

	doc := &document{text: "a\nb\nc"}

	doc.SetCursorLine(7)
	assert.Equal(t, 2, doc.CursorLine())

	doc.SetCursorLine(-3)
	assert.Equal(t, 0, doc.CursorLine())

	doc.SetCursorLine(1)
	assert.Equal(t, 1, doc.CursorLine())
}
