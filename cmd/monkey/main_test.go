package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCommand(strings.NewReader(""), &stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeScript(t *testing.T, name, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func TestRunCLIRejectsUnknownCommand(t *testing.T) {
	_, _, err := executeCLI(t, "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestHelpListsCommands(t *testing.T) {
	out, _, err := executeCLI(t, "--help")
	require.NoError(t, err)
	for _, name := range []string{"run", "repl", "tokens", "ast", "fmt", "analyze", "lsp"} {
		assert.Contains(t, out, name)
	}
}

func TestRunExpression(t *testing.T) {
	out, _, err := executeCLI(t, "run", "-e", "1 + 2 * 3")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestRunScriptFile(t *testing.T) {
	path := writeScript(t, "fib.mk", `
let fib = fn(n) { if (n < 2) { n } else { fib(n - 1) + fib(n - 2) } };
puts("computing");
fib(10);
`)
	out, _, err := executeCLI(t, "run", path)
	require.NoError(t, err)
	assert.Equal(t, "computing\n55\n", out)
}

func TestRunNullResultPrintsNothing(t *testing.T) {
	out, _, err := executeCLI(t, "run", "-e", `puts("hi")`)
	require.NoError(t, err)
	assert.Equal(t, "hi\n", out)
}

func TestRunRuntimeError(t *testing.T) {
	_, _, err := executeCLI(t, "run", "-e", "5 + true")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "execution failed")
	assert.Contains(t, err.Error(), "type mismatch: INTEGER + BOOLEAN")
}

func TestRunParseErrorNamesSource(t *testing.T) {
	_, _, err := executeCLI(t, "run", "-e", "let = 5;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "<expr>: parse error at 1:5")
}

func TestRunCheckOnlyParses(t *testing.T) {
	out, _, err := executeCLI(t, "run", "--check", "-e", "1 + true")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRunRequiresSource(t *testing.T) {
	_, _, err := executeCLI(t, "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "script path or -e expression required")
}

func TestRecursionLimitFlag(t *testing.T) {
	_, _, err := executeCLI(t, "--recursion-limit", "10", "run", "-e", "let f = fn(n) { f(n + 1) }; f(0)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recursion depth exceeded (limit 10)")
}

func TestConfigFileSetsLimits(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("monkey.yaml", []byte("step_quota: 20\n"), 0o644))

	_, _, err := executeCLI(t, "run", "-e", "let f = fn(n) { f(n + 1) }; f(0)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step quota exceeded (20)")
}

func TestFlagOverridesConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("monkey.yaml", []byte("step_quota: 20\n"), 0o644))

	_, _, err := executeCLI(t, "--step-quota", "0", "--recursion-limit", "5", "run", "-e", "let f = fn(n) { f(n + 1) }; f(0)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recursion depth exceeded (limit 5)")
}

func TestExplicitConfigMustExist(t *testing.T) {
	_, _, err := executeCLI(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "run", "-e", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: open")
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := executeCLI(t, "--log-level", "loud", "run", "-e", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "loud"`)
}

func TestDebugLogLevelWritesToStderr(t *testing.T) {
	_, stderr, err := executeCLI(t, "--log-level", "debug", "run", "-e", "let f = fn(x) { x }; f(1)")
	require.NoError(t, err)
	assert.Contains(t, stderr, "msg=call")
	assert.Contains(t, stderr, "function=f")
	assert.Contains(t, stderr, `msg="program finished"`)
}

func TestTokensCommand(t *testing.T) {
	out, _, err := executeCLI(t, "tokens", "-e", "let x = 5;")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Equal(t, []string{
		"1:1\tLET\t\"let\"",
		"1:5\tIDENT\t\"x\"",
		"1:7\t=\t\"=\"",
		"1:9\tINT\t\"5\"",
		"1:10\t;\t\";\"",
		"1:11\tEOF\t\"\"",
	}, lines)
}

func TestASTCommand(t *testing.T) {
	out, _, err := executeCLI(t, "ast", "-e", "1 + 2 * 3;\n-a * b")
	require.NoError(t, err)
	assert.Equal(t, "1:1\t(1 + (2 * 3))\n2:1\t((-a) * b)\n", out)
}

func TestASTCommandReportsEveryParseError(t *testing.T) {
	_, _, err := executeCLI(t, "ast", "-e", "let x 5;\nlet = 10;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse error(s)")
	assert.Contains(t, err.Error(), "<expr>: parse error at 1:7")
	assert.Contains(t, err.Error(), "<expr>: parse error at 2:5")
}
