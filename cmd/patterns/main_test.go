package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/patterns/catalog"
)

//
// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// runCLI executes run() and returns exit code, stdout and stderr.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func findCmd(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

//
// -----------------------------------------------------------------------------
// Structure
// -----------------------------------------------------------------------------

func TestRootCmd_Subcommands(t *testing.T) {
	t.Parallel()

	root := newRootCmd(catalog.Default())
	assert.Equal(t, "patterns", root.Use)
	for _, name := range []string{
		"list", "run", "strategy", "abstract-factory", "factory-method", "composite", "decorator", "serve",
	} {
		assert.NotNil(t, findCmd(root, name), name)
	}

	serve := findCmd(root, "serve")
	require.NotNil(t, serve)
	assert.NotNil(t, serve.Flags().Lookup("config"))
}

//
// -----------------------------------------------------------------------------
// list / run
// -----------------------------------------------------------------------------

func TestList(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "list")
	require.Equal(t, 0, code)
	assert.Equal(t, "abstract-factory\ncomposite\ndecorator\nfactory-method\nstrategy\n", out)
}

func TestRun_Demo(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "run", "factory-method")
	require.Equal(t, 0, code)
	assert.Equal(t,
		"Windows Notification: Windows is cool\nIt's Windows\nLinux Notification: Linux is lit\nIt's Linux\n",
		out)
}

func TestRun_UnknownDemo(t *testing.T) {
	t.Parallel()

	code, out, errOut := runCLI(t, "run", "observer")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `catalog: demo "observer" missing`)
}

func TestRun_ArgCount(t *testing.T) {
	t.Parallel()

	code, _, errOut := runCLI(t, "run")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "accepts 1 arg(s)")
}

//
// -----------------------------------------------------------------------------
// Pattern subcommands
// -----------------------------------------------------------------------------

func TestStrategy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		args []string
		want string
	}{
		{[]string{"strategy", "2", "2"}, "4\n"},
		{[]string{"strategy", "--op", "subtract", "4", "2"}, "2\n"},
		{[]string{"strategy", "--op", "multiply", "3", "2"}, "6\n"},
		{[]string{"strategy", "--op", "divide", "4", "1"}, "4\n"},
		{[]string{"strategy", "--op", "divide", "4", "0"}, "Infinity\n"},
	}
	for _, tc := range cases {
		code, out, errOut := runCLI(t, tc.args...)
		require.Equal(t, 0, code, errOut)
		assert.Equal(t, tc.want, out, strings.Join(tc.args, " "))
	}
}

func TestStrategy_Errors(t *testing.T) {
	t.Parallel()

	code, _, errOut := runCLI(t, "strategy", "--op", "modulo", "1", "2")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown strategy")

	code, _, errOut = runCLI(t, "strategy", "x", "2")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `"x" is not a number`)
}

func TestAbstractFactory(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "abstract-factory", "windows")
	require.Equal(t, 0, code)
	assert.Equal(t,
		"<button class=\"windows-button\"></button>\n<input type=\"checkbox\" class=\"windows-checkbox\"/>\n",
		out)

	code, _, errOut := runCLI(t, "abstract-factory", "amiga")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown widget family")
}

func TestFactoryMethod(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "factory-method", "windows")
	require.Equal(t, 0, code)
	assert.Equal(t, "Windows Notification: Windows is cool\nIt's Windows\n", out)

	code, _, _ = runCLI(t, "factory-method", "beos")
	assert.Equal(t, 1, code)
}

func TestComposite(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "composite",
		"--roof-type", "single-slope", "--material", "tile", "--width", "10", "--length", "20")
	require.Equal(t, 0, code)
	assert.Equal(t, "Необхідно матеріалів: 60 одиниць\n", out)

	// Missing dimensions are not an error; the total is NaN.
	code, out, _ = runCLI(t, "composite")
	require.Equal(t, 0, code)
	assert.Equal(t, "Необхідно матеріалів: NaN одиниць\n", out)
}

func TestDecorator(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "decorator", "--name", "X", "--expiration", "2025", "--dosage", "5mg")
	require.Equal(t, 0, code)
	assert.Equal(t, "Назва: X, Ціна: 10. Термін придатності: 2025. Дозування: 5mg\n", out)
}

//
// -----------------------------------------------------------------------------
// serve
// -----------------------------------------------------------------------------

// TestServe_InvalidConfig verifies serve fails fast before listening.
func TestServe_InvalidConfig(t *testing.T) {
	t.Setenv("PATTERNS_LOG_LEVEL", "chatty")

	code, _, errOut := runCLI(t, "serve")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "log.level")
}
