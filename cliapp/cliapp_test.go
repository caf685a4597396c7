package cliapp

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func Test_ParseArgs_RequiresThreePositionalArgs(t *testing.T) {
	var stderr bytes.Buffer
	_, err := ParseArgs([]string{"--debug"}, &stderr)
	require.Error(t, err)
}

func Test_Run_SuccessfulParse(t *testing.T) {
	lexPath := writeTemp(t, "lex.spec", "a = a\nb = b\n")
	grammarPath := writeTemp(t, "grammar.spec", "S -> a b\n")

	var stderr bytes.Buffer
	cfg, err := ParseArgs([]string{lexPath, grammarPath, "a b"}, &stderr)
	require.NoError(t, err)

	var out bytes.Buffer
	code := Run(cfg, &out)
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out.String(), "S")
}

func Test_Run_DebugDumpsPatternsGrammarTableAndConflicts(t *testing.T) {
	lexPath := writeTemp(t, "lex.spec", "a = a\nb = b\n")
	grammarPath := writeTemp(t, "grammar.spec", "S -> A b\nA -> a | epsilon\n")

	var stderr bytes.Buffer
	cfg, err := ParseArgs([]string{"--debug", lexPath, grammarPath, "b"}, &stderr)
	require.NoError(t, err)

	var out bytes.Buffer
	code := Run(cfg, &out)
	require.Equal(t, ExitSuccess, code)

	text := out.String()
	assert.Contains(t, text, "-- patterns --")
	assert.Contains(t, text, "a, b")
	assert.Contains(t, text, "-- grammar --")
	assert.Contains(t, text, "-- table --")
	assert.Contains(t, text, "(A, b) -> epsilon")
	assert.Contains(t, text, "-- conflicts --")
	assert.Contains(t, text, "none")
}

func Test_Run_LoadError(t *testing.T) {
	var stderr bytes.Buffer
	cfg, err := ParseArgs([]string{"/does/not/exist.lex", "/does/not/exist.grammar", "x"}, &stderr)
	require.NoError(t, err)

	var out bytes.Buffer
	code := Run(cfg, &out)
	assert.Equal(t, ExitLoadError, code)
	assert.Contains(t, out.String(), "Unable to open the specified file")
}

func Test_Run_ParseError(t *testing.T) {
	lexPath := writeTemp(t, "lex.spec", "a = a\nb = b\n")
	grammarPath := writeTemp(t, "grammar.spec", "S -> a b\n")

	var stderr bytes.Buffer
	cfg, err := ParseArgs([]string{lexPath, grammarPath, "a"}, &stderr)
	require.NoError(t, err)

	var out bytes.Buffer
	code := Run(cfg, &out)
	assert.Equal(t, ExitParseError, code)
	assert.Contains(t, out.String(), "Unexpected end of stream.")
}
