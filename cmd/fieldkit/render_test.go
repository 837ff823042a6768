package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderErrorField(t *testing.T) {
	t.Parallel()

	out, err := execute("render",
		"--state", "error",
		"--label", "Error Label",
		"--placeholder", "Enter value",
		"--value", "Invalid input",
		"--error-text", "Invalid input. Please try again.",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Error Label")
	assert.Contains(t, out, "Invalid input")
	assert.Contains(t, out, "⚠ Invalid input. Please try again.")
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderTree(t *testing.T) {
	t.Parallel()

	out, err := execute("render", "--tree", "--state", "error", "--error-text", "nope", "--trailing-icon", "×")
	require.NoError(t, err)
	assert.Contains(t, out, "border=accent-blue")
	assert.Contains(t, out, "trailing-icon \"×\"")
	assert.Contains(t, out, "error-text \"nope\" fg=danger-red")
}

func TestRenderRejectsUnknownState(t *testing.T) {
	t.Parallel()

	_, err := execute("render", "--state", "hovered")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hovered")
}

func TestRenderRejectsUnknownTheme(t *testing.T) {
	t.Parallel()

	_, err := execute("render", "--theme", "sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")
}

func TestRenderGolden(t *testing.T) {
	t.Parallel()

	golden := filepath.Join(t.TempDir(), "focused.golden")

	out, err := execute("render", "--state", "focused", "--label", "Name", "--value", "Ada", "--golden", golden, "--update")
	require.NoError(t, err)
	assert.Contains(t, out, "updated")

	saved, err := os.ReadFile(golden)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(saved), "Name"))

	_, err = execute("render", "--state", "focused", "--label", "Name", "--value", "Ada", "--golden", golden)
	require.NoError(t, err)

	out, err = execute("render", "--state", "focused", "--label", "Name", "--value", "Grace", "--golden", golden)
	require.ErrorIs(t, err, errGoldenMismatch)
	assert.Contains(t, err.Error(), "1 removed, 1 added")
	assert.Contains(t, out, "--- "+golden)
	assert.Contains(t, out, "Grace")
}

func TestRenderLogsToFile(t *testing.T) {
	t.Parallel()

	logFile := filepath.Join(t.TempDir(), "fieldkit.log")
	_, err := execute("--verbose", "--log-file", logFile, "render", "--state", "typing")
	require.NoError(t, err)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rendering field")
	assert.Contains(t, string(data), `"state":"typing"`)
}
