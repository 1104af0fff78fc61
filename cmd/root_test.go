package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pasraylib/projgen/internal/msg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureMsg(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := msg.Output
	msg.Output = &buf
	t.Cleanup(func() { msg.Output = prev })
	return &buf
}

func TestListCommand(t *testing.T) {
	buf := captureMsg(t)

	rootCmd.SetArgs([]string{"list", "--filter", `category == "shaders"`})
	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "shaders/shaders_basic_lighting")
	assert.Contains(t, out, "[rlights]")
	assert.NotContains(t, out, "core/")
	assert.Equal(t, 13, strings.Count(out, "shaders/"))
}

func TestGenerateCommand(t *testing.T) {
	captureMsg(t)
	root := t.TempDir()
	dir := filepath.Join(root, "core", "core_basic_window")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	rootCmd.SetArgs([]string{"generate", "-C", root, "-g", "lazarus", "--filter", `name == "core_basic_window"`})
	require.NoError(t, rootCmd.Execute())

	assert.FileExists(t, filepath.Join(dir, "core_basic_window.lpi"))
	assert.FileExists(t, filepath.Join(dir, "core_basic_window.lpr"))
	assert.NoFileExists(t, filepath.Join(dir, "core_basic_window.dproj"))
}
