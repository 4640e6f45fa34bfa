package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"setup-editor/internal/tools"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "setup.yaml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Editor)
	assert.Equal(t, "extensions.txt", cfg.ExtensionsFile)
	assert.Equal(t, tools.DefaultTools, cfg.Tools)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.yaml")
	content := "editor: codium\nextensions_file: my-extensions.txt\ntools:\n  - jq\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "codium", cfg.Editor)
	assert.Equal(t, "my-extensions.txt", cfg.ExtensionsFile)
	assert.Equal(t, []string{"jq"}, cfg.Tools)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor: code\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "code", cfg.Editor)
	assert.Equal(t, "extensions.txt", cfg.ExtensionsFile)
	assert.Equal(t, tools.DefaultTools, cfg.Tools)
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor: [unclosed\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}
