package editor

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"setup-editor/internal/execx"
	"setup-editor/internal/logger"
)

// Editor describes one known editor variant.
// - Command: the CLI executable name probed on the search path.
// - Name: human-readable name shown in prompts and status lines.
// - ConfigDir: the per-editor directory under the platform settings base.
type Editor struct {
	Command   string
	Name      string
	ConfigDir string
}

// Known is the fixed, priority-ordered catalog of supported editor variants.
// Detection and menu order follow this slice; it is never mutated.
var Known = []Editor{
	{Command: "code", Name: "Visual Studio Code", ConfigDir: "Code"},
	{Command: "code-insiders", Name: "VS Code Insiders", ConfigDir: "Code - Insiders"},
	{Command: "codium", Name: "VSCodium", ConfigDir: "VSCodium"},
	{Command: "cursor", Name: "Cursor", ConfigDir: "Cursor"},
	{Command: "windsurf", Name: "Windsurf", ConfigDir: "Windsurf"},
}

// Detect probes the search path for every known editor command and returns
// the subset found, preserving catalog order. An empty result means no
// supported editor is installed; callers treat that as a fatal precondition.
func Detect(r execx.Runner) []Editor {
	var found []Editor
	for _, e := range Known {
		path, err := r.LookPath(e.Command)
		if err != nil {
			logger.Debug("[DEBUG] %s (%s) not found on PATH\n", e.Name, e.Command)
			continue
		}
		logger.Debug("[DEBUG] Detected %s at %s\n", e.Name, path)
		found = append(found, e)
	}
	return found
}

// ByCommand returns the detected editor matching the given command name.
// Used by the --editor non-interactive override.
func ByCommand(detected []Editor, command string) (Editor, error) {
	for _, e := range detected {
		if e.Command == command {
			return e, nil
		}
	}
	return Editor{}, fmt.Errorf("editor %q is not among the detected editors", command)
}

// SettingsPath returns the editor's user settings file location. macOS keeps
// editor settings under ~/Library/Application Support; every other platform
// uses the ~/.config convention.
func (e Editor) SettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(settingsBase(home, runtime.GOOS), e.ConfigDir, "User", "settings.json"), nil
}

// settingsBase maps a platform to its settings base directory.
func settingsBase(home, goos string) string {
	if goos == "darwin" {
		return filepath.Join(home, "Library", "Application Support")
	}
	return filepath.Join(home, ".config")
}
