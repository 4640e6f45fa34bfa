package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"setup-editor/internal/logger"
	"setup-editor/internal/tools"
)

// Config holds the optional setup.yaml overrides. Everything has a compiled-in
// default; the file only exists so operators can pin an editor or change the
// lists without touching flags.
type Config struct {
	// Editor pre-selects a detected editor by command name, skipping the prompt.
	Editor string `yaml:"editor"`
	// ExtensionsFile overrides the default extension-list path.
	ExtensionsFile string `yaml:"extensions_file"`
	// Tools overrides the default companion-tool list.
	Tools []string `yaml:"tools"`
}

// Load reads the setup.yaml config at path. A missing file is not an error:
// the defaults apply and the run proceeds. A present but malformed file is an
// error, since silently ignoring operator intent would be worse than failing.
func Load(path string) (Config, error) {
	cfg := Config{
		ExtensionsFile: "extensions.txt",
		Tools:          tools.DefaultTools,
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("[DEBUG] No config file at %s, using defaults\n", path)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.ExtensionsFile == "" {
		cfg.ExtensionsFile = "extensions.txt"
	}
	if len(cfg.Tools) == 0 {
		cfg.Tools = tools.DefaultTools
	}
	logger.Debug("[DEBUG] Loaded config from %s\n", path)
	return cfg, nil
}
