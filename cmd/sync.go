package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"setup-editor/internal/config"
	"setup-editor/internal/editor"
	"setup-editor/internal/execx"
	"setup-editor/internal/extension"
	"setup-editor/internal/logger"
	"setup-editor/internal/settings"
	"setup-editor/internal/tools"
)

// configPath holds the path to the optional setup.yaml config file,
// passed via the `--config` or `-c` flag.
var configPath string

// extensionsPath overrides the extension-list file location when set
// via the `--extensions` or `-e` flag; otherwise the config value applies.
var extensionsPath string

// editorFlag pre-selects a detected editor by command name, skipping the
// interactive prompt. Empty means prompt when more than one editor is found.
var editorFlag string

// syncCmd runs the full flow: detect and select an editor, install the
// extension list, merge the settings template, and install companion tools.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Detect an editor, then sync extensions, settings, and companion tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		chosen, err := chooseEditor(cfg)
		if err != nil {
			return err
		}

		if err := syncExtensions(chosen, cfg); err != nil {
			return err
		}

		// Settings and companion tools are stage-local: a failure here is
		// reported but never undoes the extension work already done.
		if err := settings.Apply(chosen); err != nil {
			logger.Warn("[WARN] Settings merge skipped: %v\n", err)
		}
		reportTools(tools.Sync(execx.Default, cfg.Tools))
		return nil
	},
}

// syncExtensionsCmd syncs only the extension list.
var syncExtensionsCmd = &cobra.Command{
	Use:   "extensions",
	Short: "Install only the extension list into the chosen editor",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		chosen, err := chooseEditor(cfg)
		if err != nil {
			return err
		}
		return syncExtensions(chosen, cfg)
	},
}

// syncSettingsCmd merges only the settings template.
var syncSettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Merge only the settings template into the chosen editor",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		chosen, err := chooseEditor(cfg)
		if err != nil {
			return err
		}
		return settings.Apply(chosen)
	},
}

// syncToolsCmd installs only the companion tools.
var syncToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Install only the companion command-line tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		reportTools(tools.Sync(execx.Default, cfg.Tools))
		return nil
	},
}

// chooseEditor detects installed editors and resolves them to a single choice.
// Zero detected editors is a fatal precondition. The --editor flag (or the
// config-file equivalent) selects without prompting; otherwise a single
// detected editor auto-selects and multiple prompt interactively.
func chooseEditor(cfg config.Config) (editor.Editor, error) {
	detected := editor.Detect(execx.Default)
	if len(detected) == 0 {
		return editor.Editor{}, errors.New("no supported editor found on PATH")
	}

	pick := editorFlag
	if pick == "" {
		pick = cfg.Editor
	}
	if pick != "" {
		return editor.ByCommand(detected, pick)
	}
	return editor.Select(detected, os.Stdin, os.Stdout)
}

// syncExtensions loads the extension list and installs it into the chosen
// editor. A missing list file is a fatal precondition; individual install
// failures are counted and reported, never fatal.
func syncExtensions(chosen editor.Editor, cfg config.Config) error {
	listPath := extensionsPath
	if listPath == "" {
		listPath = cfg.ExtensionsFile
	}
	ids, err := extension.LoadList(listPath)
	if err != nil {
		return err
	}

	installer := extension.NewInstaller(execx.Default, chosen)
	results := installer.InstallAll(ids)

	// Final report enumerates every extension in original list order,
	// regardless of the order concurrent installs completed in.
	for _, r := range results {
		logger.Info("[INFO]   %-10s %s\n", r.Status, r.ID)
	}
	s := extension.Summarize(results)
	logger.Info("[INFO] Extensions for %s: %d installed, %d skipped, %d failed (%d total)\n",
		chosen.Name, s.Installed, s.Skipped, s.Failed, len(results))
	return nil
}

// reportTools prints the companion-tool aggregate counts.
func reportTools(results []tools.Result) {
	var installed, skipped, failed int
	for _, r := range results {
		switch r.Status {
		case tools.StatusInstalled:
			installed++
		case tools.StatusSkipped:
			skipped++
		case tools.StatusFailed:
			failed++
		}
	}
	logger.Info("[INFO] Companion tools: %d installed, %d skipped, %d failed\n", installed, skipped, failed)
}

// init sets up CLI flags and adds subcommands to the root command.
func init() {
	syncCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "setup.yaml", "Path to configuration file")
	syncCmd.PersistentFlags().StringVarP(&extensionsPath, "extensions", "e", "", "Path to extension list file (overrides config)")
	syncCmd.PersistentFlags().StringVar(&editorFlag, "editor", "", "Pre-select a detected editor by command name (skips the prompt)")

	syncCmd.AddCommand(syncExtensionsCmd)
	syncCmd.AddCommand(syncSettingsCmd)
	syncCmd.AddCommand(syncToolsCmd)
	rootCmd.AddCommand(syncCmd)
}
