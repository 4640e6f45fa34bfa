package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"setup-editor/internal/logger"
)

// debug indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// rootCmd is the base command for the CLI tool `setup-editor`.
// It sets up the root-level CLI structure and provides global flags.
var rootCmd = &cobra.Command{
	Use:   "setup-editor",
	Short: "Editor setup tool: extensions, settings, and companion tools",

	// PersistentPreRun runs before any subcommand; it initializes the logger
	// based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
	SilenceUsage: true,
}

// Execute registers flags and subcommands and runs the CLI. Fatal
// preconditions (no editor detected, missing extension list) surface as
// errors from the subcommands and map to exit code 1.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}
}
