package main

import (
	"setup-editor/cmd" // CLI commands and execution logic
)

// main is the program entry point. It delegates to cmd.Execute() which
// handles command line argument parsing and execution.
//
// setup-editor is a developer workstation setup tool that:
//   - Detects which of the known code-editor variants are installed by probing
//     the search path for their CLI executables
//   - Selects a target editor, auto-selecting when exactly one is found and
//     prompting with a numbered menu otherwise (or honoring --editor)
//   - Installs a fixed list of extensions into the chosen editor concurrently,
//     skipping extensions the editor already reports as installed
//   - Deep-merges a compiled-in settings template into the editor's user
//     settings file, backing up any existing file with a timestamped copy first
//   - Installs companion command-line tools via whichever system package
//     manager the host provides
//
// Error handling strategy:
//   - Fatal preconditions (no editor detected, missing extension list) abort
//     the run with exit code 1 before any work is attempted
//   - Everything else is stage-local: a failed extension install or a skipped
//     settings merge is logged and counted while the run continues, so one
//     bad extension never blocks the rest of the setup
//
// The tool keeps no state between runs beyond the settings file and its
// backups; every stage is idempotent and safe to re-run.
func main() {
	cmd.Execute()
}
