// Package execx wraps child-process execution behind a small interface so
// stages that shell out to the editor binary or a package manager can be
// exercised in tests with a fake runner.
package execx

import (
	"os/exec"
	"strings"

	"setup-editor/internal/logger"
)

// Runner executes external commands and resolves executables on the search path.
type Runner interface {
	// Run executes name with args and returns the combined stdout/stderr.
	// A non-zero exit status is returned as a non-nil error.
	Run(name string, args ...string) (string, error)
	// RunLines executes name with args and returns non-empty, trimmed output lines.
	RunLines(name string, args ...string) ([]string, error)
	// LookPath reports the full path of name if it resolves on the search path.
	LookPath(name string) (string, error)
}

// Default is the real runner backed by os/exec.
var Default Runner = &systemRunner{}

type systemRunner struct{}

func (r *systemRunner) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *systemRunner) RunLines(name string, args ...string) ([]string, error) {
	output, err := r.Run(name, args...)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func (r *systemRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
