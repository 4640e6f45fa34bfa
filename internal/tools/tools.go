// Package tools installs companion command-line tools that round out an
// editor-centric workstation (jq, ripgrep and friends) via whatever system
// package manager the host provides.
package tools

import (
	"sync"

	"setup-editor/internal/execx"
	"setup-editor/internal/logger"
	"setup-editor/internal/pkgmgr"
)

// DefaultTools is the fixed companion-tool list, overridable via setup.yaml.
var DefaultTools = []string{"jq", "ripgrep", "fzf", "shellcheck"}

// Status classifies the outcome of one tool's install attempt.
type Status int

const (
	StatusInstalled Status = iota
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusInstalled:
		return "installed"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Result is the typed outcome of one tool's install attempt.
type Result struct {
	Name   string
	Status Status
	Err    error
}

// Sync installs every tool in names that is not already resolvable on the
// search path, using the first detected package manager. Installs run
// concurrently with one result slot per tool and an unconditional join, the
// same fan-out discipline as the extension installer. When no package manager
// is found the stage is skipped with a warning; that is never fatal to the run.
func Sync(r execx.Runner, names []string) []Result {
	results := make([]Result, len(names))

	mgr, ok := pkgmgr.Detect(r)
	if !ok {
		logger.Warn("[WARN] No supported package manager found. Skipping companion tools.\n")
		for i, name := range names {
			results[i] = Result{Name: name, Status: StatusSkipped}
		}
		return results
	}
	logger.Info("[INFO] Installing companion tools with %s\n", mgr.Name)

	var wg sync.WaitGroup
	for i, name := range names {
		if _, err := r.LookPath(binaryFor(name)); err == nil {
			logger.Info("[INFO] %s already present. Skipping.\n", name)
			results[i] = Result{Name: name, Status: StatusSkipped}
			continue
		}

		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			if err := mgr.Install(r, name); err != nil {
				logger.Error("[ERROR] Failed to install %s: %v\n", name, err)
				results[i] = Result{Name: name, Status: StatusFailed, Err: err}
				return
			}
			logger.Info("[INFO] Installed %s\n", name)
			results[i] = Result{Name: name, Status: StatusInstalled}
		}(i, name)
	}
	wg.Wait()

	return results
}

// binaryFor maps a package name to the executable it provides when the two
// differ. Package managers name the ripgrep package "ripgrep" but install "rg".
func binaryFor(pkg string) string {
	if pkg == "ripgrep" {
		return "rg"
	}
	return pkg
}
