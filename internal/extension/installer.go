package extension

import (
	"strings"
	"sync"

	"setup-editor/internal/editor"
	"setup-editor/internal/execx"
	"setup-editor/internal/logger"
)

// Status classifies the outcome of a single extension install attempt.
type Status int

const (
	StatusInstalled Status = iota // install command succeeded
	StatusSkipped                 // already present in the installed snapshot
	StatusFailed                  // install command exited non-zero
)

// String returns the lowercase label used in status lines and summaries.
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

// Result is the typed outcome of one extension's install attempt.
type Result struct {
	ID     string
	Status Status
	Err    error
}

// Summary aggregates results over a full install pass.
type Summary struct {
	Installed int
	Skipped   int
	Failed    int
}

// Installer installs extensions into one editor via its CLI.
type Installer struct {
	runner execx.Runner
	editor editor.Editor
}

// NewInstaller returns an Installer for the chosen editor.
func NewInstaller(r execx.Runner, e editor.Editor) *Installer {
	return &Installer{runner: r, editor: e}
}

// Installed queries the editor once for its currently installed extensions
// and returns a lowercased identifier set. The snapshot is captured a single
// time per run and treated as read-only; partial installs are not re-queried.
// A failed query is downgraded to an empty snapshot so the install pass can
// still proceed (installs of already-present extensions are idempotent).
func (i *Installer) Installed() map[string]bool {
	snapshot := make(map[string]bool)
	lines, err := i.runner.RunLines(i.editor.Command, "--list-extensions")
	if err != nil {
		logger.Warn("[WARN] Failed to list installed extensions for %s: %v. Assuming none.\n", i.editor.Name, err)
		return snapshot
	}
	for _, line := range lines {
		snapshot[strings.ToLower(line)] = true
	}
	logger.Debug("[DEBUG] %s reports %d installed extensions\n", i.editor.Name, len(snapshot))
	return snapshot
}

// InstallAll installs every extension in ids concurrently. Extensions already
// present in the installed snapshot (case-insensitive) are skipped without
// spawning an install. Each attempt is isolated: a failure never aborts
// siblings, and every spawned goroutine is joined unconditionally before
// results are read. Results come back in the original list order, one slot
// per extension, regardless of completion order.
func (i *Installer) InstallAll(ids []string) []Result {
	logger.Debug("[DEBUG] Starting install pass for %d extensions\n", len(ids))

	installed := i.Installed()
	results := make([]Result, len(ids))
	var wg sync.WaitGroup

	for idx, id := range ids {
		if installed[strings.ToLower(id)] {
			logger.Info("[INFO] %s already installed. Skipping.\n", id)
			results[idx] = Result{ID: id, Status: StatusSkipped}
			continue
		}

		wg.Add(1)
		go func(idx int, id string) {
			defer wg.Done()
			output, err := i.runner.Run(i.editor.Command, "--install-extension", id)
			if err != nil {
				logger.Error("[ERROR] Failed to install %s: %v\nOutput: %s\n", id, err, output)
				results[idx] = Result{ID: id, Status: StatusFailed, Err: err}
				return
			}
			logger.Info("[INFO] Installed %s\n", id)
			results[idx] = Result{ID: id, Status: StatusInstalled}
		}(idx, id)
	}

	wg.Wait() // join every attempt before results are read

	logger.Debug("[DEBUG] Finished install pass\n")
	return results
}

// Summarize counts results by status. Installed + Skipped + Failed always
// equals the number of results.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case StatusInstalled:
			s.Installed++
		case StatusSkipped:
			s.Skipped++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}
