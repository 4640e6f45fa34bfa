package tools

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner resolves a fixed set of executables and records package-manager
// invocations. Install failures are keyed by package name.
type fakeRunner struct {
	mu        sync.Mutex
	available map[string]bool
	failing   map[string]bool
	installs  []string
}

func (f *fakeRunner) Run(name string, args ...string) (string, error) {
	pkg := args[len(args)-1]
	f.mu.Lock()
	f.installs = append(f.installs, pkg)
	f.mu.Unlock()
	if f.failing[pkg] {
		return "no such package", errors.New("exit status 1")
	}
	return "", nil
}

func (f *fakeRunner) RunLines(name string, args ...string) ([]string, error) {
	_, err := f.Run(name, args...)
	return nil, err
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.available[name] {
		return "/usr/bin/" + name, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func TestSyncNoManagerSkipsEverything(t *testing.T) {
	runner := &fakeRunner{available: map[string]bool{}}
	results := Sync(runner, []string{"jq", "ripgrep"})
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, StatusSkipped, r.Status)
	}
	assert.Empty(t, runner.installs)
}

func TestSyncSkipsToolsAlreadyOnPath(t *testing.T) {
	// rg on the path means the ripgrep package is skipped.
	runner := &fakeRunner{available: map[string]bool{"brew": true, "rg": true, "jq": true}}
	results := Sync(runner, []string{"jq", "ripgrep", "fzf"})
	require.Len(t, results, 3)

	assert.Equal(t, StatusSkipped, results[0].Status)
	assert.Equal(t, StatusSkipped, results[1].Status)
	assert.Equal(t, StatusInstalled, results[2].Status)
	assert.Equal(t, []string{"fzf"}, runner.installs)
}

func TestSyncFailureIsIsolated(t *testing.T) {
	runner := &fakeRunner{
		available: map[string]bool{"brew": true},
		failing:   map[string]bool{"fzf": true},
	}
	results := Sync(runner, []string{"jq", "fzf", "shellcheck"})
	require.Len(t, results, 3)

	assert.Equal(t, StatusInstalled, results[0].Status)
	assert.Equal(t, StatusFailed, results[1].Status)
	assert.Error(t, results[1].Err)
	assert.Equal(t, StatusInstalled, results[2].Status)
}

func TestSyncResultsKeepListOrder(t *testing.T) {
	runner := &fakeRunner{available: map[string]bool{"brew": true}}
	names := []string{"jq", "ripgrep", "fzf", "shellcheck"}
	results := Sync(runner, names)
	require.Len(t, results, len(names))
	for i, r := range results {
		assert.Equal(t, names[i], r.Name)
	}
}
