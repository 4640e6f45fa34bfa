// Package pkgmgr abstracts system package managers behind a data-driven
// descriptor list. Detection is capability probing: the first descriptor whose
// command resolves on the search path wins.
package pkgmgr

import (
	"fmt"

	"setup-editor/internal/execx"
	"setup-editor/internal/logger"
)

// Manager describes one package-manager provider: its command name, the
// argument templates for install/remove, and whether invocations must be
// wrapped in sudo.
type Manager struct {
	Name        string
	InstallArgs []string
	RemoveArgs  []string
	NeedsSudo   bool
}

// Known is the fixed priority-ordered provider list. Homebrew first since it
// is the common case on developer workstations, then the major Linux families.
var Known = []Manager{
	{Name: "brew", InstallArgs: []string{"install"}, RemoveArgs: []string{"uninstall"}},
	{Name: "apt-get", InstallArgs: []string{"install", "-y"}, RemoveArgs: []string{"remove", "-y"}, NeedsSudo: true},
	{Name: "dnf", InstallArgs: []string{"install", "-y"}, RemoveArgs: []string{"remove", "-y"}, NeedsSudo: true},
	{Name: "pacman", InstallArgs: []string{"-S", "--noconfirm"}, RemoveArgs: []string{"-R", "--noconfirm"}, NeedsSudo: true},
	{Name: "zypper", InstallArgs: []string{"install", "-y"}, RemoveArgs: []string{"remove", "-y"}, NeedsSudo: true},
}

// Detect returns the first known manager resolvable on the search path.
// The boolean is false when no manager is found; callers treat that as a
// recoverable condition, not a fatal one.
func Detect(r execx.Runner) (Manager, bool) {
	for _, m := range Known {
		if _, err := r.LookPath(m.Name); err == nil {
			logger.Debug("[DEBUG] Using package manager %s\n", m.Name)
			return m, true
		}
	}
	return Manager{}, false
}

// Install installs pkg via the manager.
func (m Manager) Install(r execx.Runner, pkg string) error {
	return m.run(r, m.InstallArgs, pkg, "install")
}

// Remove uninstalls pkg via the manager.
func (m Manager) Remove(r execx.Runner, pkg string) error {
	return m.run(r, m.RemoveArgs, pkg, "remove")
}

func (m Manager) run(r execx.Runner, args []string, pkg, verb string) error {
	name, argv := m.Command(args, pkg)
	output, err := r.Run(name, argv...)
	if err != nil {
		return fmt.Errorf("%s %s of %s failed: %w\nOutput: %s", m.Name, verb, pkg, err, output)
	}
	return nil
}

// Command expands an argument template into the full invocation, applying the
// sudo wrapper when the provider requires elevation.
func (m Manager) Command(args []string, pkg string) (string, []string) {
	argv := append(append([]string{}, args...), pkg)
	if m.NeedsSudo {
		return "sudo", append([]string{m.Name}, argv...)
	}
	return m.Name, argv
}
