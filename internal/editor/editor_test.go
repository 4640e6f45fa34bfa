package editor

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pathRunner resolves only the commands in its set.
type pathRunner struct {
	available map[string]bool
}

func (p *pathRunner) Run(name string, args ...string) (string, error) {
	return "", errors.New("not implemented")
}

func (p *pathRunner) RunLines(name string, args ...string) ([]string, error) {
	return nil, errors.New("not implemented")
}

func (p *pathRunner) LookPath(name string) (string, error) {
	if p.available[name] {
		return "/usr/local/bin/" + name, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func commands(editors []Editor) []string {
	var out []string
	for _, e := range editors {
		out = append(out, e.Command)
	}
	return out
}

func TestDetectReturnsSubsetInCatalogOrder(t *testing.T) {
	tests := []struct {
		name      string
		available []string
		want      []string
	}{
		{name: "none installed", available: nil, want: nil},
		{name: "single editor", available: []string{"cursor"}, want: []string{"cursor"}},
		{
			name:      "subset keeps catalog order regardless of probe order",
			available: []string{"windsurf", "code"},
			want:      []string{"code", "windsurf"},
		},
		{
			name:      "all five",
			available: []string{"code", "code-insiders", "codium", "cursor", "windsurf"},
			want:      []string{"code", "code-insiders", "codium", "cursor", "windsurf"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avail := make(map[string]bool)
			for _, c := range tt.available {
				avail[c] = true
			}
			got := Detect(&pathRunner{available: avail})
			assert.Equal(t, tt.want, commands(got))
		})
	}
}

func TestByCommand(t *testing.T) {
	detected := []Editor{Known[0], Known[3]}

	e, err := ByCommand(detected, "cursor")
	require.NoError(t, err)
	assert.Equal(t, "Cursor", e.Name)

	// A known editor that was not detected is still an error.
	_, err = ByCommand(detected, "codium")
	require.Error(t, err)

	_, err = ByCommand(detected, "emacs")
	require.Error(t, err)
}

func TestSettingsBase(t *testing.T) {
	home := filepath.Join("/", "home", "dev")
	assert.Equal(t, filepath.Join(home, "Library", "Application Support"), settingsBase(home, "darwin"))
	assert.Equal(t, filepath.Join(home, ".config"), settingsBase(home, "linux"))
	assert.Equal(t, filepath.Join(home, ".config"), settingsBase(home, "freebsd"))
}

func TestSettingsPathShape(t *testing.T) {
	e := Editor{Command: "code", Name: "Visual Studio Code", ConfigDir: "Code"}
	path, err := e.SettingsPath()
	require.NoError(t, err)
	assert.Equal(t, "settings.json", filepath.Base(path))
	assert.Equal(t, "User", filepath.Base(filepath.Dir(path)))
	assert.Equal(t, "Code", filepath.Base(filepath.Dir(filepath.Dir(path))))
}
