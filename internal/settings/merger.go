package settings

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"setup-editor/internal/editor"
	"setup-editor/internal/logger"
)

// backupStamp is the compact date-time layout appended to backup file names.
const backupStamp = "20060102150405"

// Apply merges the compiled-in settings template into the editor's user
// settings file. The settings directory is created if missing; an absent file
// receives the template verbatim; an existing file is backed up to
// <file>.backup.<stamp> unconditionally before any mutation, then deep-merged
// with template values winning. A failure here is recoverable for the overall
// run: the caller logs it and continues.
func Apply(e editor.Editor) error {
	path, err := e.SettingsPath()
	if err != nil {
		return err
	}
	return applyToPath(path, time.Now())
}

func applyToPath(path string, now time.Time) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	existing, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read settings file %s: %w", path, err)
		}
		// No settings file yet: the template becomes the settings file.
		logger.Info("[INFO] No existing settings at %s. Writing defaults.\n", path)
		return writeSettings(path, Template())
	}

	// Back up before touching anything so the merge is always reversible by
	// the operator, even if the process dies mid-write.
	backupPath := fmt.Sprintf("%s.backup.%s", path, now.Format(backupStamp))
	if err := copyFile(path, backupPath); err != nil {
		return fmt.Errorf("failed to back up settings file: %w", err)
	}
	logger.Info("[INFO] Backed up existing settings to %s\n", backupPath)

	var current map[string]any
	if err := json.Unmarshal(existing, &current); err != nil {
		return fmt.Errorf("existing settings file %s is not valid JSON (backup kept at %s): %w", path, backupPath, err)
	}

	merged := Merge(current, Template())
	if err := writeSettings(path, merged); err != nil {
		return err
	}
	logger.Info("[INFO] Merged settings into %s\n", path)
	return nil
}

// writeSettings pretty-prints the settings document to path.
func writeSettings(path string, doc map[string]any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}
	return nil
}

// copyFile copies src to dst byte for byte. Backups live next to the original,
// so the destination directory is known to exist.
func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source failed: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create target failed: %w", err)
	}
	defer func() {
		cerr := out.Close()
		if err == nil {
			err = cerr
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}
	return nil
}
