package extension

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadList reads the extension-list file: one publisher-qualified identifier
// per line. Blank lines and lines starting with '#' are ignored. A missing or
// unreadable file is a fatal precondition for the caller.
func LoadList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read extension list %s: %w", path, err)
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan extension list %s: %w", path, err)
	}
	return ids, nil
}
