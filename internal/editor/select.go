package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"setup-editor/internal/logger"
)

// Select resolves the detected set down to a single editor. Exactly one
// detected editor is chosen without prompting; with more than one, a 1-based
// numbered menu is printed to out and Select blocks on in until the operator
// enters an integer within range. Invalid input (non-numeric, out of range,
// empty) re-prompts; there is no timeout and no default.
func Select(detected []Editor, in io.Reader, out io.Writer) (Editor, error) {
	switch len(detected) {
	case 0:
		return Editor{}, errors.New("no supported editor detected")
	case 1:
		logger.Info("[INFO] Using %s (only editor detected)\n", detected[0].Name)
		return detected[0], nil
	}

	fmt.Fprintln(out, "Multiple editors detected:")
	for i, e := range detected {
		fmt.Fprintf(out, "  %d) %s (%s)\n", i+1, e.Name, e.Command)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "Select an editor [1-%d]: ", len(detected))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return Editor{}, fmt.Errorf("failed to read selection: %w", err)
			}
			return Editor{}, errors.New("input closed before an editor was selected")
		}
		choice := strings.TrimSpace(scanner.Text())
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(detected) {
			fmt.Fprintf(out, "Invalid selection %q, enter a number between 1 and %d\n", choice, len(detected))
			continue
		}
		return detected[n-1], nil
	}
}
