package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// errAborted signals that the user declined a confirmation prompt.
var errAborted = errors.New("aborted")

// IsAccessibleMode returns true if accessibility mode should be enabled.
// Set ACCESSIBLE=1 (or any non-empty value) to get simpler prompts that work
// better with screen readers.
func IsAccessibleMode() bool {
	return os.Getenv("ACCESSIBLE") != ""
}

// newAccessibleForm creates a huh form with accessibility mode enabled when
// the ACCESSIBLE environment variable is set. WithAccessible is only
// available on forms, so prompts are always wrapped in one.
func newAccessibleForm(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...)
	if IsAccessibleMode() {
		form = form.WithAccessible(true)
	}
	return form
}

// readInput returns the text to operate on: the contents of path when given,
// otherwise everything from the command's stdin.
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the user's own argument list
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// confirmOverwrite asks before rewriting path. It returns true without
// prompting when assumeYes is set or when stdin is not a terminal (a pipeline
// cannot answer a prompt).
func confirmOverwrite(path string, assumeYes bool) (bool, error) {
	if assumeYes || !term.IsTerminal(int(os.Stdin.Fd())) {
		return true, nil
	}

	confirmed := false
	form := newAccessibleForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Overwrite %s?", path)).
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirm overwrite: %w", err)
	}
	return confirmed, nil
}

// writeFile rewrites path with the edited content.
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
