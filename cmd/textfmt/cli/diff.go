package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newDiffCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "diff <old-file> <new-file>",
		Short: "Character-level diff between two files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldText, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			newText, err := readInput(cmd, args[1])
			if err != nil {
				return err
			}

			dmp := diffmatchpatch.New()
			diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(oldText, newText, false))

			out := cmd.OutOrStdout()
			if !plain && term.IsTerminal(int(os.Stdout.Fd())) {
				fmt.Fprintln(out, dmp.DiffPrettyText(diffs))
				return nil
			}
			fmt.Fprint(out, renderPlainDiff(diffs))
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "marker output even on a terminal")
	return cmd
}

// renderPlainDiff formats diffs with {+...+} and [-...-] markers, keeping
// unchanged text verbatim. Used when the output is not a terminal.
func renderPlainDiff(diffs []diffmatchpatch.Diff) string {
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+")
			sb.WriteString(d.Text)
			sb.WriteString("+}")
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-")
			sb.WriteString(d.Text)
			sb.WriteString("-]")
		case diffmatchpatch.DiffEqual:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
