// Package cli implements the textfmt command tree: UTF-8 safe text editing
// and string-similarity tools over files, stdin, or literal arguments.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/entireio/textkit/cmd/textfmt/cli/telemetry"
)

// Execute runs the root command and returns its error for main.go to report.
func Execute(version string) error {
	client := telemetry.NewClient(version)
	defer client.Close()

	ctx := telemetry.WithClient(context.Background(), client)
	return newRootCmd(version).ExecuteContext(ctx)
}

func newRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "textfmt",
		Short: "UTF-8 text manipulation toolkit",
		Long: `textfmt edits text without ever splitting a multi-byte character.

Editing commands (trim, pad, center, enclose, expand-tabs, shift, replace,
truncate) read a file argument or stdin and print the result; --write rewrites
the file in place instead. Analysis commands (distance, common, freq, diff)
compare or summarize their inputs without modifying anything.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			telemetry.GetClient(cmd.Context()).TrackCommand(cmd)
		},
	}

	root.AddCommand(
		newTrimCmd(),
		newPadCmd(),
		newCenterCmd(),
		newEncloseCmd(),
		newExpandTabsCmd(),
		newShiftCmd(),
		newReplaceCmd(),
		newTruncateCmd(),
		newDistanceCmd(),
		newCommonCmd(),
		newFreqCmd(),
		newJoinCmd(),
		newDiffCmd(),
	)
	return root
}
