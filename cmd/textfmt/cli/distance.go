package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entireio/textkit/strdist"
)

func newDistanceCmd() *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "distance <a> <b>",
		Short: "Edit distance between two strings",
		Long: `Compute the distance between two strings in Unicode characters.

levenshtein counts insertions, deletions and substitutions; hamming counts
differing positions and requires both strings to have the same length.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var d int
			switch algorithm {
			case "levenshtein":
				d = strdist.Levenshtein(args[0], args[1])
			case "hamming":
				var err error
				d, err = strdist.Hamming(args[0], args[1])
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown --algorithm %q: must be levenshtein or hamming", algorithm)
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "levenshtein", "levenshtein or hamming")
	return cmd
}

func newCommonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "common <a> <b>",
		Short: "Longest common substring of two strings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strdist.LongestCommonSubstring(args[0], args[1]))
			return nil
		},
	}
}
