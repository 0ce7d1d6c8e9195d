package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/entireio/textkit/strdist"
	"github.com/entireio/textkit/textbuf"
)

func newFreqCmd() *cobra.Command {
	var sorted bool

	cmd := &cobra.Command{
		Use:   "freq [file]",
		Short: "Character frequency table",
		Long: `Count how often each character occurs. By default characters are listed in
the order they first appear; --sorted orders them by code point.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			src, err := readInput(cmd, path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if sorted {
				for _, rc := range strdist.SortedFrequencies(src) {
					fmt.Fprintf(out, "%q\t%d\n", rc.Rune, rc.Count)
				}
				return nil
			}

			// Insertion order: Tally feeds runes in encounter order.
			var order []rune
			counts := map[rune]int{}
			strdist.Tally(src, func(r rune) {
				if counts[r] == 0 {
					order = append(order, r)
				}
				counts[r]++
			})
			for _, r := range order {
				fmt.Fprintf(out, "%q\t%d\n", r, counts[r])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&sorted, "sorted", false, "order by code point instead of first appearance")
	return cmd
}

func newJoinCmd() *cobra.Command {
	var sep string

	cmd := &cobra.Command{
		Use:   "join <fragment>...",
		Short: "Join fragments with a separator",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), joinArgs(args, sep))
			return nil
		},
	}
	cmd.Flags().StringVarP(&sep, "sep", "s", " ", "separator between fragments")
	return cmd
}

func joinArgs(args []string, sep string) string {
	return textbuf.Join(slices.Values(args), sep)
}
