package cli

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/entireio/textkit/textbuf"
)

// sideValue constrains --side to start or end at parse time.
type sideValue string

var _ pflag.Value = (*sideValue)(nil)

func (s *sideValue) String() string { return string(*s) }

func (s *sideValue) Set(v string) error {
	if v != "start" && v != "end" {
		return fmt.Errorf("must be start or end, got %q", v)
	}
	*s = sideValue(v)
	return nil
}

func (s *sideValue) Type() string { return "side" }

// editFlags are shared by every editing command.
type editFlags struct {
	write bool
	yes   bool
}

func (f *editFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.write, "write", "w", false, "rewrite the input file instead of printing")
	cmd.Flags().BoolVarP(&f.yes, "yes", "y", false, "skip the overwrite confirmation")
}

// runEdit reads the input, applies the in-place edit, and either prints the
// result or rewrites the source file.
func runEdit(cmd *cobra.Command, args []string, flags *editFlags, apply func(*textbuf.Buffer)) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	}

	src, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	buf := textbuf.New(src)
	apply(buf)

	if flags.write {
		if path == "" {
			return fmt.Errorf("--write requires a file argument")
		}
		ok, err := confirmOverwrite(path, flags.yes)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(os.Stderr, "Aborted, file left unchanged.")
			return NewSilentError(errAborted)
		}
		return writeFile(path, buf.Bytes())
	}

	fmt.Fprint(cmd.OutOrStdout(), buf.String())
	return nil
}

func newTrimCmd() *cobra.Command {
	var flags editFlags
	var leading, trailing bool

	cmd := &cobra.Command{
		Use:   "trim [file]",
		Short: "Remove leading and trailing whitespace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args, &flags, func(b *textbuf.Buffer) {
				switch {
				case leading && !trailing:
					b.TrimStart()
				case trailing && !leading:
					b.TrimEnd()
				default:
					b.Trim()
				}
			})
		},
	}
	cmd.Flags().BoolVar(&leading, "leading", false, "trim leading whitespace only")
	cmd.Flags().BoolVar(&trailing, "trailing", false, "trim trailing whitespace only")
	flags.register(cmd)
	return cmd
}

func newPadCmd() *cobra.Command {
	var flags editFlags
	var pattern string
	var times int
	side := sideValue("end")

	cmd := &cobra.Command{
		Use:   "pad [file]",
		Short: "Repeat a pattern before or after the text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args, &flags, func(b *textbuf.Buffer) {
				if side == "start" {
					b.FillStart(pattern, times)
				} else {
					b.FillEnd(pattern, times)
				}
			})
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", " ", "pattern to repeat")
	cmd.Flags().IntVarP(&times, "times", "n", 1, "number of repetitions")
	cmd.Flags().Var(&side, "side", "which side to pad: start or end")
	flags.register(cmd)
	return cmd
}

func newCenterCmd() *cobra.Command {
	var flags editFlags
	var pattern string
	var times int

	cmd := &cobra.Command{
		Use:   "center [file]",
		Short: "Pad both sides with a repeated pattern",
		Long: `Pad both sides of the text with the pattern repeated --times times.
Each side gets the full repetition count; it is not split between them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args, &flags, func(b *textbuf.Buffer) {
				b.Center(pattern, times)
			})
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", " ", "pattern to repeat")
	cmd.Flags().IntVarP(&times, "times", "n", 1, "repetitions per side")
	flags.register(cmd)
	return cmd
}

func newEncloseCmd() *cobra.Command {
	var flags editFlags
	var prefix, suffix string

	cmd := &cobra.Command{
		Use:   "enclose [file]",
		Short: "Add a prefix and suffix around the text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args, &flags, func(b *textbuf.Buffer) {
				b.Enclose(prefix, suffix)
			})
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "text to prepend once")
	cmd.Flags().StringVar(&suffix, "suffix", "", "text to append once")
	flags.register(cmd)
	return cmd
}

func newExpandTabsCmd() *cobra.Command {
	var flags editFlags
	var width int

	cmd := &cobra.Command{
		Use:   "expand-tabs [file]",
		Short: "Replace each tab with a fixed number of spaces",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args, &flags, func(b *textbuf.Buffer) {
				b.ExpandTabs(width)
			})
		},
	}
	cmd.Flags().IntVar(&width, "width", 4, "spaces per tab")
	flags.register(cmd)
	return cmd
}

func newShiftCmd() *cobra.Command {
	var flags editFlags
	var index, count int
	var fill string

	cmd := &cobra.Command{
		Use:   "shift [file]",
		Short: "Insert a repeated fill character at a byte offset",
		Long: `Insert the fill character repeated --count times at byte offset --index,
shifting the rest of the text right. An offset inside a multi-byte character
is moved forward to the next character boundary.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, size := utf8.DecodeRuneInString(fill)
			if size == 0 || size != len(fill) {
				return fmt.Errorf("--fill must be exactly one character, got %q", fill)
			}
			return runEdit(cmd, args, &flags, func(b *textbuf.Buffer) {
				b.Shift(index, count, r)
			})
		},
	}
	cmd.Flags().IntVar(&index, "index", 0, "byte offset of the insertion")
	cmd.Flags().IntVar(&count, "count", 1, "number of fill characters to insert")
	cmd.Flags().StringVar(&fill, "fill", " ", "single fill character")
	flags.register(cmd)
	return cmd
}

func newReplaceCmd() *cobra.Command {
	var flags editFlags

	cmd := &cobra.Command{
		Use:   "replace <needle> <replacement> [file]",
		Short: "Replace the first occurrence of a substring",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args[2:], &flags, func(b *textbuf.Buffer) {
				b.Replace(args[0], args[1])
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newTruncateCmd() *cobra.Command {
	var flags editFlags
	var maxRunes int
	var suffix string

	cmd := &cobra.Command{
		Use:   "truncate [file]",
		Short: "Shorten text to a maximum number of characters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args, &flags, func(b *textbuf.Buffer) {
				b.Truncate(maxRunes, suffix)
			})
		},
	}
	cmd.Flags().IntVar(&maxRunes, "max", 80, "maximum number of characters")
	cmd.Flags().StringVar(&suffix, "suffix", "…", "marker spliced over the removed tail")
	flags.register(cmd)
	return cmd
}
