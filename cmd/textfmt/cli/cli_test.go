package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entireio/textkit/strdist"
)

// runCommand executes the root command with args, feeding stdin and capturing
// stdout.
func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd("test")
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTrimCommand(t *testing.T) {
	out, err := runCommand(t, "  Hello ", "trim")
	require.NoError(t, err)
	assert.Equal(t, "Hello", out)
}

func TestTrimCommandLeadingOnly(t *testing.T) {
	out, err := runCommand(t, "  Hello ", "trim", "--leading")
	require.NoError(t, err)
	assert.Equal(t, "Hello ", out)
}

func TestPadCommand(t *testing.T) {
	out, err := runCommand(t, "Hello", "pad", "--pattern", "-", "--times", "3", "--side", "start")
	require.NoError(t, err)
	assert.Equal(t, "---Hello", out)
}

func TestPadCommandRejectsBadSide(t *testing.T) {
	_, err := runCommand(t, "x", "pad", "--side", "middle")
	assert.ErrorContains(t, err, "must be start or end")
}

func TestCenterCommand(t *testing.T) {
	out, err := runCommand(t, "Hi", "center", "--pattern", "-", "--times", "2")
	require.NoError(t, err)
	assert.Equal(t, "--Hi--", out)
}

func TestEncloseCommand(t *testing.T) {
	out, err := runCommand(t, "word", "enclose", "--prefix", "<<", "--suffix", ">>")
	require.NoError(t, err)
	assert.Equal(t, "<<word>>", out)
}

func TestExpandTabsCommand(t *testing.T) {
	out, err := runCommand(t, "a\tb", "expand-tabs", "--width", "2")
	require.NoError(t, err)
	assert.Equal(t, "a  b", out)
}

func TestShiftCommand(t *testing.T) {
	out, err := runCommand(t, "HelloWorld!", "shift", "--index", "5", "--count", "2", "--fill", " ")
	require.NoError(t, err)
	assert.Equal(t, "Hello  World!", out)
}

func TestShiftCommandRejectsMultiCharFill(t *testing.T) {
	_, err := runCommand(t, "x", "shift", "--fill", "ab")
	assert.ErrorContains(t, err, "exactly one character")
}

func TestReplaceCommand(t *testing.T) {
	out, err := runCommand(t, "HelloWorld!", "replace", "World", " world")
	require.NoError(t, err)
	assert.Equal(t, "Hello world!", out)
}

func TestTruncateCommand(t *testing.T) {
	out, err := runCommand(t, "hello world", "truncate", "--max", "8", "--suffix", "...")
	require.NoError(t, err)
	assert.Equal(t, "hello...", out)
}

func TestDistanceCommand(t *testing.T) {
	out, err := runCommand(t, "", "distance", "kitten", "sitting")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestDistanceCommandHamming(t *testing.T) {
	out, err := runCommand(t, "", "distance", "--algorithm", "hamming", "update", "udpate")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestDistanceCommandHammingLengthMismatch(t *testing.T) {
	_, err := runCommand(t, "", "distance", "--algorithm", "hamming", "abc", "ab")
	assert.ErrorIs(t, err, strdist.ErrLengthMismatch)
}

func TestCommonCommand(t *testing.T) {
	out, err := runCommand(t, "", "common", "sparrow", "crow")
	require.NoError(t, err)
	assert.Equal(t, "row\n", out)
}

func TestFreqCommandSorted(t *testing.T) {
	out, err := runCommand(t, "aba", "freq", "--sorted")
	require.NoError(t, err)
	assert.Equal(t, "'a'\t2\n'b'\t1\n", out)
}

func TestFreqCommandInsertionOrder(t *testing.T) {
	out, err := runCommand(t, "ba", "freq")
	require.NoError(t, err)
	assert.Equal(t, "'b'\t1\n'a'\t1\n", out)
}

func TestJoinCommand(t *testing.T) {
	out, err := runCommand(t, "", "join", "--sep", ", ", "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, "a, b, c\n", out)
}

func TestWriteRewritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Hello "), 0o600))

	out, err := runCommand(t, "", "trim", path, "--write", "--yes")
	require.NoError(t, err)
	assert.Empty(t, out)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello", string(content))
}

func TestWriteWithoutFileFails(t *testing.T) {
	_, err := runCommand(t, "x", "trim", "--write")
	assert.ErrorContains(t, err, "--write requires a file argument")
}

func TestRenderPlainDiff(t *testing.T) {
	diffs := []diffmatchpatch.Diff{
		{Type: diffmatchpatch.DiffEqual, Text: "Hello "},
		{Type: diffmatchpatch.DiffDelete, Text: "World"},
		{Type: diffmatchpatch.DiffInsert, Text: "Gopher"},
	}
	assert.Equal(t, "Hello [-World-]{+Gopher+}", renderPlainDiff(diffs))
}

func TestDiffCommand(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.txt")
	newPath := filepath.Join(dir, "new.txt")
	require.NoError(t, os.WriteFile(oldPath, []byte("Hello World"), 0o600))
	require.NoError(t, os.WriteFile(newPath, []byte("Hello Gopher"), 0o600))

	out, err := runCommand(t, "", "diff", "--plain", oldPath, newPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Hello ")
	assert.Contains(t, out, "[-")
	assert.Contains(t, out, "{+")
}
