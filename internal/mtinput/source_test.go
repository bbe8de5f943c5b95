package mtinput_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gordian-engine/mtree/internal/mtinput"
	"github.com/gordian-engine/mtree/internal/mttest"
	"github.com/stretchr/testify/require"
)

func TestSource_Read_argsOnly(t *testing.T) {
	t.Parallel()

	blocks, err := mtinput.Source{Args: []string{"a", "", "c"}}.Read()
	require.NoError(t, err)

	// Empty arguments are still blocks.
	require.Equal(t, mttest.StringBlocks("a", "", "c"), blocks)
}

func TestSource_Read_argsThenFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "blocks.txt")
	require.NoError(t, os.WriteFile(path, []byte("  one \n\ntwo\r\n\t\nthree"), 0o600))

	blocks, err := mtinput.Source{
		Args:      []string{"zero"},
		InputFile: path,
	}.Read()
	require.NoError(t, err)
	require.Equal(t, mttest.StringBlocks("zero", "one", "two", "three"), blocks)
}

func TestSource_Read_missingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := mtinput.Source{InputFile: path}.Read()
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Contains(t, err.Error(), path)
}

func TestSource_Read_noBlocks(t *testing.T) {
	t.Parallel()

	_, err := mtinput.Source{}.Read()
	require.ErrorAs(t, err, new(mtinput.NoBlocksError))

	path := filepath.Join(t.TempDir(), "blank.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n   \n\n"), 0o600))

	_, err = mtinput.Source{InputFile: path}.Read()
	var nbe mtinput.NoBlocksError
	require.ErrorAs(t, err, &nbe)
	require.Equal(t, path, nbe.InputFile)
}

func TestReadLines_longLine(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 256*1024)

	blocks, err := mtinput.ReadLines(strings.NewReader(long + "\nshort\n"))
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	require.Len(t, blocks[0], len(long))
	require.Equal(t, []byte("short"), blocks[1])
}
