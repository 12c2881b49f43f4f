package saves

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolder_WriteLatest(t *testing.T) {
	f := New(t.TempDir())

	_, _, err := f.Latest(0xABCD)
	assert.ErrorIs(t, err, ErrNoSaves)

	first, err := f.Write(0xABCD, []byte("first"))
	require.NoError(t, err)
	second, err := f.Write(0xABCD, []byte("second"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Equal(t, filepath.Join(f.Root, "000000000000abcd"), filepath.Dir(second))

	b, path, err := f.Latest(0xABCD)
	require.NoError(t, err)
	assert.Equal(t, second, path)
	assert.Equal(t, []byte("second"), b)

	paths, err := f.List(0xABCD)
	require.NoError(t, err)
	assert.Equal(t, []string{second, first}, paths)
}

func TestFolder_ListIgnoresOtherFiles(t *testing.T) {
	f := New(t.TempDir())
	path, err := f.Write(1, []byte{0x01})
	require.NoError(t, err)

	dir := filepath.Dir(path)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "old.state"), 0755))

	paths, err := f.List(1)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, paths)

	// other cartridges are kept apart
	paths, err = f.List(2)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestFolder_WriteRenameFails(t *testing.T) {
	errRename := errors.New("rename failed")
	rename = func(string, string) error { return errRename }
	t.Cleanup(func() { rename = os.Rename })

	f := New(t.TempDir())
	path, err := f.Write(7, []byte{0x01})
	assert.ErrorIs(t, err, errRename)
	assert.Empty(t, path)

	entries, err := os.ReadDir(f.cartFolder(7))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParseTimestampFromFilename(t *testing.T) {
	assert.Equal(t, int64(1690000000), parseTimestampFromFilename("saves/0/1690000000.state"))
	assert.Equal(t, int64(0), parseTimestampFromFilename("saves/0/quick.state"))
}
