package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchpath/internal/searchpath"
)

func TestInspect(t *testing.T) {
	root := t.TempDir()
	bin := filepath.Join(root, "bin")
	file := filepath.Join(root, "file")
	link := filepath.Join(root, "link")
	missing := filepath.Join(root, "missing")
	require.NoError(t, os.Mkdir(bin, 0o755))
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	require.NoError(t, os.Symlink(bin, link))

	entries := Inspect(searchpath.FromPaths(bin, file, missing, bin, link, "rel"))
	require.Len(t, entries, 6)

	assert.True(t, entries[0].Exists)
	assert.True(t, entries[0].IsDir)
	assert.Empty(t, entries[0].Diagnostics)
	assert.Equal(t, IconOK, Icon(entries[0]))

	assert.True(t, entries[1].Exists)
	assert.False(t, entries[1].IsDir)
	assert.Contains(t, entries[1].Diagnostics, "is not a directory")
	assert.Equal(t, IconMissing, Icon(entries[1]))

	assert.False(t, entries[2].Exists)
	assert.Contains(t, entries[2].Diagnostics, "does not exist")

	assert.True(t, entries[3].IsDuplicate)
	assert.Equal(t, 0, entries[3].DuplicateOf)
	assert.Equal(t, IconDuplicate, Icon(entries[3]))
	assert.Equal(t, -1, entries[0].DuplicateOf)

	assert.True(t, entries[4].IsSymlink)
	assert.Equal(t, bin, entries[4].SymlinkTarget)
	assert.Equal(t, IconSymlink, Icon(entries[4]))

	assert.True(t, entries[5].IsRelative)

	for i, e := range entries {
		assert.Equal(t, i, e.Index)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]DirEntry{
		{Exists: true},
		{Exists: false},
		{Exists: true, IsDuplicate: true, IsSymlink: true},
	})
	assert.Equal(t, Summary{Total: 3, Missing: 1, Duplicates: 1, Symlinks: 1}, s)
}

func TestIconRelative(t *testing.T) {
	assert.Equal(t, IconRelative, Icon(DirEntry{Exists: true, IsDir: true, IsRelative: true}))
}
