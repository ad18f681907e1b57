package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewLoadSortsDirsFirstThenByName(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "b.txt"), []byte("hi"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(tmp, "a"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(tmp, "c"), 0755))

	p := NewPreviewLoader()
	p.Load(tmp)

	entries := p.Entries()
	require.Len(t, entries, 3)

	// The ordering is a contract: directories first, then files, each
	// group lexicographic by name.
	assert.Equal(t, "a", entries[0].Name)
	assert.True(t, entries[0].IsDir)
	assert.Equal(t, "c", entries[1].Name)
	assert.True(t, entries[1].IsDir)
	assert.Equal(t, "b.txt", entries[2].Name)
	assert.False(t, entries[2].IsDir)

	assert.Equal(t, int64(2), entries[2].Size)
}

func TestPreviewLoadDetectsFileKind(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "note.txt"), []byte("plain text here"), 0644))

	p := NewPreviewLoader()
	p.Load(tmp)

	require.Len(t, p.Entries(), 1)
	assert.Equal(t, "TXT", p.Entries()[0].Kind)
}

func TestPreviewLoadUnreadableDirYieldsEmptyListing(t *testing.T) {
	p := NewPreviewLoader()
	p.Load(filepath.Join(t.TempDir(), "missing"))

	assert.Empty(t, p.Entries())
	assert.Equal(t, 0, p.Offset())
}

func TestPreviewScrollClampIsLenMinusOne(t *testing.T) {
	tmp := t.TempDir()
	for _, name := range []string{"one", "two", "three"} {
		require.NoError(t, os.Mkdir(filepath.Join(tmp, name), 0755))
	}

	p := NewPreviewLoader()
	p.Load(tmp)

	p.ScrollUp()
	assert.Equal(t, 0, p.Offset())

	for i := 0; i < 10; i++ {
		p.ScrollDown()
	}
	assert.Equal(t, len(p.Entries())-1, p.Offset())

	p.ScrollUp()
	assert.Equal(t, 1, p.Offset())
}

func TestPreviewReloadResetsScroll(t *testing.T) {
	tmp := t.TempDir()
	for _, name := range []string{"one", "two", "three"} {
		require.NoError(t, os.Mkdir(filepath.Join(tmp, name), 0755))
	}

	p := NewPreviewLoader()
	p.Load(tmp)
	p.ScrollDown()
	require.Equal(t, 1, p.Offset())

	p.Load(tmp)
	assert.Equal(t, 0, p.Offset(), "a reload is total, scroll included")
}
