package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caxe-dev/cx/internal/adapters/fs"
)

func write(t *testing.T, root string, rel string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("int x;\n"), 0o644))
}

func TestDiscoverSources(t *testing.T) {
	root := t.TempDir()
	write(t, root, "main.cpp")
	write(t, root, "util.c")
	write(t, root, "sub/helper.cxx")
	write(t, root, "sub/notes.md")
	write(t, root, "README")

	found, err := fs.DiscoverSources(root)
	require.NoError(t, err)
	require.Len(t, found, 3)

	assert.Equal(t, filepath.Join(root, "main.cpp"), found[0].Path)
	assert.Equal(t, filepath.Join(root, "sub/helper.cxx"), found[1].Path)
	assert.Equal(t, filepath.Join(root, "util.c"), found[2].Path)

	assert.True(t, found[0].CPP)
	assert.True(t, found[1].CPP)
	assert.False(t, found[2].CPP)
}

func TestDiscoverSources_DeterministicOrder(t *testing.T) {
	root := t.TempDir()
	write(t, root, "b.cpp")
	write(t, root, "a.cpp")
	write(t, root, "c.cpp")

	first, err := fs.DiscoverSources(root)
	require.NoError(t, err)
	second, err := fs.DiscoverSources(root)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, filepath.Join(root, "a.cpp"), first[0].Path)
}

func TestDiscoverSources_MissingRoot(t *testing.T) {
	found, err := fs.DiscoverSources(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestStem(t *testing.T) {
	assert.Equal(t, "main", fs.Stem("src/main.cpp"))
	assert.Equal(t, "test_math", fs.Stem(filepath.Join("tests", "test_math.cc")))
	assert.Equal(t, "a", fs.Stem("a.c"))
}
