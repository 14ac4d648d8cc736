package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caxe-dev/cx/internal/adapters/git"
	"github.com/caxe-dev/cx/internal/core/domain"
)

// fixtureRepo creates a local repository with two commits and a tag v1.0.0
// pointing at the first one. Returns the repo path and both commit hashes.
func fixtureRepo(t *testing.T) (path, first, second string) {
	t.Helper()
	path = t.TempDir()

	repo, err := gogit.PlainInit(path, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	sig := &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()}

	require.NoError(t, os.WriteFile(filepath.Join(path, "README"), []byte("one\n"), 0o644))
	_, err = wt.Add("README")
	require.NoError(t, err)
	h1, err := wt.Commit("first", &gogit.CommitOptions{Author: sig})
	require.NoError(t, err)
	_, err = repo.CreateTag("v1.0.0", h1, nil)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(path, "README"), []byte("two\n"), 0o644))
	_, err = wt.Add("README")
	require.NoError(t, err)
	h2, err := wt.Commit("second", &gogit.CommitOptions{Author: sig})
	require.NoError(t, err)

	return path, h1.String(), h2.String()
}

func TestClone_Head(t *testing.T) {
	src, _, second := fixtureRepo(t)
	dest := filepath.Join(t.TempDir(), "dep")

	rev, err := git.NewCloner().Clone(context.Background(), src, "", dest)
	require.NoError(t, err)
	assert.Equal(t, second, rev)
	assert.FileExists(t, filepath.Join(dest, "README"))
}

func TestClone_Tag(t *testing.T) {
	src, first, _ := fixtureRepo(t)
	dest := filepath.Join(t.TempDir(), "dep")

	rev, err := git.NewCloner().Clone(context.Background(), src, "v1.0.0", dest)
	require.NoError(t, err)
	assert.Equal(t, first, rev)

	data, err := os.ReadFile(filepath.Join(dest, "README"))
	require.NoError(t, err)
	assert.Equal(t, "one\n", string(data))
}

func TestClone_CommitHash(t *testing.T) {
	src, first, _ := fixtureRepo(t)
	dest := filepath.Join(t.TempDir(), "dep")

	rev, err := git.NewCloner().Clone(context.Background(), src, first, dest)
	require.NoError(t, err)
	assert.Equal(t, first, rev)
}

func TestClone_BadURLLeavesNoDirectory(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "dep")

	_, err := git.NewCloner().Clone(context.Background(), filepath.Join(t.TempDir(), "nope"), "", dest)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCloneFailed)
	assert.NoDirExists(t, dest)
}

func TestClone_BadRefLeavesNoDirectory(t *testing.T) {
	src, _, _ := fixtureRepo(t)
	dest := filepath.Join(t.TempDir(), "dep")

	_, err := git.NewCloner().Clone(context.Background(), src, "v9.9.9", dest)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCloneFailed)
	assert.NoDirExists(t, dest)
}
