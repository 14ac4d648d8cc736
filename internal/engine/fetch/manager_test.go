package fetch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/caxe-dev/cx/internal/adapters/lockfile"
	"github.com/caxe-dev/cx/internal/adapters/reporter"
	"github.com/caxe-dev/cx/internal/core/domain"
	"github.com/caxe-dev/cx/internal/core/ports/mocks"
	"github.com/caxe-dev/cx/internal/engine/fetch"
)

type fakeSettings struct {
	cacheDir string
}

func (f *fakeSettings) CacheDir() string { return f.cacheDir }
func (f *fakeSettings) Progress() string { return "plain" }

func (f *fakeSettings) SelectedToolchain() (domain.CompilerType, string, bool) {
	return "", "", false
}
func (f *fakeSettings) SetSelectedToolchain(domain.CompilerType, string) error { return nil }
func (f *fakeSettings) ClearSelectedToolchain() error                          { return nil }

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

type env struct {
	manager  *fetch.Manager
	cloner   *mocks.MockCloner
	executor *mocks.MockExecutor
	locks    *lockfile.Store
	cacheDir string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctrl := gomock.NewController(t)
	cloner := mocks.NewMockCloner(ctrl)
	executor := mocks.NewMockExecutor(ctrl)
	cacheDir := t.TempDir()
	locks := lockfile.NewStore(t.TempDir())

	return &env{
		manager: fetch.NewManager(
			cloner, executor, locks,
			&fakeSettings{cacheDir: cacheDir},
			reporter.NewNoop(), nopLogger{},
		),
		cloner:   cloner,
		executor: executor,
		locks:    locks,
		cacheDir: cacheDir,
	}
}

// cloneStub makes the mock cloner behave like a real one: it creates the
// destination directory and returns a fixed revision.
func (e *env) cloneStub(revision string) func(context.Context, string, string, string) (string, error) {
	return func(_ context.Context, _, _, dest string) (string, error) {
		if err := os.MkdirAll(dest, 0o755); err != nil {
			return "", err
		}
		return revision, nil
	}
}

func manifestWith(t *testing.T, deps map[string]domain.DependencySpec, order ...string) *domain.Manifest {
	t.Helper()
	m := &domain.Manifest{Package: domain.Package{Name: "demo"}}
	for _, name := range order {
		require.NoError(t, m.Dependencies.Add(name, deps[name]))
	}
	return m
}

func TestFetchAll_ClonesAndLocks(t *testing.T) {
	e := newEnv(t)
	m := manifestWith(t, map[string]domain.DependencySpec{
		"fmt": domain.Simple{URL: "https://github.com/fmtlib/fmt.git"},
	}, "fmt")

	e.cloner.EXPECT().
		Clone(gomock.Any(), "https://github.com/fmtlib/fmt.git", "", filepath.Join(e.cacheDir, "fmt")).
		DoAndReturn(e.cloneStub("abc123"))

	flags, err := e.manager.FetchAll(context.Background(), m)
	require.NoError(t, err)
	assert.Contains(t, flags.Includes, filepath.Join(e.cacheDir, "fmt"))

	lock, err := e.locks.Load()
	require.NoError(t, err)
	entry, ok := lock.Get("fmt")
	require.True(t, ok)
	assert.Equal(t, "abc123", entry.Revision)
	assert.Equal(t, "https://github.com/fmtlib/fmt.git", entry.URL)
}

func TestFetchAll_SecondCallDoesNoNetworkWork(t *testing.T) {
	e := newEnv(t)
	m := manifestWith(t, map[string]domain.DependencySpec{
		"fmt": domain.Simple{URL: "https://example.com/fmt.git"},
	}, "fmt")

	e.cloner.EXPECT().Clone(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(e.cloneStub("abc123")).Times(1)

	_, err := e.manager.FetchAll(context.Background(), m)
	require.NoError(t, err)
	_, err = e.manager.FetchAll(context.Background(), m)
	require.NoError(t, err)
}

func TestFetchAll_IncludeCandidates(t *testing.T) {
	e := newEnv(t)
	m := manifestWith(t, map[string]domain.DependencySpec{
		"raylib": domain.Simple{URL: "https://example.com/raylib.git"},
	}, "raylib")

	// The clone stays bare: the conventional candidates must still appear,
	// whether or not the repository ships include/ or src/.
	root := filepath.Join(e.cacheDir, "raylib")
	e.cloner.EXPECT().Clone(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(e.cloneStub("rev"))

	flags, err := e.manager.FetchAll(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, []string{
		root,
		filepath.Join(root, "include"),
		filepath.Join(root, "src"),
	}, flags.Includes)
}

func TestFetchAll_FailedCloneSkipsDependency(t *testing.T) {
	e := newEnv(t)
	m := manifestWith(t, map[string]domain.DependencySpec{
		"broken": domain.Simple{URL: "https://example.com/broken.git"},
		"fmt":    domain.Simple{URL: "https://example.com/fmt.git"},
	}, "broken", "fmt")

	e.cloner.EXPECT().Clone(gomock.Any(), "https://example.com/broken.git", gomock.Any(), gomock.Any()).
		Return("", domain.ErrCloneFailed)
	e.cloner.EXPECT().Clone(gomock.Any(), "https://example.com/fmt.git", gomock.Any(), gomock.Any()).
		DoAndReturn(e.cloneStub("rev2"))

	flags, err := e.manager.FetchAll(context.Background(), m)
	require.NoError(t, err)

	assert.NotContains(t, flags.Includes, filepath.Join(e.cacheDir, "broken"))
	assert.Contains(t, flags.Includes, filepath.Join(e.cacheDir, "fmt"))

	lock, err := e.locks.Load()
	require.NoError(t, err)
	_, ok := lock.Get("broken")
	assert.False(t, ok)
	_, ok = lock.Get("fmt")
	assert.True(t, ok)
}

func TestFetchAll_BuildScriptOnlyWhenArtifactMissing(t *testing.T) {
	e := newEnv(t)
	spec := domain.Complex{
		URL:            "https://example.com/raylib.git",
		BuildScript:    "make",
		OutputArtifact: "libraylib.a",
	}
	m := manifestWith(t, map[string]domain.DependencySpec{"raylib": spec}, "raylib")
	artifact := filepath.Join(e.cacheDir, "raylib", "libraylib.a")

	e.cloner.EXPECT().Clone(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(e.cloneStub("rev"))
	// The script runs once and produces the artifact; later calls see it.
	e.executor.EXPECT().RunShell(gomock.Any(), "make", filepath.Join(e.cacheDir, "raylib")).
		DoAndReturn(func(_ context.Context, _, _ string) (int, error) {
			return 0, os.WriteFile(artifact, []byte("lib"), 0o644)
		}).Times(1)

	flags, err := e.manager.FetchAll(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, []string{artifact}, flags.LinkArtifacts)

	flags, err = e.manager.FetchAll(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, []string{artifact}, flags.LinkArtifacts)
}

func TestFetchAll_FailedBuildScriptKeepsCloneUsable(t *testing.T) {
	e := newEnv(t)
	spec := domain.Complex{
		URL:            "https://example.com/raylib.git",
		BuildScript:    "make",
		OutputArtifact: "libraylib.a",
	}
	m := manifestWith(t, map[string]domain.DependencySpec{"raylib": spec}, "raylib")
	root := filepath.Join(e.cacheDir, "raylib")

	// One clone, ever: the script keeps failing, but the clone is complete
	// and must not be fetched again.
	e.cloner.EXPECT().Clone(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(e.cloneStub("rev")).Times(1)
	// The artifact never appears, so the script is retried on each fetch.
	e.executor.EXPECT().RunShell(gomock.Any(), "make", root).
		Return(1, nil).Times(2)

	flags, err := e.manager.FetchAll(context.Background(), m)
	require.NoError(t, err)

	// Headers stay usable, only the link artifact is withheld.
	assert.Equal(t, []string{
		root,
		filepath.Join(root, "include"),
		filepath.Join(root, "src"),
	}, flags.Includes)
	assert.Empty(t, flags.LinkArtifacts)

	// The clone succeeded, so the revision is pinned despite the script.
	lock, err := e.locks.Load()
	require.NoError(t, err)
	entry, ok := lock.Get("raylib")
	require.True(t, ok)
	assert.Equal(t, "rev", entry.Revision)

	_, err = e.manager.FetchAll(context.Background(), m)
	require.NoError(t, err)
}

func TestFetchAll_InterruptedCloneIsRefetched(t *testing.T) {
	e := newEnv(t)
	m := manifestWith(t, map[string]domain.DependencySpec{
		"fmt": domain.Simple{URL: "https://example.com/fmt.git"},
	}, "fmt")

	// Simulate a directory left behind by a killed process: present, but
	// without the completion marker.
	stale := filepath.Join(e.cacheDir, "fmt")
	require.NoError(t, os.MkdirAll(stale, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(stale, "half.cpp"), []byte("x"), 0o644))

	e.cloner.EXPECT().Clone(gomock.Any(), gomock.Any(), gomock.Any(), stale).
		DoAndReturn(func(_ context.Context, _, _, dest string) (string, error) {
			// The stale contents must be gone before recloning.
			_, err := os.Stat(filepath.Join(dest, "half.cpp"))
			assert.True(t, os.IsNotExist(err))
			return e.cloneStub("fresh")(context.Background(), "", "", dest)
		})

	_, err := e.manager.FetchAll(context.Background(), m)
	require.NoError(t, err)
}

func TestExpandIdentifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRegistry(ctrl)
	registry.EXPECT().Resolve(gomock.Any(), "raylib").
		Return("https://github.com/raysan5/raylib.git", true)
	registry.EXPECT().Resolve(gomock.Any(), "no-such-lib").Return("", false)

	ctx := context.Background()

	url, err := fetch.ExpandIdentifier(ctx, registry, "https://example.com/x.git")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/x.git", url)

	url, err = fetch.ExpandIdentifier(ctx, registry, "fmtlib/fmt")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/fmtlib/fmt.git", url)

	url, err = fetch.ExpandIdentifier(ctx, registry, "raylib")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/raysan5/raylib.git", url)

	_, err = fetch.ExpandIdentifier(ctx, registry, "no-such-lib")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDependencyNotFound)
}

func TestDeriveName(t *testing.T) {
	assert.Equal(t, "fmt", fetch.DeriveName("https://github.com/fmtlib/fmt.git"))
	assert.Equal(t, "raylib", fetch.DeriveName("https://example.com/raylib"))
	assert.Equal(t, "json", fetch.DeriveName("git@github.com:nlohmann/json.git"))
}
