package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caxe-dev/cx/cmd/cx/commands"
	"github.com/caxe-dev/cx/internal/app"
	"github.com/caxe-dev/cx/internal/core/domain"
)

// mockApp records the last invocation per operation; unset hooks succeed.
type mockApp struct {
	buildFunc func(ctx context.Context, opts app.BuildOptions) (string, error)
	runFunc   func(ctx context.Context, opts app.BuildOptions, args []string) error
	addFunc   func(ctx context.Context, ident string, opts app.AddOptions) (string, error)
	removed   []string
	cleaned   bool
}

func (m *mockApp) Build(ctx context.Context, opts app.BuildOptions) (string, error) {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, opts)
	}
	return "build/demo", nil
}

func (m *mockApp) Run(ctx context.Context, opts app.BuildOptions, args []string) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts, args)
	}
	return nil
}

func (m *mockApp) Test(context.Context) (*domain.TestSummary, error) { return &domain.TestSummary{}, nil }

func (m *mockApp) Add(ctx context.Context, ident string, opts app.AddOptions) (string, error) {
	if m.addFunc != nil {
		return m.addFunc(ctx, ident, opts)
	}
	return ident, nil
}

func (m *mockApp) Remove(_ context.Context, name string) error {
	m.removed = append(m.removed, name)
	return nil
}

func (m *mockApp) Search(context.Context, string) []domain.RegistryEntry { return nil }

func (m *mockApp) Clean() error { m.cleaned = true; return nil }

func (m *mockApp) CachePath() string            { return "/tmp/cache" }
func (m *mockApp) CacheList() ([]string, error) { return []string{"fmt"}, nil }
func (m *mockApp) CacheClean(string) error      { return nil }

func (m *mockApp) ToolchainList(context.Context) ([]domain.Candidate, error) { return nil, nil }
func (m *mockApp) ToolchainSelect(context.Context, string) (domain.Candidate, error) {
	return domain.Candidate{Type: domain.GCC, Path: "/usr/bin/g++"}, nil
}
func (m *mockApp) ToolchainClear() error { return nil }

func (m *mockApp) Fmt(context.Context) error                        { return nil }
func (m *mockApp) Check(context.Context) error                      { return nil }
func (m *mockApp) Doc(context.Context) error                        { return nil }
func (m *mockApp) Info() error                                      { return nil }
func (m *mockApp) Watch(context.Context, app.BuildOptions) error    { return nil }

func execute(t *testing.T, mock *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestBuild_ReleaseFlag(t *testing.T) {
	var captured app.BuildOptions
	mock := &mockApp{buildFunc: func(_ context.Context, opts app.BuildOptions) (string, error) {
		captured = opts
		return "build/demo", nil
	}}

	out, err := execute(t, mock, "build", "--release")
	require.NoError(t, err)
	assert.True(t, captured.Release)
	assert.Contains(t, out, "build/demo")
}

func TestRun_PassesProgramArgs(t *testing.T) {
	var captured []string
	mock := &mockApp{runFunc: func(_ context.Context, _ app.BuildOptions, args []string) error {
		captured = args
		return nil
	}}

	_, err := execute(t, mock, "run", "--", "--port", "8080")
	require.NoError(t, err)
	assert.Equal(t, []string{"--port", "8080"}, captured)
}

func TestAdd_RefFlagsMapToRef(t *testing.T) {
	cases := []struct {
		flag string
	}{
		{"--tag"},
		{"--branch"},
		{"--rev"},
	}
	for _, tc := range cases {
		t.Run(tc.flag, func(t *testing.T) {
			var captured app.AddOptions
			mock := &mockApp{addFunc: func(_ context.Context, _ string, opts app.AddOptions) (string, error) {
				captured = opts
				return "raylib", nil
			}}

			_, err := execute(t, mock, "add", "raylib", tc.flag, "v5.0")
			require.NoError(t, err)
			assert.Equal(t, "v5.0", captured.Ref)
		})
	}
}

func TestRemove(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "remove", "fmt")
	require.NoError(t, err)
	assert.Equal(t, []string{"fmt"}, mock.removed)
}

func TestClean(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "clean")
	require.NoError(t, err)
	assert.True(t, mock.cleaned)
}

func TestCachePath(t *testing.T) {
	out, err := execute(t, &mockApp{}, "cache", "path")
	require.NoError(t, err)
	assert.Contains(t, out, "/tmp/cache")
}

func TestBuild_FailurePropagates(t *testing.T) {
	mock := &mockApp{buildFunc: func(context.Context, app.BuildOptions) (string, error) {
		return "", errors.New("simulated failure")
	}}

	_, err := execute(t, mock, "build")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated failure")
}
