package pipeline_test

import (
	"context"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/caxe-dev/cx/internal/adapters/fs"
	"github.com/caxe-dev/cx/internal/adapters/reporter"
	"github.com/caxe-dev/cx/internal/core/domain"
	"github.com/caxe-dev/cx/internal/core/ports"
	"github.com/caxe-dev/cx/internal/core/ports/mocks"
	"github.com/caxe-dev/cx/internal/engine/pipeline"
)

var gcc = &domain.Descriptor{Type: domain.GCC, Path: "/usr/bin/g++"}

func sources(paths ...string) []fs.SourceFile {
	out := make([]fs.SourceFile, len(paths))
	for i, p := range paths {
		out[i] = fs.SourceFile{Path: p, CPP: true}
	}
	return out
}

func hasArg(cmd ports.Command, arg string) bool {
	for _, a := range cmd.Args {
		if a == arg {
			return true
		}
	}
	return false
}

func TestBuild_CompilesEveryUnitThenLinksOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	p := pipeline.NewPipeline(executor, reporter.NewNoop())

	var compiles, links atomic.Int32
	executor.EXPECT().Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd ports.Command) (ports.ExecResult, error) {
			if hasArg(cmd, "-c") {
				compiles.Add(1)
			} else {
				links.Add(1)
			}
			return ports.ExecResult{ExitCode: 0}, nil
		}).Times(4)

	report, err := p.Build(context.Background(), gcc,
		sources("src/a.cpp", "src/b.cpp", "src/c.cpp"),
		"build", filepath.Join("build", "app"),
		domain.BuildRequest{Standard: "c++20"})

	require.NoError(t, err)
	assert.True(t, report.AllOK())
	assert.Equal(t, int32(3), compiles.Load())
	assert.Equal(t, int32(1), links.Load())
}

func TestBuild_FailedUnitSkipsLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	p := pipeline.NewPipeline(executor, reporter.NewNoop())

	executor.EXPECT().Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd ports.Command) (ports.ExecResult, error) {
			require.True(t, hasArg(cmd, "-c"), "link must not run after a compile failure")
			if hasArg(cmd, "src/bad.cpp") {
				return ports.ExecResult{ExitCode: 1, Stderr: "bad.cpp:1: error"}, nil
			}
			return ports.ExecResult{ExitCode: 0}, nil
		}).Times(2)

	report, err := p.Build(context.Background(), gcc,
		sources("src/bad.cpp", "src/ok.cpp"),
		"build", "build/app",
		domain.BuildRequest{Standard: "c++20"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCompileFailed)
	assert.Equal(t, 1, report.Failed())
}

func TestBuild_ResultsKeepDiscoveryOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	p := pipeline.NewPipeline(executor, reporter.NewNoop())

	executor.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(ports.ExecResult{ExitCode: 0}, nil).AnyTimes()

	report, err := p.Build(context.Background(), gcc,
		sources("src/a.cpp", "src/b.cpp", "src/c.cpp"),
		"build", "build/app",
		domain.BuildRequest{Standard: "c++20"})

	require.NoError(t, err)
	require.Len(t, report.Results, 3)
	assert.Equal(t, "src/a.cpp", report.Results[0].Unit.Source)
	assert.Equal(t, "src/b.cpp", report.Results[1].Unit.Source)
	assert.Equal(t, "src/c.cpp", report.Results[2].Unit.Source)
}

func TestBuild_LinkFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	p := pipeline.NewPipeline(executor, reporter.NewNoop())

	executor.EXPECT().Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd ports.Command) (ports.ExecResult, error) {
			if hasArg(cmd, "-c") {
				return ports.ExecResult{ExitCode: 0}, nil
			}
			return ports.ExecResult{ExitCode: 1, Stderr: "undefined reference to `foo'"}, nil
		}).Times(2)

	_, err := p.Build(context.Background(), gcc,
		sources("src/a.cpp"),
		"build", "build/app",
		domain.BuildRequest{Standard: "c++20"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLinkFailed)
}

func TestBuild_NoSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := pipeline.NewPipeline(mocks.NewMockExecutor(ctrl), reporter.NewNoop())

	_, err := p.Build(context.Background(), gcc, nil, "build", "build/app",
		domain.BuildRequest{Standard: "c++20"})

	assert.ErrorIs(t, err, domain.ErrNoSources)
}

func TestBuild_ObjectNamesDeriveFromStems(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	p := pipeline.NewPipeline(executor, reporter.NewNoop())

	var seen []string
	executor.EXPECT().Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd ports.Command) (ports.ExecResult, error) {
			for _, a := range cmd.Args {
				if strings.HasSuffix(a, ".o") {
					seen = append(seen, a)
				}
			}
			return ports.ExecResult{ExitCode: 0}, nil
		}).AnyTimes()

	_, err := p.Build(context.Background(), gcc,
		sources("src/main.cpp"),
		"build", "build/app",
		domain.BuildRequest{Standard: "c++20"})

	require.NoError(t, err)
	assert.Contains(t, seen, filepath.Join("build", "main.o"))
}
