package app

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/zerr"

	"github.com/caxe-dev/cx/internal/adapters/fs"
	"github.com/caxe-dev/cx/internal/core/domain"
	"github.com/caxe-dev/cx/internal/engine/fetch"
)

// BuildOptions modify a build invocation.
type BuildOptions struct {
	// Release enables optimized codegen and drops debug info.
	Release bool
}

// Build runs the full build: pre-build script, dependency fetch, toolchain
// resolution, parallel compile, link, post-build script. It returns the path
// of the produced binary.
func (a *App) Build(ctx context.Context, opts BuildOptions) (string, error) {
	manifest, err := a.manifests.Load()
	if err != nil {
		return "", err
	}
	return a.build(ctx, manifest, opts)
}

func (a *App) build(ctx context.Context, manifest *domain.Manifest, opts BuildOptions) (string, error) {
	if err := a.runScript(ctx, "pre_build", scriptOf(manifest, true)); err != nil {
		return "", err
	}

	flags, err := a.fetcher.FetchAll(ctx, manifest)
	if err != nil {
		return "", err
	}

	desc, err := a.resolver.Resolve(ctx, manifest.CompilerPreference())
	if err != nil {
		return "", err
	}
	a.log.Info("using " + string(desc.Type) + " (" + desc.Path + ")")

	sources, err := fs.DiscoverSources(domain.SourceDir)
	if err != nil {
		return "", err
	}
	if len(sources) == 0 {
		return "", zerr.With(domain.ErrNoSources, "dir", domain.SourceDir)
	}

	if err := os.MkdirAll(domain.BuildDir, 0o755); err != nil {
		return "", zerr.Wrap(err, "cannot create build directory")
	}

	binary := binaryPath(manifest.Package.Name)
	req := buildRequest(manifest, flags, opts.Release)

	if _, err := a.pipeline.Build(ctx, desc, sources, domain.BuildDir, binary, req); err != nil {
		return "", err
	}

	if err := a.runScript(ctx, "post_build", scriptOf(manifest, false)); err != nil {
		return "", err
	}
	return binary, nil
}

// runScript dispatches a manifest hook through the platform shell in the
// project root. A nonzero exit aborts the build.
func (a *App) runScript(ctx context.Context, name, script string) error {
	if script == "" {
		return nil
	}
	a.log.Info("running " + name + " script")
	code, err := a.executor.RunShell(ctx, script, ".")
	if err != nil {
		return zerr.Wrap(err, name+" script could not start")
	}
	if code != 0 {
		return zerr.With(zerr.New(name+" script failed"), "exit_code", code)
	}
	return nil
}

func scriptOf(m *domain.Manifest, pre bool) string {
	if m.Scripts == nil {
		return ""
	}
	if pre {
		return m.Scripts.PreBuild
	}
	return m.Scripts.PostBuild
}

func buildRequest(m *domain.Manifest, flags fetch.Flags, release bool) domain.BuildRequest {
	return domain.BuildRequest{
		Standard:      m.Dialect(),
		IncludeDirs:   flags.Includes,
		CFlags:        m.CFlags(),
		LinkArtifacts: flags.LinkArtifacts,
		Libs:          m.Libs(),
		Release:       release,
	}
}

func binaryPath(name string) string {
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(domain.BuildDir, name)
}
