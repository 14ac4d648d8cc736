package app

import (
	"context"
	"os"

	"go.trai.ch/zerr"

	"github.com/caxe-dev/cx/internal/adapters/fs"
	"github.com/caxe-dev/cx/internal/adapters/toolchain"
	"github.com/caxe-dev/cx/internal/core/domain"
	"github.com/caxe-dev/cx/internal/core/ports"
)

// Fmt rewrites all project sources in place with clang-format.
func (a *App) Fmt(ctx context.Context) error {
	manifest, err := a.manifests.Load()
	if err != nil {
		return err
	}

	var files []string
	for _, dir := range []string{domain.SourceDir, manifest.TestDir()} {
		found, err := fs.DiscoverSources(dir)
		if err != nil {
			return err
		}
		for _, f := range found {
			files = append(files, f.Path)
		}
	}
	if len(files) == 0 {
		return domain.ErrNoSources
	}

	code, err := a.executor.RunStreaming(ctx, ports.Command{
		Path: "clang-format",
		Args: append([]string{"-i"}, files...),
	})
	if err != nil {
		return zerr.Wrap(err, "clang-format not found on PATH")
	}
	if code != 0 {
		return zerr.With(zerr.New("clang-format failed"), "exit_code", code)
	}
	a.log.Info("formatted " + domain.SourceDir)
	return nil
}

// Check runs a syntax-only pass over every source file without producing
// artifacts. Much faster than a build when iterating on headers.
func (a *App) Check(ctx context.Context) error {
	manifest, err := a.manifests.Load()
	if err != nil {
		return err
	}

	flags, err := a.fetcher.FetchAll(ctx, manifest)
	if err != nil {
		return err
	}
	desc, err := a.resolver.Resolve(ctx, manifest.CompilerPreference())
	if err != nil {
		return err
	}

	sources, err := fs.DiscoverSources(domain.SourceDir)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return zerr.With(domain.ErrNoSources, "dir", domain.SourceDir)
	}

	req := buildRequest(manifest, flags, false)
	failed := 0
	for _, src := range sources {
		task := a.reporter.Begin("check " + src.Path)
		args := toolchain.CheckArgs(desc, src.Path, req)
		res, err := a.executor.Run(ctx, ports.Command{Path: desc.Path, Args: args})
		if err != nil {
			task.Done(err)
			return zerr.Wrap(err, "compiler could not start")
		}
		if res.ExitCode != 0 {
			failed++
			task.Stderr().Write([]byte(res.Stderr))
			task.Done(zerr.With(domain.ErrCompileFailed, "unit", src.Path))
			continue
		}
		task.Done(nil)
	}
	if failed > 0 {
		err := zerr.With(domain.ErrCompileFailed, "failed", failed)
		return zerr.With(err, "total", len(sources))
	}
	return nil
}

// Doc generates API documentation by delegating to doxygen, which owns the
// C/C++ documentation space. A missing Doxyfile is generated first.
func (a *App) Doc(ctx context.Context) error {
	if _, err := os.Stat("Doxyfile"); err != nil {
		a.log.Info("no Doxyfile found, generating a default one")
		code, genErr := a.executor.RunStreaming(ctx, ports.Command{Path: "doxygen", Args: []string{"-g"}})
		if genErr != nil {
			return zerr.Wrap(genErr, "doxygen not found on PATH")
		}
		if code != 0 {
			return zerr.With(zerr.New("doxygen -g failed"), "exit_code", code)
		}
	}
	code, err := a.executor.RunStreaming(ctx, ports.Command{Path: "doxygen", Args: []string{"Doxyfile"}})
	if err != nil {
		return zerr.Wrap(err, "doxygen not found on PATH")
	}
	if code != 0 {
		return zerr.With(zerr.New("doxygen failed"), "exit_code", code)
	}
	return nil
}
