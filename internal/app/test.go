package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.trai.ch/zerr"

	"github.com/caxe-dev/cx/internal/adapters/fs"
	"github.com/caxe-dev/cx/internal/core/domain"
	"github.com/caxe-dev/cx/internal/ui/style"
)

// Test compiles every file in the test directory in parallel and runs the
// resulting binaries sequentially. A missing manifest is tolerated: tests of
// a bare source tree still run with default settings.
func (a *App) Test(ctx context.Context) (*domain.TestSummary, error) {
	manifest, err := a.manifests.Load()
	if err != nil {
		if errors.Is(err, domain.ErrManifestNotFound) {
			a.log.Warn("no " + domain.ManifestFileName + ", testing with defaults")
			manifest = &domain.Manifest{}
		} else {
			return nil, err
		}
	}

	flags, err := a.fetcher.FetchAll(ctx, manifest)
	if err != nil {
		return nil, err
	}

	desc, err := a.resolver.Resolve(ctx, manifest.CompilerPreference())
	if err != nil {
		return nil, err
	}

	tests, err := fs.DiscoverSources(manifest.TestDir())
	if err != nil {
		return nil, err
	}
	if len(tests) == 0 {
		return nil, zerr.With(domain.ErrNoSources, "dir", manifest.TestDir())
	}

	if err := os.MkdirAll(domain.TestBuildDir, 0o755); err != nil {
		return nil, zerr.Wrap(err, "cannot create test build directory")
	}

	req := buildRequest(manifest, flags, false)
	summary, runErr := a.tests.Run(ctx, desc, tests, domain.TestBuildDir, req)
	if summary != nil {
		a.printSummary(summary)
	}
	return summary, runErr
}

func (a *App) printSummary(s *domain.TestSummary) {
	for _, r := range s.Results {
		line := fmt.Sprintf("%-12s %s", r.Outcome, r.Name)
		if r.Outcome == domain.TestPassed {
			fmt.Println(style.Success(line))
		} else {
			fmt.Println(style.Fail(line))
		}
	}
	fmt.Printf("\n%d/%d tests passed\n", s.Passed(), s.Total())
}
