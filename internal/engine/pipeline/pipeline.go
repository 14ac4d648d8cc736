// Package pipeline compiles a project's translation units in parallel and
// links the surviving objects into the final executable.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/caxe-dev/cx/internal/adapters/fs"
	"github.com/caxe-dev/cx/internal/adapters/toolchain"
	"github.com/caxe-dev/cx/internal/core/domain"
	"github.com/caxe-dev/cx/internal/core/ports"
)

// Pipeline runs the two-phase build: one compile per unit, bounded by the
// host CPU count, then a single link once every unit succeeded.
type Pipeline struct {
	executor ports.Executor
	reporter ports.Reporter
}

// NewPipeline creates a Pipeline.
func NewPipeline(executor ports.Executor, reporter ports.Reporter) *Pipeline {
	return &Pipeline{executor: executor, reporter: reporter}
}

// Build compiles sources into buildDir and links them as binary. The report
// carries every unit result; on compile failures the link is skipped and the
// error wraps ErrCompileFailed.
func (p *Pipeline) Build(
	ctx context.Context,
	desc *domain.Descriptor,
	sources []fs.SourceFile,
	buildDir, binary string,
	req domain.BuildRequest,
) (*domain.CompletionReport, error) {
	if len(sources) == 0 {
		return nil, domain.ErrNoSources
	}

	units := makeUnits(sources, buildDir, desc)
	report := &domain.CompletionReport{Results: make([]domain.BuildResult, len(units))}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, unit := range units {
		g.Go(func() error {
			result, err := p.compile(gctx, desc, unit, req)
			if err != nil {
				return err
			}
			mu.Lock()
			report.Results[i] = result
			mu.Unlock()
			return nil
		})
	}
	// Launch failures abort the run; ordinary compile errors land in the
	// report instead.
	if err := g.Wait(); err != nil {
		return report, err
	}

	if failed := report.Failed(); failed > 0 {
		err := zerr.Wrap(domain.ErrCompileFailed, fmt.Sprintf("%d of %d units failed", failed, len(units)))
		err = zerr.With(err, "failed", failed)
		return report, zerr.With(err, "total", len(units))
	}

	if err := p.link(ctx, desc, units, binary, req); err != nil {
		return report, err
	}
	return report, nil
}

func (p *Pipeline) compile(ctx context.Context, desc *domain.Descriptor, unit domain.BuildUnit, req domain.BuildRequest) (domain.BuildResult, error) {
	task := p.reporter.Begin("compile " + filepath.Base(unit.Source))

	args := toolchain.ObjectArgs(desc, unit.Source, unit.Output, req)
	res, err := p.executor.Run(ctx, ports.Command{Path: desc.Path, Args: args})
	if err != nil {
		task.Done(err)
		return domain.BuildResult{}, zerr.Wrap(err, "compiler could not start")
	}

	result := domain.BuildResult{
		Unit:   unit,
		OK:     res.ExitCode == 0,
		Stdout: res.Stdout,
		Stderr: res.Stderr,
	}
	if result.OK {
		task.Done(nil)
	} else {
		fmt.Fprint(task.Stdout(), res.Stdout)
		fmt.Fprint(task.Stderr(), res.Stderr)
		task.Done(zerr.With(domain.ErrCompileFailed, "unit", unit.Source))
	}
	return result, nil
}

func (p *Pipeline) link(ctx context.Context, desc *domain.Descriptor, units []domain.BuildUnit, binary string, req domain.BuildRequest) error {
	task := p.reporter.Begin("link " + filepath.Base(binary))

	objects := make([]string, len(units))
	for i, u := range units {
		objects[i] = u.Output
	}
	args := toolchain.LinkArgs(desc, objects, binary, req)
	res, err := p.executor.Run(ctx, ports.Command{Path: desc.Path, Args: args})
	if err != nil {
		task.Done(err)
		return zerr.Wrap(err, "linker could not start")
	}
	if res.ExitCode != 0 {
		failure := zerr.With(zerr.Wrap(domain.ErrLinkFailed, "link failed"), "exit_code", res.ExitCode)
		fmt.Fprint(task.Stderr(), res.Stderr)
		task.Done(failure)
		return failure
	}
	task.Done(nil)
	return nil
}

// makeUnits derives one build unit per source, with object files named after
// the source stem inside the build directory.
func makeUnits(sources []fs.SourceFile, buildDir string, desc *domain.Descriptor) []domain.BuildUnit {
	ext := ".o"
	if desc.Type.MSVCDialect() {
		ext = ".obj"
	}
	units := make([]domain.BuildUnit, len(sources))
	for i, src := range sources {
		units[i] = domain.BuildUnit{
			Source: src.Path,
			CPP:    src.CPP,
			Output: filepath.Join(buildDir, fs.Stem(src.Path)+ext),
		}
	}
	return units
}
