// Package testrun compiles and executes project tests: each test file is an
// independent program with its own main.
package testrun

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

// Runner compiles test files in parallel, then runs the binaries strictly
// sequentially so their output never interleaves and each test gets the
// terminal to itself.
type Runner struct {
	executor ports.Executor
	reporter ports.Reporter
}

// NewRunner creates a Runner.
func NewRunner(executor ports.Executor, reporter ports.Reporter) *Runner {
	return &Runner{executor: executor, reporter: reporter}
}

// Run builds every test source into buildDir and executes the resulting
// binaries in discovery order. Compile failures do not stop the run; the
// affected file is recorded as COMPILE FAIL and the rest proceed.
func (r *Runner) Run(
	ctx context.Context,
	desc *domain.Descriptor,
	tests []fs.SourceFile,
	buildDir string,
	req domain.BuildRequest,
) (*domain.TestSummary, error) {
	if len(tests) == 0 {
		return &domain.TestSummary{}, nil
	}

	binaries := make([]string, len(tests))
	compiled := make([]bool, len(tests))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, test := range tests {
		g.Go(func() error {
			binary := filepath.Join(buildDir, binaryName(fs.Stem(test.Path)))
			ok, err := r.compile(gctx, desc, test.Path, binary, req)
			if err != nil {
				return err
			}
			mu.Lock()
			binaries[i], compiled[i] = binary, ok
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &domain.TestSummary{Results: make([]domain.TestResult, len(tests))}
	for i, test := range tests {
		name := fs.Stem(test.Path)
		if !compiled[i] {
			summary.Results[i] = domain.TestResult{Name: name, Outcome: domain.TestCompileFailed}
			continue
		}
		summary.Results[i] = domain.TestResult{Name: name, Outcome: r.execute(ctx, name, binaries[i])}
	}

	if !summary.Success() {
		err := zerr.With(domain.ErrTestsFailed, "passed", summary.Passed())
		return summary, zerr.With(err, "total", summary.Total())
	}
	return summary, nil
}

func (r *Runner) compile(ctx context.Context, desc *domain.Descriptor, source, binary string, req domain.BuildRequest) (bool, error) {
	task := r.reporter.Begin("compile " + filepath.Base(source))

	args := toolchain.UnitArgs(desc, source, binary, req)
	res, err := r.executor.Run(ctx, ports.Command{Path: desc.Path, Args: args})
	if err != nil {
		task.Done(err)
		return false, zerr.Wrap(err, "compiler could not start")
	}
	if res.ExitCode != 0 {
		fmt.Fprint(task.Stderr(), res.Stderr)
		task.Done(zerr.With(domain.ErrCompileFailed, "test", source))
		return false, nil
	}
	task.Done(nil)
	return true, nil
}

// execute runs one test binary with stdio passed straight through: test
// programs own the terminal while they run.
func (r *Runner) execute(ctx context.Context, name, binary string) domain.TestOutcome {
	code, err := r.executor.RunStreaming(ctx, ports.Command{Path: binary})
	switch {
	case err != nil:
		return domain.TestExecFailed
	case code != 0:
		return domain.TestFailed
	default:
		return domain.TestPassed
	}
}

func binaryName(stem string) string {
	if runtime.GOOS == "windows" {
		return stem + ".exe"
	}
	return stem
}
