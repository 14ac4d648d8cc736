// Package shell provides the subprocess executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"

	"go.trai.ch/zerr"

	"github.com/caxe-dev/cx/internal/core/ports"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec. Every invocation is a
// blocking wait; cancellation is delivered through the context.
type Executor struct{}

// NewExecutor creates a new Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Run executes the command with captured output. A nonzero exit status is
// reported through ExecResult, not as an error; errors mean the process
// could not be launched.
func (e *Executor) Run(ctx context.Context, cmd ports.Command) (ports.ExecResult, error) {
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...) //nolint:gosec // invocations are built from resolved toolchains
	c.Dir = cmd.Dir
	if cmd.Env != nil {
		c.Env = append(os.Environ(), cmd.Env...)
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	res := ports.ExecResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, zerr.With(zerr.Wrap(err, "failed to launch process"), "path", cmd.Path)
	}
	return res, nil
}

// RunStreaming executes the command with stdio passed through and returns
// the exit code.
func (e *Executor) RunStreaming(ctx context.Context, cmd ports.Command) (int, error) {
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...) //nolint:gosec // invocations are built from resolved toolchains
	c.Dir = cmd.Dir
	if cmd.Env != nil {
		c.Env = append(os.Environ(), cmd.Env...)
	}
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	err := c.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, zerr.With(zerr.Wrap(err, "failed to launch process"), "path", cmd.Path)
	}
	return 0, nil
}

// RunShell dispatches a script line through the platform command shell in
// dir, with stdio passed through, and returns the exit code.
func (e *Executor) RunShell(ctx context.Context, script, dir string) (int, error) {
	shell, flag := "sh", "-c"
	if runtime.GOOS == "windows" {
		shell, flag = "cmd", "/C"
	}
	return e.RunStreaming(ctx, ports.Command{
		Path: shell,
		Args: []string{flag, script},
		Dir:  dir,
	})
}
