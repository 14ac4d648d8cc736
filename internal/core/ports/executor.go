// Package ports defines the interfaces between the core and its adapters.
package ports

import "context"

// Command describes one subprocess invocation.
type Command struct {
	Path string
	Args []string
	Dir  string
	Env  []string
}

// ExecResult is the captured outcome of a subprocess that was launched
// successfully, regardless of its exit status.
type ExecResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Executor runs subprocesses. Every invocation is a blocking wait;
// cancellation happens only through the context.
type Executor interface {
	// Run executes the command with captured output. A nonzero exit is
	// not an error: errors are reserved for launch failures.
	Run(ctx context.Context, cmd Command) (ExecResult, error)

	// RunStreaming executes the command with stdio passed through to the
	// caller's terminal and returns the exit code.
	RunStreaming(ctx context.Context, cmd Command) (int, error)

	// RunShell dispatches a script line through the platform command
	// shell (cmd /C on Windows, sh -c elsewhere) in dir and returns the
	// exit code.
	RunShell(ctx context.Context, script, dir string) (int, error)
}
