package ports

import "io"

// Reporter records progress of long-running work (compiles, clones, test
// runs). Implementations must be safe for concurrent Begin calls: the
// compile pool starts tasks from multiple workers.
type Reporter interface {
	// Begin starts a new task with the given display name.
	Begin(name string) Task

	// Close flushes the recording session.
	Close() error
}

// Task is one unit of reported work.
type Task interface {
	// Stdout returns a writer capturing the task's standard output.
	Stdout() io.Writer

	// Stderr returns a writer capturing the task's error output.
	Stderr() io.Writer

	// Done marks the task finished, successfully when err is nil.
	Done(err error)
}
