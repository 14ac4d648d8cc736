// Package reporter renders progress of compiles, clones, and test runs.
// Two renderers exist: a plain line-per-task printer and a progrock tape.
package reporter

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/caxe-dev/cx/internal/core/ports"
	"github.com/caxe-dev/cx/internal/ui/style"
)

// Linear prints one line per finished task and replays captured output for
// failures. Task output is buffered so concurrent compiles never interleave.
type Linear struct {
	mu  sync.Mutex
	out io.Writer
}

// NewLinear creates a Linear reporter writing to out.
func NewLinear(out io.Writer) *Linear {
	return &Linear{out: out}
}

// Begin starts a task. Safe for concurrent use.
func (l *Linear) Begin(name string) ports.Task {
	return &linearTask{reporter: l, name: name}
}

// Close implements ports.Reporter. Nothing is buffered at the session level.
func (l *Linear) Close() error { return nil }

func (l *Linear) finish(t *linearTask, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err == nil {
		fmt.Fprintf(l.out, "%s %s\n", style.Success(style.Check), t.name)
		return
	}
	fmt.Fprintf(l.out, "%s %s: %v\n", style.Fail(style.Cross), t.name, err)
	if t.stdout.Len() > 0 {
		_, _ = t.stdout.WriteTo(l.out)
	}
	if t.stderr.Len() > 0 {
		_, _ = t.stderr.WriteTo(l.out)
	}
}

type linearTask struct {
	reporter *Linear
	name     string
	stdout   bytes.Buffer
	stderr   bytes.Buffer
}

func (t *linearTask) Stdout() io.Writer { return &t.stdout }
func (t *linearTask) Stderr() io.Writer { return &t.stderr }
func (t *linearTask) Done(err error)    { t.reporter.finish(t, err) }
