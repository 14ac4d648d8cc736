package reporter

import (
	"io"

	"github.com/caxe-dev/cx/internal/core/ports"
)

// Noop discards all progress. Used in tests.
type Noop struct{}

// NewNoop creates a Noop reporter.
func NewNoop() *Noop { return &Noop{} }

// Begin implements ports.Reporter.
func (Noop) Begin(string) ports.Task { return noopTask{} }

// Close implements ports.Reporter.
func (Noop) Close() error { return nil }

type noopTask struct{}

func (noopTask) Stdout() io.Writer { return io.Discard }
func (noopTask) Stderr() io.Writer { return io.Discard }
func (noopTask) Done(error)        {}
