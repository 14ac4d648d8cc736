package reporter

import (
	"io"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"

	"github.com/caxe-dev/cx/internal/core/ports"
)

// Tape implements ports.Reporter on a progrock tape, rendering live vertex
// state for terminals that want more than line output.
type Tape struct {
	tape *progrock.Tape
	rec  *progrock.Recorder
}

// NewTape creates a tape-backed reporter.
func NewTape() *Tape {
	tape := progrock.NewTape()
	return &Tape{
		tape: tape,
		rec:  progrock.NewRecorder(tape),
	}
}

// Begin starts a vertex named after the task.
func (t *Tape) Begin(name string) ports.Task {
	v := t.rec.Vertex(digest.FromString(name), name)
	return &tapeTask{vertex: v}
}

// Close flushes the recording session.
func (t *Tape) Close() error {
	return t.tape.Close()
}

type tapeTask struct {
	vertex *progrock.VertexRecorder
}

func (t *tapeTask) Stdout() io.Writer { return t.vertex.Stdout() }
func (t *tapeTask) Stderr() io.Writer { return t.vertex.Stderr() }
func (t *tapeTask) Done(err error)    { t.vertex.Done(err) }
