package pipeline

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/caxe-dev/cx/internal/adapters/reporter"
	"github.com/caxe-dev/cx/internal/adapters/shell"
	"github.com/caxe-dev/cx/internal/core/ports"
)

// NodeID is the graft identifier for the build pipeline.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, reporter.NodeID},
		Run: func(ctx context.Context) (*Pipeline, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			rep, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			return NewPipeline(executor, rep), nil
		},
	})
}
