package reporter

import (
	"context"
	"os"

	"github.com/grindlemire/graft"

	"github.com/caxe-dev/cx/internal/adapters/settings"
	"github.com/caxe-dev/cx/internal/core/ports"
)

// NodeID is the graft identifier for the progress reporter.
const NodeID graft.ID = "adapter.reporter"

func init() {
	graft.Register(graft.Node[ports.Reporter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.Reporter, error) {
			cfg, err := graft.Dep[ports.Settings](ctx)
			if err != nil {
				return nil, err
			}
			if cfg.Progress() == "tape" {
				return NewTape(), nil
			}
			return NewLinear(os.Stdout), nil
		},
	})
}
