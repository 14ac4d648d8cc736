package registry

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/caxe-dev/cx/internal/adapters/logger"
	"github.com/caxe-dev/cx/internal/adapters/settings"
	"github.com/caxe-dev/cx/internal/core/ports"
)

// NodeID is the graft identifier for the registry adapter.
const NodeID graft.ID = "adapter.registry"

func init() {
	graft.Register(graft.Node[ports.Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Registry, error) {
			cfg, err := graft.Dep[ports.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(DefaultIndexURL, cfg.CacheDir(), log), nil
		},
	})
}
