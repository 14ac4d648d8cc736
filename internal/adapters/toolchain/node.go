package toolchain

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/caxe-dev/cx/internal/adapters/logger"
	"github.com/caxe-dev/cx/internal/adapters/settings"
	"github.com/caxe-dev/cx/internal/adapters/shell"
	"github.com/caxe-dev/cx/internal/core/ports"
)

// NodeID is the graft identifier for the toolchain resolver.
const NodeID graft.ID = "adapter.toolchain"

// DiscovererNodeID is the graft identifier for the platform discoverer.
const DiscovererNodeID graft.ID = "adapter.toolchain.discoverer"

func init() {
	graft.Register(graft.Node[ports.Discoverer]{
		ID:        DiscovererNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Discoverer, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewDiscoverer(executor), nil
		},
	})

	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{DiscovererNodeID, settings.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			discoverer, err := graft.Dep[ports.Discoverer](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[ports.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(discoverer, cfg, log), nil
		},
	})
}
