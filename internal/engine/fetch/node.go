package fetch

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/caxe-dev/cx/internal/adapters/git"
	"github.com/caxe-dev/cx/internal/adapters/lockfile"
	"github.com/caxe-dev/cx/internal/adapters/logger"
	"github.com/caxe-dev/cx/internal/adapters/reporter"
	"github.com/caxe-dev/cx/internal/adapters/settings"
	"github.com/caxe-dev/cx/internal/adapters/shell"
	"github.com/caxe-dev/cx/internal/core/ports"
)

// NodeID is the graft identifier for the dependency fetch manager.
const NodeID graft.ID = "engine.fetch"

func init() {
	graft.Register(graft.Node[*Manager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			git.NodeID,
			shell.NodeID,
			lockfile.NodeID,
			settings.NodeID,
			reporter.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Manager, error) {
			cloner, err := graft.Dep[ports.Cloner](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			locks, err := graft.Dep[ports.LockStore](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[ports.Settings](ctx)
			if err != nil {
				return nil, err
			}
			rep, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(cloner, executor, locks, cfg, rep, log), nil
		},
	})
}
