package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/caxe-dev/cx/internal/adapters/config"
	"github.com/caxe-dev/cx/internal/adapters/git"
	"github.com/caxe-dev/cx/internal/adapters/lockfile"
	"github.com/caxe-dev/cx/internal/adapters/logger"
	"github.com/caxe-dev/cx/internal/adapters/registry"
	"github.com/caxe-dev/cx/internal/adapters/reporter"
	"github.com/caxe-dev/cx/internal/adapters/settings"
	"github.com/caxe-dev/cx/internal/adapters/shell"
	"github.com/caxe-dev/cx/internal/adapters/toolchain"
	"github.com/caxe-dev/cx/internal/core/ports"
	"github.com/caxe-dev/cx/internal/engine/fetch"
	"github.com/caxe-dev/cx/internal/engine/pipeline"
	"github.com/caxe-dev/cx/internal/engine/testrun"
)

const (
	// AppNodeID identifies the main App node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID identifies the components bundle handed to the CLI.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles everything the command layer needs.
type Components struct {
	App      *App
	Logger   ports.Logger
	Reporter ports.Reporter
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			lockfile.NodeID,
			registry.NodeID,
			shell.NodeID,
			settings.NodeID,
			reporter.NodeID,
			logger.NodeID,
			git.NodeID,
			toolchain.DiscovererNodeID,
			toolchain.NodeID,
			fetch.NodeID,
			pipeline.NodeID,
			testrun.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID, reporter.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			rep, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log, Reporter: rep}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	manifests, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}
	locks, err := graft.Dep[ports.LockStore](ctx)
	if err != nil {
		return nil, err
	}
	reg, err := graft.Dep[ports.Registry](ctx)
	if err != nil {
		return nil, err
	}
	executor, err := graft.Dep[ports.Executor](ctx)
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
	discoverer, err := graft.Dep[ports.Discoverer](ctx)
	if err != nil {
		return nil, err
	}
	resolver, err := graft.Dep[*toolchain.Resolver](ctx)
	if err != nil {
		return nil, err
	}
	fetcher, err := graft.Dep[*fetch.Manager](ctx)
	if err != nil {
		return nil, err
	}
	pipe, err := graft.Dep[*pipeline.Pipeline](ctx)
	if err != nil {
		return nil, err
	}
	tests, err := graft.Dep[*testrun.Runner](ctx)
	if err != nil {
		return nil, err
	}

	return New(manifests, locks, reg, executor, cfg, rep, log, discoverer, resolver, fetcher, pipe, tests), nil
}
