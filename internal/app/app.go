// Package app implements the application layer: one method per CLI command,
// orchestrating the stores, engines, and adapters.
package app

import (
	"github.com/caxe-dev/cx/internal/adapters/toolchain"
	"github.com/caxe-dev/cx/internal/core/ports"
	"github.com/caxe-dev/cx/internal/engine/fetch"
	"github.com/caxe-dev/cx/internal/engine/pipeline"
	"github.com/caxe-dev/cx/internal/engine/testrun"
)

// App carries the wired collaborators of every command.
type App struct {
	manifests  ports.ManifestStore
	locks      ports.LockStore
	registry   ports.Registry
	executor   ports.Executor
	settings   ports.Settings
	reporter   ports.Reporter
	log        ports.Logger
	discoverer ports.Discoverer
	resolver   *toolchain.Resolver
	fetcher    *fetch.Manager
	pipeline   *pipeline.Pipeline
	tests      *testrun.Runner
}

// New creates an App.
func New(
	manifests ports.ManifestStore,
	locks ports.LockStore,
	registry ports.Registry,
	executor ports.Executor,
	settings ports.Settings,
	reporter ports.Reporter,
	log ports.Logger,
	discoverer ports.Discoverer,
	resolver *toolchain.Resolver,
	fetcher *fetch.Manager,
	pipe *pipeline.Pipeline,
	tests *testrun.Runner,
) *App {
	return &App{
		manifests:  manifests,
		locks:      locks,
		registry:   registry,
		executor:   executor,
		settings:   settings,
		reporter:   reporter,
		log:        log,
		discoverer: discoverer,
		resolver:   resolver,
		fetcher:    fetcher,
		pipeline:   pipe,
		tests:      tests,
	}
}
