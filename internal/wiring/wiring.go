// Package wiring registers all graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/caxe-dev/cx/internal/adapters/config"
	_ "github.com/caxe-dev/cx/internal/adapters/git"
	_ "github.com/caxe-dev/cx/internal/adapters/lockfile"
	_ "github.com/caxe-dev/cx/internal/adapters/logger"
	_ "github.com/caxe-dev/cx/internal/adapters/registry"
	_ "github.com/caxe-dev/cx/internal/adapters/reporter"
	_ "github.com/caxe-dev/cx/internal/adapters/settings"
	_ "github.com/caxe-dev/cx/internal/adapters/shell"
	_ "github.com/caxe-dev/cx/internal/adapters/toolchain"
	// Register app and engine nodes.
	_ "github.com/caxe-dev/cx/internal/app"
	_ "github.com/caxe-dev/cx/internal/engine/fetch"
	_ "github.com/caxe-dev/cx/internal/engine/pipeline"
	_ "github.com/caxe-dev/cx/internal/engine/testrun"
)
