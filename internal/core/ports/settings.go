package ports

import "github.com/caxe-dev/cx/internal/core/domain"

// Settings is the user-level persisted state: the cache root location and
// the cached toolchain selection that survives across invocations.
type Settings interface {
	// CacheDir returns the dependency cache root (one subdirectory per
	// dependency name).
	CacheDir() string

	// SelectedToolchain returns the persisted user selection, if any.
	SelectedToolchain() (domain.CompilerType, string, bool)

	// SetSelectedToolchain persists an explicit toolchain selection.
	SetSelectedToolchain(t domain.CompilerType, path string) error

	// ClearSelectedToolchain removes the persisted selection.
	ClearSelectedToolchain() error

	// Progress returns the configured progress renderer ("plain" or
	// "tape").
	Progress() string
}
