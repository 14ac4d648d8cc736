package ports

import (
	"context"

	"github.com/caxe-dev/cx/internal/core/domain"
)

// Registry resolves library aliases against the package registry.
type Registry interface {
	// Resolve maps a bare library name to its git URL.
	Resolve(ctx context.Context, name string) (string, bool)

	// Search returns entries whose name or description matches query.
	Search(ctx context.Context, query string) []domain.RegistryEntry
}
