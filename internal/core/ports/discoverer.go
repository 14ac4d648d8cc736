package ports

import (
	"context"

	"github.com/caxe-dev/cx/internal/core/domain"
)

// Discoverer enumerates compiler installations on the host, ordered by
// platform preference (highest ranked first). There are two variants,
// selected once at startup: a Visual Studio aware discoverer on Windows and
// a PATH prober elsewhere.
type Discoverer interface {
	Discover(ctx context.Context) ([]domain.Candidate, error)
}
