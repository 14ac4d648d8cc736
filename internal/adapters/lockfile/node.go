package lockfile

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/caxe-dev/cx/internal/core/ports"
)

// NodeID is the graft identifier for the lock store adapter.
const NodeID graft.ID = "adapter.lockstore"

func init() {
	graft.Register(graft.Node[ports.LockStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockStore, error) {
			return NewStore("."), nil
		},
	})
}
