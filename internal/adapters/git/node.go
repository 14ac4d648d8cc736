package git

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/caxe-dev/cx/internal/core/ports"
)

// NodeID is the graft identifier for the git cloner adapter.
const NodeID graft.ID = "adapter.cloner"

func init() {
	graft.Register(graft.Node[ports.Cloner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Cloner, error) {
			return NewCloner(), nil
		},
	})
}
