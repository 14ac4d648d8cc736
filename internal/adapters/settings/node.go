package settings

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/caxe-dev/cx/internal/core/ports"
)

// NodeID is the graft identifier for the user settings adapter.
const NodeID graft.ID = "adapter.settings"

func init() {
	graft.Register(graft.Node[ports.Settings]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Settings, error) {
			return New()
		},
	})
}
