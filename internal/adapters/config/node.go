package config

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/caxe-dev/cx/internal/core/ports"
)

// NodeID is the graft identifier for the manifest store adapter.
const NodeID graft.ID = "adapter.manifest"

func init() {
	graft.Register(graft.Node[ports.ManifestStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestStore, error) {
			return NewStore("."), nil
		},
	})
}
