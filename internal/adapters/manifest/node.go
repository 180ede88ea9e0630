package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/classmirror/internal/core/ports"
)

// NodeID is the unique identifier for the manifest store Graft node.
const NodeID graft.ID = "adapter.manifest"

func init() {
	graft.Register(graft.Node[ports.ManifestWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestWriter, error) {
			return NewStore(), nil
		},
	})
}
