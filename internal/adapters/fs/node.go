package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/classmirror/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the Walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ResolverNodeID is the unique identifier for the Resolver Graft node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// CopierNodeID is the unique identifier for the Copier Graft node.
	CopierNodeID graft.ID = "adapter.fs.copier"
	// HasherNodeID is the unique identifier for the Hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.Enumerator]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Enumerator, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.ArtifactResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.Copier]{
		ID:        CopierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Copier, error) {
			return NewCopier(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
