package mirror

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/classmirror/internal/adapters/fs"
	"go.trai.ch/classmirror/internal/adapters/logger"
	"go.trai.ch/classmirror/internal/adapters/manifest"
	"go.trai.ch/classmirror/internal/adapters/report"
	"go.trai.ch/classmirror/internal/adapters/telemetry"
	"go.trai.ch/classmirror/internal/core/ports"
)

// NodeID is the unique identifier for the Engine Graft node.
const NodeID graft.ID = "engine.mirror"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.WalkerNodeID,
			fs.ResolverNodeID,
			fs.CopierNodeID,
			fs.HasherNodeID,
			report.NodeID,
			manifest.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			enumerator, err := graft.Dep[ports.Enumerator](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.ArtifactResolver](ctx)
			if err != nil {
				return nil, err
			}
			copier, err := graft.Dep[ports.Copier](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ManifestWriter](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEngine(enumerator, resolver, copier, hasher, reporter, store, tracer, log), nil
		},
	})
}
