package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/classmirror/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/classmirror/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/classmirror/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/classmirror/internal/core/ports"
	"go.trai.ch/classmirror/internal/engine/mirror"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			mirror.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			engine, err := graft.Dep[*mirror.Engine](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, engine, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			// The node always provides a Switch; a different backend
			// would leave --progress inert.
			sw, _ := tracer.(*telemetry.Switch)
			return NewComponents(application, log, sw), nil
		},
	})
}
