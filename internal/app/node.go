package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/snobb/imk/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"github.com/snobb/imk/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"github.com/snobb/imk/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"github.com/snobb/imk/internal/adapters/shell"   //nolint:depguard // Wired in app layer
	"github.com/snobb/imk/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"github.com/snobb/imk/internal/core/ports"
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
			fs.ExpanderNodeID,
			watcher.FactoryNodeID,
			shell.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	expander, err := graft.Dep[ports.PathExpander](ctx)
	if err != nil {
		return nil, err
	}

	notifiers, err := graft.Dep[ports.NotifierFactory](ctx)
	if err != nil {
		return nil, err
	}

	supervisor, err := graft.Dep[ports.Supervisor](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, expander, notifiers, supervisor, log), nil
}
