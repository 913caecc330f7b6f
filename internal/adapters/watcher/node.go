package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/snobb/imk/internal/core/ports"
)

// FactoryNodeID is the unique identifier for the notifier factory Graft node.
const FactoryNodeID graft.ID = "adapter.watcher.factory"

func init() {
	graft.Register(graft.Node[ports.NotifierFactory]{
		ID:        FactoryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.NotifierFactory, error) {
			return NewFactory(), nil
		},
	})
}
