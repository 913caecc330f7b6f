package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/snobb/imk/internal/core/ports"
)

// ExpanderNodeID is the unique identifier for the path expander Graft node.
const ExpanderNodeID graft.ID = "adapter.fs.expander"

func init() {
	graft.Register(graft.Node[ports.PathExpander]{
		ID:        ExpanderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathExpander, error) {
			return NewExpander(), nil
		},
	})
}
