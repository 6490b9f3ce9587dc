package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hoop/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/hoop/internal/core/ports"
)

// NodeID is the unique identifier for the digest store Graft node.
const NodeID graft.ID = "adapter.digest_store"

func init() {
	graft.Register(graft.Node[ports.DigestStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DigestStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(log), nil
		},
	})
}
