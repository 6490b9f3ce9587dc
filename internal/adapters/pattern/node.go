package pattern

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hoop/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the pattern parser Graft node.
	NodeID graft.ID = "adapter.pattern_parser"
	// EncoderNodeID is the unique identifier for the DST encoder Graft node.
	EncoderNodeID graft.ID = "adapter.pattern_encoder"
)

func init() {
	graft.Register(graft.Node[ports.PatternParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PatternParser, error) {
			return NewRegistry(), nil
		},
	})

	graft.Register(graft.Node[ports.PatternEncoder]{
		ID:        EncoderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PatternEncoder, error) {
			return DSTWriter{}, nil
		},
	})
}
