package export

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hoop/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hoop/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hoop/internal/adapters/pattern"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hoop/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hoop/internal/core/ports"
)

// NodeID is the unique identifier for the exporter Graft node.
const NodeID graft.ID = "engine.export"

func init() {
	graft.Register(graft.Node[*Exporter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.GroupScannerNodeID,
			fs.ReaderNodeID,
			pattern.NodeID,
			pattern.EncoderNodeID,
			fs.PlacerNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Exporter, error) {
			scanner, err := graft.Dep[ports.GroupScanner](ctx)
			if err != nil {
				return nil, err
			}

			reader, err := graft.Dep[ports.SourceReader](ctx)
			if err != nil {
				return nil, err
			}

			parser, err := graft.Dep[ports.PatternParser](ctx)
			if err != nil {
				return nil, err
			}

			encoder, err := graft.Dep[ports.PatternEncoder](ctx)
			if err != nil {
				return nil, err
			}

			placer, err := graft.Dep[ports.Placer](ctx)
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

			return New(scanner, reader, parser, encoder, placer, tracer, log), nil
		},
	})
}
