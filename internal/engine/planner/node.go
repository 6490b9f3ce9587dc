package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hoop/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hoop/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hoop/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hoop/internal/adapters/pattern"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hoop/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hoop/internal/core/ports"
)

// NodeID is the unique identifier for the planner Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ScannerNodeID,
			fs.ReaderNodeID,
			pattern.NodeID,
			cas.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Planner, error) {
			scanner, err := graft.Dep[ports.SourceScanner](ctx)
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

			store, err := graft.Dep[ports.DigestStore](ctx)
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

			return New(scanner, reader, parser, store, tracer, log), nil
		},
	})
}
