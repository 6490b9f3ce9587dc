package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hoop/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/hoop/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/hoop/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/hoop/internal/adapters/report"  //nolint:depguard // Wired in app layer
	"go.trai.ch/hoop/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/hoop/internal/core/ports"
	"go.trai.ch/hoop/internal/engine/export"
	"go.trai.ch/hoop/internal/engine/planner"
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
			planner.NodeID,
			export.NodeID,
			fs.ScannerNodeID,
			fs.PlacerNodeID,
			report.NodeID,
			watcher.NodeID,
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
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	p, err := graft.Dep[*planner.Planner](ctx)
	if err != nil {
		return nil, err
	}

	exporter, err := graft.Dep[*export.Exporter](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[ports.SourceScanner](ctx)
	if err != nil {
		return nil, err
	}

	placer, err := graft.Dep[ports.Placer](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, p, exporter, scanner, placer, reporter, w, log), nil
}
