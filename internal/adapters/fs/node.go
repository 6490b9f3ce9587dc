package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hoop/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ScannerNodeID is the unique identifier for the source scanner Graft node.
	ScannerNodeID graft.ID = "adapter.fs.scanner"
	// GroupScannerNodeID is the unique identifier for the sorted-tree scanner Graft node.
	GroupScannerNodeID graft.ID = "adapter.fs.group_scanner"
	// ReaderNodeID is the unique identifier for the source reader Graft node.
	ReaderNodeID graft.ID = "adapter.fs.reader"
	// PlacerNodeID is the unique identifier for the placer Graft node.
	PlacerNodeID graft.ID = "adapter.fs.placer"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.SourceScanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.SourceScanner, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(walker), nil
		},
	})

	graft.Register(graft.Node[ports.GroupScanner]{
		ID:        GroupScannerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.GroupScanner, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(walker), nil
		},
	})

	graft.Register(graft.Node[ports.SourceReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.SourceReader, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(walker), nil
		},
	})

	graft.Register(graft.Node[ports.Placer]{
		ID:        PlacerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Placer, error) {
			return NewPlacer(), nil
		},
	})
}
