package ports

import (
	"context"
	"io"
	"time"

	"go.trai.ch/hoop/internal/core/domain"
)

// PlaceMode selects whether the placer moves or copies files.
type PlaceMode uint8

const (
	// PlaceMove renames files into their group folders.
	PlaceMove PlaceMode = iota
	// PlaceCopy leaves the source tree untouched.
	PlaceCopy
)

// Placer lays out a plan on disk as <dst>/<label>/<NNN>_<digest>/<name>.
//
//go:generate mockgen -source=placer.go -destination=mocks/mock_placer.go -package=mocks
type Placer interface {
	Place(ctx context.Context, plan *domain.Plan, dst string, mode PlaceMode) ([]domain.Placement, error)

	// Write stores data at path, creating parent folders. An existing file is replaced.
	Write(path string, data []byte) error
}

// Reporter writes plan reports.
type Reporter interface {
	// WriteCSV writes the per-artifact assignment rows followed by the worker summary.
	WriteCSV(path string, plan *domain.Plan, placements []domain.Placement) error
	// WriteManifest writes a machine-readable description of the plan.
	WriteManifest(path string, plan *domain.Plan, settings domain.Settings) error
	// RenderSummary writes the per-worker summary table.
	RenderSummary(w io.Writer, plan *domain.Plan) error
	// WriteCompleteness writes one row per analyzed order.
	WriteCompleteness(path string, reports []domain.OrderReport) error
	// WriteExportLog writes the mapping from exported machine files to their sources.
	WriteExportLog(path string, jobs []domain.ExportJob, exportedAt time.Time) error
}
