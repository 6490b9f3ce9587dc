// Package estimate computes production time from a pattern's stitch program.
package estimate

import (
	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/hoop/internal/core/ports"
)

var _ ports.CostEstimator = (*Estimator)(nil)

// Estimator applies a linear cost model to stitches, color changes, trims and jumps.
type Estimator struct {
	model domain.CostModel
}

// New creates an Estimator with the given cost model.
func New(model domain.CostModel) *Estimator {
	return &Estimator{model: model}
}

// Estimate returns the production time of p in seconds.
func (e *Estimator) Estimate(p *domain.Pattern) float64 {
	if p == nil || e.model.StitchesPerMinute <= 0 {
		return 0
	}
	seconds := float64(len(p.Stitches)) / e.model.StitchesPerMinute * 60
	seconds += float64(len(p.Threads)) * e.model.ColorChangeSeconds
	seconds += float64(p.CountCommand(domain.CommandTrim)) * e.model.TrimSeconds
	seconds += float64(p.CountCommand(domain.CommandJump)) * e.model.JumpSeconds
	return max(0, seconds)
}
