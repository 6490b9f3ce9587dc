// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/hoop/internal/core/domain"

// PatternParser is the optional capability of decoding pattern files.
// A nil PatternParser means the capability is absent for the whole run.
//
//go:generate mockgen -source=pattern.go -destination=mocks/mock_pattern.go -package=mocks
type PatternParser interface {
	// TryParse decodes data into a structured pattern.
	// It returns an error when the format is unknown or the data is malformed.
	TryParse(data []byte) (*domain.Pattern, error)
}

// PatternEncoder writes a structured pattern in a machine format.
//
//go:generate mockgen -source=pattern.go -destination=mocks/mock_pattern.go -package=mocks
type PatternEncoder interface {
	// Encode serializes p. label is stored in the file header where the format has one.
	Encode(p *domain.Pattern, label string) ([]byte, error)
}

// CostEstimator supplies the production time of a pattern.
//
//go:generate mockgen -source=pattern.go -destination=mocks/mock_pattern.go -package=mocks
type CostEstimator interface {
	// Estimate returns a non-negative number of seconds. A nil pattern costs nothing.
	Estimate(p *domain.Pattern) float64
}
