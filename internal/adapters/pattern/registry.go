// Package pattern decodes embroidery machine files into structured patterns.
package pattern

import (
	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/hoop/internal/core/ports"
)

var _ ports.PatternParser = (*Registry)(nil)

// Reader decodes one file format.
type Reader interface {
	// Sniff reports whether data looks like this format.
	Sniff(data []byte) bool
	// Read decodes data.
	Read(data []byte) (*domain.Pattern, error)
}

// Registry picks a reader by sniffing the data.
type Registry struct {
	readers []Reader
}

// NewRegistry creates a Registry with the PES and DST readers.
func NewRegistry() *Registry {
	return &Registry{readers: []Reader{PESReader{}, DSTReader{}}}
}

// TryParse decodes data with the first reader that recognizes it.
func (r *Registry) TryParse(data []byte) (*domain.Pattern, error) {
	for _, reader := range r.readers {
		if reader.Sniff(data) {
			return reader.Read(data)
		}
	}
	return nil, domain.ErrPatternUnsupported
}
