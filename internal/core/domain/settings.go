package domain

import (
	"fmt"
	"strconv"

	"go.trai.ch/zerr"
)

// Hash algorithms accepted by the canonicalizer.
const (
	HashSHA256 = "sha256"
	HashBLAKE3 = "blake3"
)

// Defaults for Settings.
const (
	DefaultPeopleCount        = 4
	DefaultDuplicateReduction = 300.0
	DefaultHashLength         = 8
	DefaultStitchesPerMinute  = 800.0
	DefaultColorChangeSeconds = 120.0
	DefaultTrimSeconds        = 3.0
	DefaultJumpSeconds        = 0.2
	DefaultItemField          = 1
	maxHashLength             = 64
)

// CostModel holds the production-time parameters consumed by the cost estimator.
type CostModel struct {
	StitchesPerMinute  float64
	ColorChangeSeconds float64
	TrimSeconds        float64
	JumpSeconds        float64
}

// Settings is the full configuration surface of a run.
type Settings struct {
	PeopleCount        int
	PersonLabels       []string
	PersonWeights      []float64
	DuplicateReduction float64
	HashLength         int
	HashAlgorithm      string
	Cost               CostModel
	Extensions         []string
	ItemField          int
	// Concurrency bounds the analysis pool. Zero means one task per CPU.
	Concurrency int
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() Settings {
	return Settings{
		PeopleCount:        DefaultPeopleCount,
		PersonLabels:       []string{"A", "B", "C", "D"},
		PersonWeights:      []float64{1.0, 1.0, 0.7, 0.2},
		DuplicateReduction: DefaultDuplicateReduction,
		HashLength:         DefaultHashLength,
		HashAlgorithm:      HashSHA256,
		Cost: CostModel{
			StitchesPerMinute:  DefaultStitchesPerMinute,
			ColorChangeSeconds: DefaultColorChangeSeconds,
			TrimSeconds:        DefaultTrimSeconds,
			JumpSeconds:        DefaultJumpSeconds,
		},
		Extensions: []string{".pes"},
		ItemField:  DefaultItemField,
	}
}

// Validate checks every field against its documented range.
func (s *Settings) Validate() error {
	if s.PeopleCount < 1 {
		return zerr.With(ErrInvalidPeopleCount, "people_count", s.PeopleCount)
	}
	for i, w := range s.PersonWeights {
		if w <= 0 {
			err := zerr.With(ErrInvalidPersonWeight, "index", i)
			return zerr.With(err, "weight", w)
		}
	}
	if s.DuplicateReduction < 0 {
		return zerr.With(ErrInvalidDuplicateReduction, "duplicate_reduction_seconds", s.DuplicateReduction)
	}
	if s.HashLength < 1 || s.HashLength > maxHashLength {
		return zerr.With(ErrInvalidHashLength, "hash_length", s.HashLength)
	}
	if s.HashAlgorithm != HashSHA256 && s.HashAlgorithm != HashBLAKE3 {
		return zerr.With(ErrInvalidHashAlgorithm, "hash_algorithm", s.HashAlgorithm)
	}
	if s.Cost.StitchesPerMinute <= 0 {
		return zerr.With(ErrInvalidCostParameter, "stitches_per_minute", s.Cost.StitchesPerMinute)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"color_change_seconds", s.Cost.ColorChangeSeconds},
		{"trim_seconds", s.Cost.TrimSeconds},
		{"jump_seconds", s.Cost.JumpSeconds},
	} {
		if f.value < 0 {
			return zerr.With(ErrInvalidCostParameter, f.name, f.value)
		}
	}
	if s.ItemField < 0 {
		return zerr.With(ErrInvalidItemField, "item_field", s.ItemField)
	}
	return nil
}

// Label returns the human-facing name of worker i.
func (s *Settings) Label(i int) string {
	if i >= 0 && i < len(s.PersonLabels) && s.PersonLabels[i] != "" {
		return s.PersonLabels[i]
	}
	return "Person_" + strconv.Itoa(i+1)
}

// Labels returns one label per configured worker.
func (s *Settings) Labels() []string {
	labels := make([]string, s.PeopleCount)
	for i := range labels {
		labels[i] = s.Label(i)
	}
	return labels
}

// Weights returns one weight per configured worker, padding missing entries with 1.
func (s *Settings) Weights() []float64 {
	weights := make([]float64, s.PeopleCount)
	for i := range weights {
		weights[i] = 1.0
		if i < len(s.PersonWeights) {
			weights[i] = s.PersonWeights[i]
		}
	}
	return weights
}

// Fingerprint identifies every setting that changes a file's analysis.
// Cached analyses are only valid under the same fingerprint.
func (s *Settings) Fingerprint() string {
	return fmt.Sprintf("%s/%d/%g/%g/%g/%g",
		s.HashAlgorithm,
		s.HashLength,
		s.Cost.StitchesPerMinute,
		s.Cost.ColorChangeSeconds,
		s.Cost.TrimSeconds,
		s.Cost.JumpSeconds,
	)
}
