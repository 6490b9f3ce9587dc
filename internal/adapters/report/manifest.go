package report

import (
	"io"

	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Manifest is the YAML description of a plan.
type Manifest struct {
	Settings  ManifestSettings   `yaml:"settings"`
	Workers   []ManifestWorker   `yaml:"workers"`
	Artifacts []ManifestArtifact `yaml:"artifacts"`
	Skipped   []string           `yaml:"skipped,omitempty"`
}

// ManifestSettings records the settings that shaped the plan.
type ManifestSettings struct {
	PeopleCount               int      `yaml:"people_count"`
	DuplicateReductionSeconds float64  `yaml:"duplicate_reduction_seconds"`
	HashAlgorithm             string   `yaml:"hash_algorithm"`
	HashLength                int      `yaml:"hash_length"`
	StitchesPerMinute         float64  `yaml:"stitches_per_minute"`
	ColorChangeSeconds        float64  `yaml:"color_change_seconds"`
	TrimSeconds               float64  `yaml:"trim_seconds"`
	JumpSeconds               float64  `yaml:"jump_seconds"`
	Extensions                []string `yaml:"extensions"`
}

// ManifestWorker is one worker's share.
type ManifestWorker struct {
	Label           string  `yaml:"label"`
	Weight          float64 `yaml:"weight"`
	Load            float64 `yaml:"load"`
	Files           int     `yaml:"files"`
	TotalSeconds    float64 `yaml:"total_seconds"`
	AdjustedSeconds float64 `yaml:"adjusted_seconds"`
	UniqueItems     int     `yaml:"unique_items"`
	UniqueDigests   int     `yaml:"unique_digests"`
}

// ManifestArtifact is one planned file.
type ManifestArtifact struct {
	Name     string  `yaml:"name"`
	Path     string  `yaml:"path"`
	ItemID   string  `yaml:"item_id,omitempty"`
	Digest   string  `yaml:"digest"`
	Fidelity string  `yaml:"fidelity"`
	Seconds  float64 `yaml:"seconds"`
	Worker   string  `yaml:"worker"`
	Group    string  `yaml:"group"`
}

// NewManifest builds the manifest of plan.
func NewManifest(plan *domain.Plan, settings *domain.Settings) Manifest {
	m := Manifest{
		Settings: ManifestSettings{
			PeopleCount:               settings.PeopleCount,
			DuplicateReductionSeconds: settings.DuplicateReduction,
			HashAlgorithm:             settings.HashAlgorithm,
			HashLength:                settings.HashLength,
			StitchesPerMinute:         settings.Cost.StitchesPerMinute,
			ColorChangeSeconds:        settings.Cost.ColorChangeSeconds,
			TrimSeconds:               settings.Cost.TrimSeconds,
			JumpSeconds:               settings.Cost.JumpSeconds,
			Extensions:                settings.Extensions,
		},
		Workers:   make([]ManifestWorker, len(plan.Summaries)),
		Artifacts: make([]ManifestArtifact, len(plan.Artifacts)),
		Skipped:   plan.Skipped,
	}

	weights := settings.Weights()
	for i, s := range plan.Summaries {
		w := ManifestWorker{
			Label:           s.Label,
			Files:           s.FileCount,
			TotalSeconds:    s.TotalSeconds,
			AdjustedSeconds: s.AdjustedSeconds,
			UniqueItems:     s.UniqueItems,
			UniqueDigests:   s.UniqueDigests,
		}
		if i < len(weights) {
			w.Weight = weights[i]
		}
		if i < len(plan.Loads) {
			w.Load = plan.Loads[i]
		}
		m.Workers[i] = w
	}

	for i := range plan.Artifacts {
		a := &plan.Artifacts[i]
		m.Artifacts[i] = ManifestArtifact{
			Name:     a.Name,
			Path:     a.Path,
			ItemID:   a.ItemID,
			Digest:   a.Digest,
			Fidelity: a.Fidelity.String(),
			Seconds:  a.Seconds,
			Worker:   plan.Label(a),
			Group:    a.GroupName(),
		}
	}
	return m
}

// WriteManifest writes the YAML manifest of plan to path.
//
//nolint:gocritic // signature fixed by ports.Reporter
func (r *Reporter) WriteManifest(path string, plan *domain.Plan, settings domain.Settings) (err error) {
	f, err := create(path)
	if err != nil {
		return err
	}
	defer func() { err = closeFile(f, err) }()

	if err := EncodeManifest(f, NewManifest(plan, &settings)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}
	return nil
}

// EncodeManifest writes m as YAML.
func EncodeManifest(w io.Writer, m Manifest) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return err
	}
	return enc.Close()
}
