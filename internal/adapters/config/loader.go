// Package config provides the hoop.yaml loader.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/hoop/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const supportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load walks up from cwd to the nearest hoop.yaml. Without one the defaults
// are returned and the path is empty.
func (l *Loader) Load(cwd string) (domain.Settings, string, error) {
	path := find(cwd)
	if path == "" {
		l.Logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
		return domain.DefaultSettings(), "", nil
	}

	settings, err := l.LoadFile(path)
	if err != nil {
		return domain.Settings{}, "", err
	}
	return settings, path, nil
}

// LoadFile reads a specific configuration file over the defaults.
func (l *Loader) LoadFile(path string) (domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Hoopfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if file.Version != "" && file.Version != supportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", path, file.Version, supportedVersion))
	}

	settings := domain.DefaultSettings()
	apply(&settings, &file)
	if err := settings.Validate(); err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}
	return settings, nil
}

func find(cwd string) string {
	dir := cwd
	for {
		candidate := filepath.Join(dir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func apply(s *domain.Settings, f *Hoopfile) {
	if f.PeopleCount != nil {
		s.PeopleCount = *f.PeopleCount
	}
	if f.PersonLabels != nil {
		s.PersonLabels = f.PersonLabels
	}
	if f.PersonWeights != nil {
		s.PersonWeights = f.PersonWeights
	}
	if f.DuplicateReductionSeconds != nil {
		s.DuplicateReduction = *f.DuplicateReductionSeconds
	}
	if f.HashLength != nil {
		s.HashLength = *f.HashLength
	}
	if f.HashAlgorithm != "" {
		s.HashAlgorithm = strings.ToLower(f.HashAlgorithm)
	}
	if f.StitchesPerMinute != nil {
		s.Cost.StitchesPerMinute = *f.StitchesPerMinute
	}
	if f.ColorChangeSeconds != nil {
		s.Cost.ColorChangeSeconds = *f.ColorChangeSeconds
	}
	if f.TrimSeconds != nil {
		s.Cost.TrimSeconds = *f.TrimSeconds
	}
	if f.JumpSeconds != nil {
		s.Cost.JumpSeconds = *f.JumpSeconds
	}
	if f.Extensions != nil {
		s.Extensions = f.Extensions
	}
	if f.ItemField != nil {
		s.ItemField = *f.ItemField
	}
	if f.Concurrency != nil {
		s.Concurrency = *f.Concurrency
	}
}
