package ports

import "go.trai.ch/hoop/internal/core/domain"

// ConfigLoader defines the interface for loading run settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the configuration file by walking up from cwd and returns the merged settings.
	// When no file exists the defaults are returned together with an empty path.
	Load(cwd string) (domain.Settings, string, error)
	// LoadFile reads the given configuration file over the defaults.
	LoadFile(path string) (domain.Settings, error)
}
