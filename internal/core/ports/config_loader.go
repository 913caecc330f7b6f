package ports

import "github.com/snobb/imk/internal/core/domain"

// ConfigLoader defines the interface for loading a run profile.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load returns the defaults, overlaid with the profile file at path when path is not empty.
	Load(path string) (*domain.Config, error)
}
