package ports

import "go.trai.ch/classmirror/internal/core/domain"

// ConfigLoader loads the optional run configuration file.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path. A missing file yields the
	// defaults; a malformed one is an error.
	Load(path string) (domain.RunConfig, error)
}
