// Package config provides the run configuration loader.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/classmirror/internal/core/domain"
	"go.trai.ch/classmirror/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// mirrorfile represents the structure of the classmirror.yaml file.
type mirrorfile struct {
	Version string    `yaml:"version"`
	Ignore  []string  `yaml:"ignore"`
	Layout  layoutDTO `yaml:"layout"`

	HeaderPolicy    string `yaml:"headerPolicy"`
	ResolverWorkers int    `yaml:"resolverWorkers"`
}

type layoutDTO struct {
	SourceExt   string `yaml:"sourceExt"`
	ArtifactExt string `yaml:"artifactExt"`
	NestedSep   string `yaml:"nestedSep"`
}

// Load reads the configuration at path. A missing file yields the
// defaults; a malformed file or an unknown policy value is an error.
func (l *Loader) Load(path string) (domain.RunConfig, error) {
	cfg := domain.DefaultRunConfig()

	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return domain.RunConfig{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file mirrorfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.RunConfig{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	cfg.Ignores = file.Ignore
	if file.Layout.SourceExt != "" {
		cfg.Layout.SourceExt = file.Layout.SourceExt
	}
	if file.Layout.ArtifactExt != "" {
		cfg.Layout.ArtifactExt = file.Layout.ArtifactExt
	}
	if file.Layout.NestedSep != "" {
		cfg.Layout.NestedSep = file.Layout.NestedSep
	}

	switch file.HeaderPolicy {
	case "":
		// keep default
	case string(domain.HeaderStrict):
		cfg.HeaderPolicy = domain.HeaderStrict
	case string(domain.HeaderLenient):
		cfg.HeaderPolicy = domain.HeaderLenient
	default:
		return domain.RunConfig{}, zerr.With(zerr.New("unknown header policy"), "value", file.HeaderPolicy)
	}

	if file.ResolverWorkers < 0 {
		return domain.RunConfig{}, zerr.With(zerr.New("resolver worker count must be positive"), "value", file.ResolverWorkers)
	}
	if file.ResolverWorkers > 0 {
		cfg.ResolverWorkers = file.ResolverWorkers
	}

	return cfg, nil
}
