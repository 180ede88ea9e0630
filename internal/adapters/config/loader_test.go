package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/classmirror/internal/adapters/config"
	"go.trai.ch/classmirror/internal/core/domain"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	loader := config.NewLoader()

	cfg, err := loader.Load(filepath.Join(t.TempDir(), "classmirror.yaml"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRunConfig(), cfg)
}

func TestLoad_FullFile(t *testing.T) {
	content := `
version: "1"
ignore:
  - target
  - "*.tmp"
layout:
  sourceExt: .kt
  artifactExt: .class
headerPolicy: lenient
resolverWorkers: 4
`
	path := filepath.Join(t.TempDir(), "classmirror.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	loader := config.NewLoader()
	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"target", "*.tmp"}, cfg.Ignores)
	assert.Equal(t, ".kt", cfg.Layout.SourceExt)
	assert.Equal(t, ".class", cfg.Layout.ArtifactExt)
	// Unset layout fields keep their defaults.
	assert.Equal(t, "$", cfg.Layout.NestedSep)
	assert.Equal(t, domain.HeaderLenient, cfg.HeaderPolicy)
	assert.Equal(t, 4, cfg.ResolverWorkers)
}

func TestLoad_UnknownHeaderPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classmirror.yaml")
	require.NoError(t, os.WriteFile(path, []byte("headerPolicy: relaxed\n"), 0o600))

	loader := config.NewLoader()
	_, err := loader.Load(path)
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classmirror.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ignore: [unclosed\n"), 0o600))

	loader := config.NewLoader()
	_, err := loader.Load(path)
	assert.Error(t, err)
}

func TestLoad_NegativeWorkers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classmirror.yaml")
	require.NoError(t, os.WriteFile(path, []byte("resolverWorkers: -2\n"), 0o600))

	loader := config.NewLoader()
	_, err := loader.Load(path)
	assert.Error(t, err)
}
