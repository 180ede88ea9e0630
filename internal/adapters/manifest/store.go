// Package manifest persists the machine-readable record of a run.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/classmirror/internal/core/domain"
	"go.trai.ch/classmirror/internal/core/ports"
	"go.trai.ch/zerr"
)

// Filename is the manifest's name inside the output root.
const Filename = "classmirror.manifest.json"

var _ ports.ManifestWriter = (*Store)(nil)

// Store implements ports.ManifestWriter with a flat JSON file.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Write marshals the manifest and writes it into the output root. The
// file is overwritten on each run and never read back.
func (s *Store) Write(outputRoot string, m domain.Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal run manifest")
	}

	path := filepath.Join(outputRoot, Filename)
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // Manifest is world-readable by design
		return zerr.With(zerr.Wrap(err, "failed to write run manifest"), "path", path)
	}
	return nil
}
