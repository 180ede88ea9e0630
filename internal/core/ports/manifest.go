package ports

import "go.trai.ch/classmirror/internal/core/domain"

// ManifestWriter persists the run manifest into the output root. The
// manifest is write-once per run and never read back.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestWriter interface {
	Write(outputRoot string, m domain.Manifest) error
}
