package ports

import "go.trai.ch/classmirror/internal/core/domain"

// ArtifactResolver maps one source file to its set of compiled artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ArtifactResolver interface {
	// Resolve searches the artifact root's directory mirroring the
	// source file's package path for the primary artifact and any
	// nested artifacts sharing its stem. The returned set lists the
	// primary first when present, nested artifacts in listing order.
	//
	// When nothing matches, the error wraps domain.ErrUnresolved; the
	// caller decides whether that is fatal.
	Resolve(artifactRoot string, layout domain.Layout, src domain.SourceFile) (domain.ArtifactSet, error)
}
