package ports

import "go.trai.ch/classmirror/internal/core/domain"

// Reporter receives the ordered per-file events of a run and the final
// summary. Rendering is the reporter's concern; the engine only emits.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// AuxiliaryCopied records one auxiliary file written to the output.
	AuxiliaryCopied(relPath string, size int64)

	// ArtifactCopied records one artifact written to the output,
	// classified by its version label.
	ArtifactCopied(sourceRel, artifactRel string, size int64, version string)

	// Summary renders the finalized run summary.
	Summary(s domain.RunSummary)
}
