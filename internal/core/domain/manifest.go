package domain

// ManifestEntry describes one copied artifact in the run manifest.
type ManifestEntry struct {
	SourcePath   string `json:"source_path"`
	ArtifactPath string `json:"artifact_path"`
	Size         int64  `json:"size"`
	Hash         string `json:"hash"` // xxhash64, hex
	Version      string `json:"version"`
}

// Manifest is the machine-readable record of a successful run. It is
// emitted for auditing and never consumed by a later run. It is a pure
// function of the inputs, so re-running against an unchanged tree
// reproduces it byte for byte.
type Manifest struct {
	Tool      string          `json:"tool"`
	Artifacts []ManifestEntry `json:"artifacts"`
	Summary   RunSummary      `json:"summary"`
}
