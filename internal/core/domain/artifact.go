package domain

// ArtifactCandidate is one compiled artifact matched against a source file.
// The header holds the first bytes of the file, enough to read the version
// field; it is filled by the resolver and not reread during the copy.
type ArtifactCandidate struct {
	// RelPath is slash-separated and relative to the artifact root.
	RelPath string
	AbsPath string
	Size    int64
	Header  []byte
}

// ArtifactSet is the result of resolving one source file: the primary
// artifact first when present, nested artifacts following in directory
// listing order. A set is never empty; zero matches is a resolution
// failure, not an empty set.
type ArtifactSet struct {
	Source     SourceFile
	Candidates []ArtifactCandidate
}

// Unresolved records a source file for which no artifact matched.
type Unresolved struct {
	Source SourceFile
}
