package domain

import "go.trai.ch/zerr"

var (
	// ErrUnresolved is returned by the resolver when a source file has no
	// matching artifact in the artifact root.
	ErrUnresolved = zerr.New("no matching artifact")

	// ErrRunAborted is returned by the engine when at least one source
	// file stayed unresolved after all resolutions were attempted. No
	// artifact is copied in a run that carries this error.
	ErrRunAborted = zerr.New("unresolved source files, artifact copy aborted")

	// ErrCopyMismatch is returned when a copied file's content hash does
	// not match the hash of its origin.
	ErrCopyMismatch = zerr.New("copied file differs from origin")
)
