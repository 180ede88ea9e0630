// Package domain holds the core types for a mirroring run.
package domain

import (
	"path"
	"strings"
)

// FileKind classifies a file discovered under the source root.
type FileKind string

const (
	// KindSource is a file whose extension matches the source language.
	KindSource FileKind = "source"
	// KindAuxiliary is any other regular file; copied verbatim.
	KindAuxiliary FileKind = "auxiliary"
)

// Entry is one regular file yielded by the tree enumerator.
type Entry struct {
	// RelPath is slash-separated and relative to the enumerated root.
	RelPath string
	AbsPath string
	Kind    FileKind
}

// SourceFile is one source-category file. Immutable once discovered.
type SourceFile struct {
	RelPath string
	AbsPath string
}

// Stem returns the file name with its extension stripped.
func (s SourceFile) Stem() string {
	base := path.Base(s.RelPath)
	return strings.TrimSuffix(base, path.Ext(base))
}

// PackageDir returns the package-structured directory holding the file,
// relative to the source root. Empty for files at the root itself.
func (s SourceFile) PackageDir() string {
	dir := path.Dir(s.RelPath)
	if dir == "." {
		return ""
	}
	return dir
}

// AuxiliaryFile is a non-source file, copied without inspection.
type AuxiliaryFile struct {
	RelPath string
	AbsPath string
}
