// Package fs provides the file system adapters: tree walking, artifact
// resolution, copying and content hashing.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/classmirror/internal/core/domain"
	"go.trai.ch/classmirror/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Enumerator = (*Walker)(nil)

// Walker implements ports.Enumerator on filepath.WalkDir.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk yields every regular file under root, relative paths slash
// separated, in the lexical order WalkDir guarantees. Files whose
// extension matches the layout's source extension are classified as
// source, everything else as auxiliary.
func (w *Walker) Walk(root string, layout domain.Layout, ignores []string) iter.Seq2[domain.Entry, error] {
	return func(yield func(domain.Entry, error) bool) {
		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// A single unreadable entry leaves its siblings
				// enumerable; an unreadable root or subtree is fatal.
				if d != nil && !d.IsDir() {
					return nil
				}
				return zerr.With(zerr.Wrap(err, "failed to read tree entry"), "path", path)
			}

			if skip := shouldSkip(d, ignores); skip != nil {
				return skip
			}
			if d.IsDir() {
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if matchesAny(d.Name(), ignores) {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
			}

			entry := domain.Entry{
				RelPath: filepath.ToSlash(rel),
				AbsPath: path,
				Kind:    domain.KindAuxiliary,
			}
			if filepath.Ext(path) == layout.SourceExt {
				entry.Kind = domain.KindSource
			}

			if !yield(entry, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if walkErr != nil {
			yield(domain.Entry{}, walkErr)
		}
	}
}

// shouldSkip returns filepath.SkipDir for directories excluded from
// enumeration and nil otherwise. Ignored files are filtered by the
// caller.
func shouldSkip(d fs.DirEntry, ignores []string) error {
	if !d.IsDir() {
		return nil
	}
	name := d.Name()

	// Version control metadata never belongs in the mirror.
	if name == ".git" || name == ".jj" {
		return filepath.SkipDir
	}

	if matchesAny(name, ignores) {
		return filepath.SkipDir
	}
	return nil
}

func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if matched, _ := filepath.Match(p, name); matched {
			return true
		}
	}
	return false
}
