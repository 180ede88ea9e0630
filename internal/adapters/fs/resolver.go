package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/classmirror/internal/core/classfile"
	"go.trai.ch/classmirror/internal/core/domain"
	"go.trai.ch/classmirror/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactResolver = (*Resolver)(nil)

// Resolver implements ports.ArtifactResolver by listing the artifact
// directory mirroring a source file's package path.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the artifact set for src, primary artifact first,
// nested artifacts in directory listing order (os.ReadDir sorts by
// name, so the order is stable across runs). A missing directory or an
// empty match list yields domain.ErrUnresolved.
func (r *Resolver) Resolve(artifactRoot string, layout domain.Layout, src domain.SourceFile) (domain.ArtifactSet, error) {
	dir := filepath.Join(artifactRoot, filepath.FromSlash(src.PackageDir()))

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return domain.ArtifactSet{}, zerr.With(zerr.Wrap(domain.ErrUnresolved, "artifact directory missing"), "source", src.RelPath)
		}
		return domain.ArtifactSet{}, zerr.With(zerr.Wrap(err, "failed to list artifact directory"), "dir", dir)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}

	matched := MatchCandidates(names, src.Stem(), layout)
	if len(matched) == 0 {
		unresolved := zerr.With(zerr.Wrap(domain.ErrUnresolved, "no artifact name matched"), "source", src.RelPath)
		return domain.ArtifactSet{}, zerr.With(unresolved, "dir", dir)
	}

	set := domain.ArtifactSet{Source: src, Candidates: make([]domain.ArtifactCandidate, 0, len(matched))}
	for _, name := range matched {
		candidate, err := r.loadCandidate(dir, src.PackageDir(), name)
		if err != nil {
			return domain.ArtifactSet{}, err
		}
		set.Candidates = append(set.Candidates, candidate)
	}
	return set, nil
}

// loadCandidate stats one matched artifact and reads its header bytes.
// A file shorter than the header is returned with the partial header;
// the version detector decides what to make of it.
func (r *Resolver) loadCandidate(dir, packageDir, name string) (domain.ArtifactCandidate, error) {
	abs := filepath.Join(dir, name)

	f, err := os.Open(abs) //nolint:gosec // Path comes from a directory listing under a user-given root
	if err != nil {
		return domain.ArtifactCandidate{}, zerr.With(zerr.Wrap(err, "failed to open artifact"), "path", abs)
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	info, err := f.Stat()
	if err != nil {
		return domain.ArtifactCandidate{}, zerr.With(zerr.Wrap(err, "failed to stat artifact"), "path", abs)
	}

	header := make([]byte, classfile.HeaderLen)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return domain.ArtifactCandidate{}, zerr.With(zerr.Wrap(err, "failed to read artifact header"), "path", abs)
	}

	return domain.ArtifactCandidate{
		RelPath: path.Join(packageDir, name),
		AbsPath: abs,
		Size:    info.Size(),
		Header:  header[:n],
	}, nil
}

// MatchCandidates filters a directory listing down to the artifacts
// belonging to one source stem: the primary `<stem><ext>` and nested
// `<stem><sep><suffix><ext>` names with a non-empty suffix. Matching is
// case sensitive and exact on the separator; the suffix may itself
// contain the separator for multiply nested types. The primary comes
// first when present, nested names keep their input order.
func MatchCandidates(names []string, stem string, layout domain.Layout) []string {
	primary := stem + layout.ArtifactExt
	nestedPrefix := stem + layout.NestedSep

	var matched []string
	hasPrimary := false
	for _, name := range names {
		if name == primary {
			hasPrimary = true
			continue
		}
		if !strings.HasSuffix(name, layout.ArtifactExt) {
			continue
		}
		inner := strings.TrimSuffix(name, layout.ArtifactExt)
		if strings.HasPrefix(inner, nestedPrefix) && len(inner) > len(nestedPrefix) {
			matched = append(matched, name)
		}
	}

	if hasPrimary {
		return append([]string{primary}, matched...)
	}
	return matched
}
