// Package mirror implements the two-phase copy and aggregation engine.
package mirror

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.trai.ch/classmirror/internal/core/classfile"
	"go.trai.ch/classmirror/internal/core/domain"
	"go.trai.ch/classmirror/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// unknownLabel classifies artifacts whose header could not be parsed
// under the lenient policy.
const unknownLabel = "unknown version"

// Request describes one mirroring run.
type Request struct {
	SourceRoot   string
	ArtifactRoot string
	OutputRoot   string
	Config       domain.RunConfig
}

// Engine orchestrates a run: auxiliary copies first, then artifact
// resolution, classification and copying. The run summary is built
// here and returned by value; no other component sees it while it
// accumulates.
type Engine struct {
	enumerator ports.Enumerator
	resolver   ports.ArtifactResolver
	copier     ports.Copier
	hasher     ports.Hasher
	reporter   ports.Reporter
	manifest   ports.ManifestWriter
	tracer     ports.Tracer
	logger     ports.Logger
}

// NewEngine creates a new Engine.
func NewEngine(
	enumerator ports.Enumerator,
	resolver ports.ArtifactResolver,
	copier ports.Copier,
	hasher ports.Hasher,
	reporter ports.Reporter,
	manifest ports.ManifestWriter,
	tracer ports.Tracer,
	logger ports.Logger,
) *Engine {
	return &Engine{
		enumerator: enumerator,
		resolver:   resolver,
		copier:     copier,
		hasher:     hasher,
		reporter:   reporter,
		manifest:   manifest,
		tracer:     tracer,
		logger:     logger,
	}
}

// Run executes one mirroring pass. On success the returned summary is
// final. Any error means the artifact phase copied nothing, except for
// copy-time IO failures, which abort immediately without rollback.
func (e *Engine) Run(ctx context.Context, req Request) (domain.RunSummary, error) {
	summary := domain.NewRunSummary()

	sources, auxiliary, err := e.enumerate(req)
	if err != nil {
		return summary, err
	}
	summary.SourceFiles = len(sources)
	e.logger.Info("enumerated source tree",
		"sources", len(sources), "auxiliary", len(auxiliary))

	if err := e.copier.EnsureDir(req.OutputRoot); err != nil {
		return summary, err
	}

	// Phase A: auxiliary files, before any artifact work.
	if err := e.copyAuxiliary(ctx, req, auxiliary, &summary); err != nil {
		return summary, err
	}

	// Phase B: resolve everything, then decide, then copy.
	sets, err := e.resolveAll(ctx, req, sources)
	if err != nil {
		return summary, err
	}

	if req.Config.HeaderPolicy == domain.HeaderStrict {
		if err := e.checkHeaders(sets); err != nil {
			return summary, err
		}
	}

	entries, err := e.copyArtifacts(ctx, req, sets, &summary)
	if err != nil {
		return summary, err
	}

	if summary.MultiVersion() {
		e.logger.Warn("multiple JDK versions detected",
			"versions", len(summary.Versions))
	}

	if err := e.manifest.Write(req.OutputRoot, domain.Manifest{
		Tool:      "classmirror",
		Artifacts: entries,
		Summary:   summary,
	}); err != nil {
		return summary, err
	}

	e.reporter.Summary(summary)
	return summary, nil
}

// enumerate splits the source tree into source and auxiliary files.
// Any enumeration error is fatal to the run.
func (e *Engine) enumerate(req Request) ([]domain.SourceFile, []domain.AuxiliaryFile, error) {
	var sources []domain.SourceFile
	var auxiliary []domain.AuxiliaryFile

	for entry, err := range e.enumerator.Walk(req.SourceRoot, req.Config.Layout, req.Config.Ignores) {
		if err != nil {
			return nil, nil, err
		}
		switch entry.Kind {
		case domain.KindSource:
			sources = append(sources, domain.SourceFile{RelPath: entry.RelPath, AbsPath: entry.AbsPath})
		case domain.KindAuxiliary:
			auxiliary = append(auxiliary, domain.AuxiliaryFile{RelPath: entry.RelPath, AbsPath: entry.AbsPath})
		}
	}
	return sources, auxiliary, nil
}

// copyAuxiliary is Phase A. A single copy failure aborts the run;
// files already written stay in place.
func (e *Engine) copyAuxiliary(ctx context.Context, req Request, files []domain.AuxiliaryFile, summary *domain.RunSummary) error {
	_, span := e.tracer.Span(ctx, "copy auxiliary files")
	err := func() error {
		for _, aux := range files {
			dst := filepath.Join(req.OutputRoot, filepath.FromSlash(aux.RelPath))
			n, err := e.copier.Copy(aux.AbsPath, dst)
			if err != nil {
				return err
			}
			e.reporter.AuxiliaryCopied(aux.RelPath, n)
			summary.AuxiliaryFiles++
		}
		return nil
	}()
	span.End(err)
	return err
}

// resolveAll resolves every source file before anything is copied.
// Resolutions run on a bounded errgroup; results are indexed by the
// source's enumeration position, so ordering stays deterministic
// regardless of the worker count. Unresolved sources are collected
// rather than short-circuiting, then reported as one aborting error
// once all resolutions finished.
func (e *Engine) resolveAll(ctx context.Context, req Request, sources []domain.SourceFile) ([]domain.ArtifactSet, error) {
	_, span := e.tracer.Span(ctx, "resolve artifacts")

	sets := make([]domain.ArtifactSet, len(sources))
	unresolved := make([]*domain.Unresolved, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	workers := req.Config.ResolverWorkers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			set, err := e.resolver.Resolve(req.ArtifactRoot, req.Config.Layout, src)
			if err != nil {
				if errors.Is(err, domain.ErrUnresolved) {
					unresolved[i] = &domain.Unresolved{Source: src}
					return nil
				}
				return err
			}
			sets[i] = set
			return nil
		})
	}

	// The join is the barrier: the abort decision is only valid once
	// every resolution has been attempted.
	if err := g.Wait(); err != nil {
		span.End(err)
		return nil, err
	}

	var missing []string
	for _, u := range unresolved {
		if u == nil {
			continue
		}
		missing = append(missing, u.Source.RelPath)
		e.logger.Error("no matching class file", "source", u.Source.RelPath)
	}
	if len(missing) > 0 {
		err := zerr.With(zerr.Wrap(domain.ErrRunAborted, "artifact resolution failed"), "unresolved", missing)
		err = zerr.With(err, "count", len(missing))
		span.End(err)
		return nil, err
	}

	span.End(nil)
	return sets, nil
}

// checkHeaders validates every matched artifact's magic signature
// before the copy sub-phase, so a malformed artifact aborts the run
// while the output root is still untouched by Phase B.
func (e *Engine) checkHeaders(sets []domain.ArtifactSet) error {
	for _, set := range sets {
		for _, candidate := range set.Candidates {
			if _, err := classfile.ParseHeader(candidate.Header); err != nil {
				checkErr := zerr.With(zerr.Wrap(err, "artifact failed header check"), "artifact", candidate.RelPath)
				return zerr.With(checkErr, "source", set.Source.RelPath)
			}
		}
	}
	return nil
}

// copyArtifacts is the Phase B copy sub-phase: every candidate of
// every set is written to the output root, classified, verified and
// counted. It runs only when all sources resolved.
func (e *Engine) copyArtifacts(ctx context.Context, req Request, sets []domain.ArtifactSet, summary *domain.RunSummary) ([]domain.ManifestEntry, error) {
	_, span := e.tracer.Span(ctx, "copy artifacts")

	entries := make([]domain.ManifestEntry, 0, len(sets))
	err := func() error {
		for _, set := range sets {
			for _, candidate := range set.Candidates {
				label := e.classify(set.Source, candidate)

				dst := filepath.Join(req.OutputRoot, filepath.FromSlash(candidate.RelPath))
				n, err := e.copier.Copy(candidate.AbsPath, dst)
				if err != nil {
					return err
				}

				hash, err := e.verifyCopy(candidate.AbsPath, dst)
				if err != nil {
					return err
				}

				e.reporter.ArtifactCopied(set.Source.RelPath, candidate.RelPath, n, label)
				summary.Artifacts++
				summary.CountVersion(label)
				entries = append(entries, domain.ManifestEntry{
					SourcePath:   set.Source.RelPath,
					ArtifactPath: candidate.RelPath,
					Size:         n,
					Hash:         fmt.Sprintf("%016x", hash),
					Version:      label,
				})
			}
		}
		return nil
	}()
	span.End(err)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// classify derives the version label for one artifact. Under the
// lenient policy a malformed header is logged and classified under the
// unknown label; under the strict policy checkHeaders already vetoed
// the run, so parsing cannot fail here.
func (e *Engine) classify(src domain.SourceFile, candidate domain.ArtifactCandidate) string {
	version, err := classfile.ParseHeader(candidate.Header)
	if err != nil {
		e.logger.Warn("unreadable class file header",
			"artifact", candidate.RelPath, "source", src.RelPath)
		return unknownLabel
	}
	return version.Label().String()
}

// verifyCopy hashes origin and copy and returns the content hash.
func (e *Engine) verifyCopy(src, dst string) (uint64, error) {
	srcHash, err := e.hasher.HashFile(src)
	if err != nil {
		return 0, err
	}
	dstHash, err := e.hasher.HashFile(dst)
	if err != nil {
		return 0, err
	}
	if srcHash != dstHash {
		err := zerr.With(zerr.Wrap(domain.ErrCopyMismatch, "content hash differs"), "from", src)
		return 0, zerr.With(err, "to", dst)
	}
	return srcHash, nil
}
