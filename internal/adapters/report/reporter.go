// Package report renders the per-file log and the final summary of a
// run as plain text lines.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"go.trai.ch/classmirror/internal/core/domain"
	"go.trai.ch/classmirror/internal/core/ports"
)

var _ ports.Reporter = (*Reporter)(nil)

const separator = "----------------------------------------"

// Reporter implements ports.Reporter on an io.Writer.
type Reporter struct {
	mu sync.Mutex
	w  io.Writer
}

// New creates a Reporter writing to stdout.
func New() *Reporter {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a Reporter writing to w. Used by tests.
func NewWithWriter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// AuxiliaryCopied prints one auxiliary copy entry.
func (r *Reporter) AuxiliaryCopied(relPath string, size int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "auxiliary file: %s, size: %d bytes\n", relPath, size)
}

// ArtifactCopied prints one artifact copy entry with its version label.
func (r *Reporter) ArtifactCopied(sourceRel, artifactRel string, size int64, version string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "source: %s, class: %s, size: %d bytes, version: %s\n",
		sourceRel, artifactRel, size, version)
}

// Summary prints the final counters and the version histogram. With a
// uniform histogram the single version is named; otherwise every label
// is listed with its count, in sorted order for stable output.
func (r *Reporter) Summary(s domain.RunSummary) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintln(r.w, separator)
	fmt.Fprintln(r.w, "--- summary ---")
	fmt.Fprintf(r.w, "source files: %d\n", s.SourceFiles)
	fmt.Fprintf(r.w, "class files: %d\n", s.Artifacts)
	fmt.Fprintf(r.w, "auxiliary files: %d\n", s.AuxiliaryFiles)
	fmt.Fprintf(r.w, "total copied: %d\n", s.TotalCopied())

	if sole := s.SoleVersion(); sole != "" {
		fmt.Fprintf(r.w, "all class files: %s\n", sole)
		return
	}
	if s.MultiVersion() {
		fmt.Fprintln(r.w, "-- class files per JDK version --")
		labels := make([]string, 0, len(s.Versions))
		for label := range s.Versions {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			fmt.Fprintf(r.w, "%s: %d files\n", label, s.Versions[label])
		}
	}
}
