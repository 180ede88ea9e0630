package telemetry

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/classmirror/internal/core/ports"
)

var _ ports.Tracer = (*Recorder)(nil)

// Recorder implements ports.Tracer on a progrock recorder, one vertex
// per span.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// NewRecorder creates a Recorder emitting to the given writer, e.g. a
// progrock tape.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Span starts a vertex named after the unit of work.
func (r *Recorder) Span(ctx context.Context, name string) (context.Context, ports.Span) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &vertexSpan{vertex: v}
}

// Close flushes the underlying writer when it supports closing.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

type vertexSpan struct {
	vertex *progrock.VertexRecorder
}

// End completes the vertex, recording err when non-nil.
func (s *vertexSpan) End(err error) {
	s.vertex.Done(err)
}
