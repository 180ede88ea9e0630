// Package telemetry provides tracer implementations: a noop default
// and a progrock-backed recorder for callers that attach a tape.
package telemetry

import (
	"context"

	"go.trai.ch/classmirror/internal/core/ports"
)

var _ ports.Tracer = (*NoopTracer)(nil)

// NoopTracer is a no-op implementation of ports.Tracer.
type NoopTracer struct{}

// NewNoopTracer creates a new NoopTracer.
func NewNoopTracer() *NoopTracer {
	return &NoopTracer{}
}

// Span returns a span that does nothing.
func (t *NoopTracer) Span(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End(_ error) {}
