package telemetry

import (
	"context"
	"io"
	"sync"

	"github.com/vito/progrock/console"
	"go.trai.ch/classmirror/internal/core/ports"
)

var _ ports.Tracer = (*Switch)(nil)

// Switch is a tracer whose backend is selected after flag parsing:
// noop by default, a console-rendering progrock Recorder once progress
// output is requested.
type Switch struct {
	mu      sync.RWMutex
	backend ports.Tracer
}

// NewSwitch creates a Switch with the noop backend active.
func NewSwitch() *Switch {
	return &Switch{backend: NewNoopTracer()}
}

// Span delegates to the active backend.
func (s *Switch) Span(ctx context.Context, name string) (context.Context, ports.Span) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.backend.Span(ctx, name)
}

// EnableProgress swaps in a Recorder rendering plain-text vertex
// progress to w. The returned stop function flushes the recorder and
// restores the noop backend.
func (s *Switch) EnableProgress(w io.Writer) func() error {
	rec := NewRecorder(console.NewWriter(w))

	s.mu.Lock()
	s.backend = rec
	s.mu.Unlock()

	return func() error {
		s.mu.Lock()
		s.backend = NewNoopTracer()
		s.mu.Unlock()
		return rec.Close()
	}
}
