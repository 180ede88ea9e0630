package ports

import "context"

// Tracer is the entry point for recording run progress.
//
//go:generate go run go.uber.org/mock/mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Span starts a named unit of work.
	Span(ctx context.Context, name string) (context.Context, Span)
}

// Span represents one unit of work.
type Span interface {
	// End completes the span, recording err when non-nil.
	End(err error)
}
