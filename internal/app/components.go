package app

import (
	"go.trai.ch/classmirror/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/classmirror/internal/core/ports"
)

// Components contains the initialized application components the CLI
// layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer *telemetry.Switch
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, tracer *telemetry.Switch) *Components {
	return &Components{
		App:    app,
		Logger: logger,
		Tracer: tracer,
	}
}
