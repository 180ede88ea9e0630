// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/classmirror/internal/adapters/config"
	_ "go.trai.ch/classmirror/internal/adapters/fs"
	_ "go.trai.ch/classmirror/internal/adapters/logger"
	_ "go.trai.ch/classmirror/internal/adapters/manifest"
	_ "go.trai.ch/classmirror/internal/adapters/report"
	_ "go.trai.ch/classmirror/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/classmirror/internal/app"
	_ "go.trai.ch/classmirror/internal/engine/mirror"
)
