// Package app implements the application layer for classmirror.
package app

import (
	"context"
	"os"

	"go.trai.ch/classmirror/internal/core/ports"
	"go.trai.ch/classmirror/internal/engine/mirror"
	"go.trai.ch/zerr"
)

// RunOptions carries the CLI inputs of one run.
type RunOptions struct {
	SourceDir  string
	ClassDir   string
	OutputDir  string
	ConfigPath string
}

// App wires configuration loading to the mirror engine.
type App struct {
	configLoader ports.ConfigLoader
	engine       *mirror.Engine
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, engine *mirror.Engine, logger ports.Logger) *App {
	return &App{
		configLoader: loader,
		engine:       engine,
		logger:       logger,
	}
}

// Run executes one mirroring pass. Path validation happens up front;
// the engine never sees a root that cannot be statted.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if err := requireDir(opts.SourceDir, "source directory"); err != nil {
		return err
	}
	if err := requireDir(opts.ClassDir, "class directory"); err != nil {
		return err
	}

	summary, err := a.engine.Run(ctx, mirror.Request{
		SourceRoot:   opts.SourceDir,
		ArtifactRoot: opts.ClassDir,
		OutputRoot:   opts.OutputDir,
		Config:       cfg,
	})
	if err != nil {
		return zerr.Wrap(err, "mirror run failed")
	}

	a.logger.Info("run complete",
		"classes", summary.Artifacts,
		"auxiliary", summary.AuxiliaryFiles,
		"output", opts.OutputDir)
	return nil
}

// requireDir rejects missing paths and non-directories before any work
// starts.
func requireDir(path, role string) error {
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "cannot stat "+role), "path", path)
	}
	if !info.IsDir() {
		return zerr.With(zerr.New(role+" is not a directory"), "path", path)
	}
	return nil
}
