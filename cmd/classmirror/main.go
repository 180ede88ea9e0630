// Package main is the entry point for the classmirror CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/classmirror/cmd/classmirror/commands"
	"go.trai.ch/classmirror/internal/app"
	"go.trai.ch/classmirror/internal/core/domain"
	_ "go.trai.ch/classmirror/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(ctx context.Context, args []string, stderr io.Writer, provider ComponentProvider) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := provider(ctx)
	if err != nil {
		// Logger is not available if initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	cli := commands.New(components)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrRunAborted) {
			// Every unresolved source was already logged; the zerr
			// report carries the full list.
			_, _ = fmt.Fprintf(stderr, "%+v\n", err)
			return 1
		}
		components.Logger.Error(err.Error())
		return 1
	}
	return 0
}
