// Package commands implements the CLI commands for classmirror.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/classmirror/internal/app"
)

// CLI represents the command line interface for classmirror.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
}

// New creates a new CLI instance with the given components.
func New(components *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "classmirror",
		Short:         "Mirror compiled class files for a Java source tree",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "classmirror.yaml", "Path to configuration file")

	c := &CLI{
		components: components,
		rootCmd:    rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetErr sets the error output for the root command. Used for testing.
func (c *CLI) SetErr(w io.Writer) {
	c.rootCmd.SetErr(w)
}
