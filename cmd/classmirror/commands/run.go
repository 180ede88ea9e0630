package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/classmirror/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Copy matched class files and auxiliary files to the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, err := cmd.Flags().GetString("source")
			if err != nil {
				return err
			}
			classes, err := cmd.Flags().GetString("classes")
			if err != nil {
				return err
			}
			output, err := cmd.Flags().GetString("output")
			if err != nil {
				return err
			}
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			progress, err := cmd.Flags().GetBool("progress")
			if err != nil {
				return err
			}

			if progress && c.components.Tracer != nil {
				stop := c.components.Tracer.EnableProgress(cmd.ErrOrStderr())
				defer func() { _ = stop() }()
			}

			return c.components.App.Run(cmd.Context(), app.RunOptions{
				SourceDir:  source,
				ClassDir:   classes,
				OutputDir:  output,
				ConfigPath: configPath,
			})
		},
	}

	cmd.Flags().StringP("source", "s", "", "Source directory containing .java files")
	cmd.Flags().StringP("classes", "c", "", "Directory containing compiled .class files")
	cmd.Flags().StringP("output", "o", "", "Output directory")
	cmd.Flags().Bool("progress", false, "Render per-phase progress to stderr")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("classes")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
