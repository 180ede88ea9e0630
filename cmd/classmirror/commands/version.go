package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/classmirror/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(_ *cobra.Command, _ []string) {
			if rev := build.Revision(); rev != "" {
				fmt.Printf("%s (%s)\n", build.Version, rev)
				return
			}
			fmt.Println(build.Version)
		},
	}
}
