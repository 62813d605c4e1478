package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tfdash version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("tfdash " + version)
		},
	}
}
