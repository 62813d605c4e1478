package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"tfdash.dev/tfdash/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tfdash",
		Short: "Visual dashboard for Terraform remote state resources",
	}

	rootCmd.AddCommand(cmd.NewServeCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
