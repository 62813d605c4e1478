package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tfdash.dev/tfdash/internal/awscli"
	"tfdash.dev/tfdash/internal/browser"
	"tfdash.dev/tfdash/internal/config"
	"tfdash.dev/tfdash/internal/preflight"
	"tfdash.dev/tfdash/internal/server"
	"tfdash.dev/tfdash/internal/snapshot"
	"tfdash.dev/tfdash/internal/ui"
)

func NewServeCmd() *cobra.Command {
	var useAWS bool
	var noBrowser bool
	var port int
	var endpoint string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard (LocalStack by default, --aws for real AWS)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			endpoint, port = cfg.Merge(endpoint, port)

			fmt.Println()
			fmt.Println(ui.Banner("Terraform Remote State Dashboard"))
			fmt.Println()

			ctx := cmd.Context()
			mode := snapshot.ModeLocalStack
			runnerEndpoint := endpoint

			if useAWS {
				mode = snapshot.ModeRealAWS
				runnerEndpoint = "" // real AWS: no endpoint override, ambient credentials
				fmt.Printf("  Mode: %s\n", ui.Warn(string(mode)))
				fmt.Print("  Checking AWS credentials... ")
				if err := preflight.CheckAWSCredentials(ctx); err != nil {
					fmt.Println(ui.Fail("NOT CONFIGURED"))
					fmt.Println()
					fmt.Println("  " + ui.Warn("Configure AWS credentials first:"))
					fmt.Println("  aws configure")
					fmt.Println("  # Or set AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY")
					fmt.Println()
					os.Exit(1)
				}
				fmt.Println(ui.OK("OK"))
			} else {
				fmt.Printf("  Mode: %s\n", ui.Bold(string(mode)))
				fmt.Print("  Checking LocalStack... ")
				if err := preflight.CheckLocalStack(ctx, endpoint); err != nil {
					fmt.Println(ui.Fail("NOT RUNNING"))
					fmt.Println()
					fmt.Println("  " + ui.Warn("Start LocalStack first:"))
					fmt.Println("  docker-compose up -d")
					fmt.Println()
					os.Exit(1)
				}
				fmt.Println(ui.OK("OK"))
			}

			builder := snapshot.NewBuilder(awscli.NewCLIRunner(runnerEndpoint), mode)
			srv := server.New(builder, port)
			url := "http://" + srv.Addr()

			fmt.Println()
			fmt.Println("  " + ui.OK("Dashboard running at:"))
			fmt.Println("  " + ui.Bold(url))
			fmt.Println()
			fmt.Println("  Press Ctrl+C to stop.")
			fmt.Println()

			if !noBrowser {
				browser.OpenDelayed(url)
			}
			return srv.Serve()
		},
	}

	cmd.Flags().BoolVar(&useAWS, "aws", false, "Use real AWS instead of LocalStack")
	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "Don't open the browser automatically")
	cmd.Flags().IntVar(&port, "port", 0, "Port to serve on (default 8080)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "LocalStack endpoint (default http://localhost:4566)")

	return cmd
}
