package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ferrox",
		Short: "Declarative JSON API server",
		Long: `Ferrox serves HTTP endpoints declared as plain functions.

Routes are collected into a single frozen table at startup; incoming
requests are matched by method and path template and dispatched with
path parameters, query parameters and the request body pre-parsed
into generic JSON values.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		routesCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
