package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rdppathak/ferrox"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the registered route table",
		RunE: func(cmd *cobra.Command, args []string) error {
			collector := ferrox.NewCollector()
			registerRoutes(collector)

			srv := ferrox.NewServer(ferrox.WithCollector(collector))
			routes, err := srv.Routes()
			if err != nil {
				return err
			}

			for _, rt := range routes {
				fmt.Printf("%-7s %s\n", rt.Method, rt.Template)
			}
			return nil
		},
	}
}
