package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rdppathak/ferrox"
	"github.com/rdppathak/ferrox/core/config"
	"github.com/rdppathak/ferrox/core/logger"
	"github.com/rdppathak/ferrox/core/server"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the demo API server",
		Long: `Start the demo API server.

The listen address and timeouts come from SERVER_* environment
variables (or a .env file); --addr overrides the address. The server
runs until SIGINT or SIGTERM, then shuts down gracefully.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var logCfg logger.Config
			if err := config.Load(&logCfg); err != nil {
				return err
			}
			log := logger.New(logCfg, os.Stderr)

			var srvCfg server.Config
			if err := config.Load(&srvCfg); err != nil {
				return err
			}
			if addr != "" {
				srvCfg.Addr = addr
			}

			collector := ferrox.NewCollector()
			registerRoutes(collector)

			srv := ferrox.NewServer(
				ferrox.WithCollector(collector),
				ferrox.WithLogger(log),
				ferrox.WithHTTPOptions(
					server.WithReadTimeout(srvCfg.ReadTimeout),
					server.WithWriteTimeout(srvCfg.WriteTimeout),
					server.WithIdleTimeout(srvCfg.IdleTimeout),
					server.WithShutdownTimeout(srvCfg.ShutdownTimeout),
					server.WithMaxHeaderBytes(srvCfg.MaxHeaderBytes),
				),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			err := srv.Start(ctx, srvCfg.Addr)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides SERVER_ADDR)")

	return cmd
}
