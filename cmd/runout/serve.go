package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"honnef.co/go/runout"
	"honnef.co/go/runout/server"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the runout API over HTTP",
		Long: `Serve the runout API over HTTP.

Endpoints:
  POST /api/v1/runout  - run one analysis; ?format=json|geojson|wkt|wkb|svg
  GET  /healthz        - liveness check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			e := &runout.Engine{Logger: log.New(cmd.ErrOrStderr(), "", log.LstdFlags)}
			return server.New(e).ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen `address`")
	return cmd
}
