// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/haripath/internal/metrics"
	"github.com/katalvlaran/haripath/internal/server"
)

const shutdownGrace = 5 * time.Second

func newServeCmd(e *env) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve routes, map diagrams and metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := metrics.New()
			srv := &http.Server{
				Addr: addr,
				Handler: server.NewHandler(&server.Server{
					Planner: e.planner(m),
					Metrics: m.Handler(),
					Logger:  e.log,
				}),
				ReadHeaderTimeout: 5 * time.Second,
			}

			// Channel to listen for errors coming from the listener.
			serverErrors := make(chan error, 1)
			go func() {
				e.log.Info("serving", "addr", srv.Addr, "map", e.m.Name())
				serverErrors <- srv.ListenAndServe()
			}()

			shutdown := make(chan os.Signal, 1)
			signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(shutdown)

			select {
			case err := <-serverErrors:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err

			case sig := <-shutdown:
				e.log.Info("shutting down", "signal", sig.String())

				// Give outstanding requests a deadline for completion.
				ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
				defer cancel()

				if err := srv.Shutdown(ctx); err != nil {
					e.log.Error("graceful shutdown incomplete", "grace", shutdownGrace, "error", err)
					return srv.Close()
				}
				e.log.Info("server stopped")
				return nil
			}
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")

	return cmd
}
