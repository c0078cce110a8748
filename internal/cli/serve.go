// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/blogdeck/blogdeck/internal/server"
)

const shutdownTimeout = 15 * time.Second

func newServeCommand(opts *globalOptions) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the settings API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rt, err := bootstrap(ctx, opts)
			if err != nil {
				return err
			}
			defer rt.close()

			if cmd.Flags().Changed("host") {
				rt.cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				rt.cfg.Server.Port = port
			}

			blogs, err := rt.openBlogService()
			if err != nil {
				return err
			}
			defer blogs.Close()

			srv := server.New(&rt.cfg.Server, blogs)

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Run(ctx)
			}()

			fmt.Fprintf(cmd.OutOrStdout(), "Settings API listening on %s:%d\n", rt.cfg.Server.Host, rt.cfg.Server.Port)

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("server error: %w", err)
				}
				return nil
			case <-ctx.Done():
				rt.log.Info().Msg("Received shutdown signal")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown error: %w", err)
			}
			rt.log.Info().Msg("Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen address (overrides server.host)")
	cmd.Flags().IntVar(&port, "port", 0, "listen port (overrides server.port)")
	return cmd
}
