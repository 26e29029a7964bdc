package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"cutline/internal/api"
	"cutline/internal/config"
	"cutline/internal/logging"
	"cutline/internal/projectstore"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local editing API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *projectstore.Store) error {
				logger, err := logging.NewFromConfig(cfg)
				if err != nil {
					return fmt.Errorf("init logger: %w", err)
				}

				addr := bind
				if addr == "" {
					addr = cfg.Paths.APIBind
				}

				server := api.NewServer(store, cfg, logger)
				httpServer := &http.Server{
					Addr:              addr,
					Handler:           server.Router(),
					ReadHeaderTimeout: 5 * time.Second,
				}

				runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()

				errCh := make(chan error, 1)
				go func() {
					logger.Info("api listening", "component", "serve", "addr", addr)
					errCh <- httpServer.ListenAndServe()
				}()

				select {
				case err := <-errCh:
					if err != nil && !errors.Is(err, http.ErrServerClosed) {
						return fmt.Errorf("serve api: %w", err)
					}
					return nil
				case <-runCtx.Done():
				}

				logger.Info("shutting down", "component", "serve")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := httpServer.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("shutdown api: %w", err)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Listen address (defaults to paths.api_bind)")
	return cmd
}
