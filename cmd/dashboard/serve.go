package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/nebula-dashboard/internal/api"
	"github.com/AlexZinkM/nebula-dashboard/internal/config"
	"github.com/AlexZinkM/nebula-dashboard/internal/handler"
	"github.com/AlexZinkM/nebula-dashboard/internal/logger"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	var connect bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Init()
			cfg := config.Get()

			if err := config.PromptForPassword(); err != nil {
				return err
			}

			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a.aggregator.Start(ctx)
			if connect {
				if st := a.session.Connect(ctx); st.LastError != nil {
					logger.Warn("Initial connect failed: %s", *st.LastError)
				}
			}

			h := handler.New(a.session, a.aggregator, a.records, a.themes)
			router := api.SetupRouter(h, api.RouterConfig{
				AllowedOrigins: cfg.AllowedOrigins,
				RatePerMinute:  cfg.RatePerMinute,
			})
			server := api.NewServer(cfg.HTTPAddr, router)

			errCh := make(chan error, 1)
			go func() {
				logger.Info("Listening on %s (network %s)", cfg.HTTPAddr, a.session.State().Network)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				logger.Info("Received shutdown signal")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error("Shutdown error: %v", err)
			}
			a.session.Disconnect(shutdownCtx)
			return nil
		},
	}

	cmd.Flags().BoolVar(&connect, "connect", false, "Unlock the keystore and connect on startup")
	return cmd
}
