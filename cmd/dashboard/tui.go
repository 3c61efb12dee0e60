package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/nebula-dashboard/internal/config"
	"github.com/AlexZinkM/nebula-dashboard/internal/explorer"
	"github.com/AlexZinkM/nebula-dashboard/internal/logger"
	"github.com/AlexZinkM/nebula-dashboard/internal/tui"
)

func newTUICmd() *cobra.Command {
	var logDir string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the dashboard in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()

			if logDir == "" {
				dir, err := os.UserCacheDir()
				if err != nil {
					return fmt.Errorf("failed to get user cache directory: %w", err)
				}
				logDir = filepath.Join(dir, "nebula-dashboard", "logs")
			}
			if _, err := logger.InitFileOnly(logDir); err != nil {
				return err
			}
			defer logger.Close()

			if err := config.PromptForPassword(); err != nil {
				return err
			}

			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			ex := explorer.New(tui.OSC52Clipboard{Out: os.Stderr}, cfg.CopyAck)
			defer ex.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
			defer stop()

			a.aggregator.Start(ctx)
			return tui.Run(ctx, tui.Deps{
				Session:    a.session,
				Aggregator: a.aggregator,
				Records:    a.records,
				Explorer:   ex,
				Themes:     a.themes,
			})
		},
	}

	cmd.Flags().StringVar(&logDir, "log-dir", "", "Directory for log files (default: user cache dir)")
	return cmd
}
