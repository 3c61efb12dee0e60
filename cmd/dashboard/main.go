package main

import (
	"github.com/spf13/cobra"

	"github.com/AlexZinkM/nebula-dashboard/internal/config"
	"github.com/AlexZinkM/nebula-dashboard/internal/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Nebula wallet dashboard",
		Long:  `dashboard serves the Nebula wallet dashboard over HTTP or runs it in the terminal.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.Init()
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newTUICmd())
	rootCmd.AddCommand(newKeystoreCmd())
	rootCmd.AddCommand(newThemeCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to execute command: %v", err)
	}
}
