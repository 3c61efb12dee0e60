package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/nebula-dashboard/internal/config"
	"github.com/AlexZinkM/nebula-dashboard/internal/keystore"
	"github.com/AlexZinkM/nebula-dashboard/internal/logger"
)

func newKeystoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keystore",
		Short: "Manage the local keystore",
	}

	var path string
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Create a new encrypted keypair",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Init()
			if path == "" {
				path = config.Get().KeystorePath
			}
			if path == "" {
				return fmt.Errorf("keystore path is required: pass --path or set KEYSTORE_PATH")
			}

			if err := config.PromptForPassword(); err != nil {
				return err
			}
			password, err := config.GetKeystorePasswordBytes()
			if err != nil {
				return err
			}
			defer clear(password)

			address, err := keystore.Generate(path, password)
			if err != nil {
				if keystore.IsFileExistsError(err) {
					return fmt.Errorf("refusing to overwrite %s", path)
				}
				return err
			}
			logger.Info("Keystore created: %s", path)
			fmt.Fprintln(cmd.OutOrStdout(), address.String())
			return nil
		},
	}
	generateCmd.Flags().StringVar(&path, "path", "", "Keystore file (must end in .cwt)")

	cmd.AddCommand(generateCmd)
	return cmd
}
