package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/nebula-dashboard/internal/config"
	"github.com/AlexZinkM/nebula-dashboard/internal/theme"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and select themes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List theme presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			themes, _, err := openThemes(config.Get())
			if err != nil {
				return err
			}
			active := themes.PresetName()
			for _, p := range theme.Presets() {
				marker := " "
				if p.Name == active {
					marker = "*"
				}
				swatch := p.Styles().Title.Render("■■■")
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-8s %s %s\n", marker, p.Name, swatch, p.Colors.Primary)
			}
			if themes.Override() != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "  (active theme has a customization)")
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <name>",
		Short: "Select a theme preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			themes, _, err := openThemes(config.Get())
			if err != nil {
				return err
			}
			return themes.SetTheme(args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "css",
		Short: "Print the active theme as CSS variables",
		RunE: func(cmd *cobra.Command, args []string) error {
			themes, _, err := openThemes(config.Get())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), themes.Active().CSS())
			return nil
		},
	})
	return cmd
}
