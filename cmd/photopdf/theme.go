// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/photopdf/internal/session"
	"github.com/pdiddy/photopdf/pkg/types"
)

var themeCmd = &cobra.Command{
	Use:       "theme [system|light|dark|toggle]",
	Short:     "Print or change the appearance preference",
	Long:      `Theme prints the stored theme, sets it, or toggles between dark and light.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"system", "light", "dark", "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		settings, err := session.LoadSettings(ctx, st)
		if err != nil {
			return err
		}

		switch {
		case len(args) == 0:
		case args[0] == "toggle":
			if _, err := settings.ToggleTheme(ctx); err != nil {
				return err
			}
		default:
			if err := settings.SetTheme(ctx, types.Theme(args[0])); err != nil {
				return err
			}
		}
		fmt.Fprintf(os.Stdout, "theme: %s\n", settings.Theme())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
