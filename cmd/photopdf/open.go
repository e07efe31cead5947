// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/photopdf/internal/launcher"
	"github.com/pdiddy/photopdf/pkg/types"
)

var openCmd = &cobra.Command{
	Use:   "open [pdf]",
	Short: "Open a PDF with the system viewer",
	Long: `Open hands a PDF to the platform opener (xdg-open, open, or the Windows
file handler), or to launcher.open_command when set. Without an argument
the most recent conversion is opened.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path, err := targetPDF(cmd.Context(), cfg, args)
		if err != nil {
			return err
		}
		return launcher.New(cfg.Launcher).Open(cmd.Context(), path)
	},
}

var shareCmd = &cobra.Command{
	Use:   "share [pdf]",
	Short: "Share a PDF with the configured share command",
	Long: `Share runs launcher.share_command with the PDF path in place of {path}
(or appended when the token is absent). Without an argument the most recent
conversion is shared.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path, err := targetPDF(cmd.Context(), cfg, args)
		if err != nil {
			return err
		}
		return launcher.New(cfg.Launcher).Share(cmd.Context(), path)
	},
}

// targetPDF returns the path given on the command line, or the newest entry
// in the history.
func targetPDF(ctx context.Context, cfg types.AppConfig, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	st, err := openStore(cfg)
	if err != nil {
		return "", err
	}
	defer st.Close()

	recent, err := st.List(ctx, 1)
	if err != nil {
		return "", err
	}
	if len(recent) == 0 {
		return "", fmt.Errorf("no conversions yet: provide a PDF path")
	}
	return recent[0].Path, nil
}

func init() {
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(shareCmd)
}
