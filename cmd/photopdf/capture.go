// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/photopdf/internal/source"
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Capture a photo with the configured camera command",
	Long: `Capture runs capture.command to take one photo and prints the path of the
saved image. The token {output} in the command is replaced with the target
path. A capture the camera program aborts is reported as cancelled and is
not an error.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		src, ok, err := source.NewCamera(cfg.Capture).Capture(cmd.Context())
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(os.Stdout, "capture cancelled")
			return nil
		}
		fmt.Fprintf(os.Stdout, "captured: %s\n", src.Path)
		return nil
	},
}

func init() {
	captureCmd.Flags().String("dir", "", "directory for captured photos (default <out-dir>/captures)")
	viper.BindPFlag("capture.dir", captureCmd.Flags().Lookup("dir"))

	rootCmd.AddCommand(captureCmd)
}
