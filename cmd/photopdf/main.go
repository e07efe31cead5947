// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the photopdf CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the photopdf CLI.
var rootCmd = &cobra.Command{
	Use:   "photopdf",
	Short: "Combine photos into a single PDF",
	Long: `photopdf collects photos from files, directories, URLs, or a camera,
lays them out one per page, and writes a single PDF to the data directory.

Each page uses the configured paper size, orientation, fit mode, and margin.
Finished documents can be opened or shared with external programs, and every
conversion is recorded in a local history.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./photopdf.yaml or ~/.config/photopdf/photopdf.yaml)")
	rootCmd.PersistentFlags().String("out-dir", "", "data directory for PDFs and history (default ~/.local/share/photopdf)")
	viper.BindPFlag("output.dir", rootCmd.PersistentFlags().Lookup("out-dir"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("photopdf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "photopdf"))
		}
	}

	viper.SetEnvPrefix("PHOTOPDF")
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
