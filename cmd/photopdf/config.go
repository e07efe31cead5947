// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/photopdf/internal/convert"
	"github.com/pdiddy/photopdf/internal/layout"
	"github.com/pdiddy/photopdf/internal/store"
	"github.com/pdiddy/photopdf/pkg/types"
)

const (
	defaultTimeout    = 60 * time.Second
	defaultMaxRetries = 3
	defaultMaxBytes   = 64 << 20
	defaultUserAgent  = "photopdf/0.1"
)

func setDefaults() {
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("layout.page_size", string(types.PageA4))
	viper.SetDefault("layout.orientation", string(types.Portrait))
	viper.SetDefault("layout.fit", string(types.FitContain))
	viper.SetDefault("layout.margin", types.DefaultMargin)
	viper.SetDefault("layout.name", layout.DefaultBaseName)
	viper.SetDefault("convert.workers", 4)
	viper.SetDefault("convert.verify", true)
	viper.SetDefault("fetch.timeout", defaultTimeout)
	viper.SetDefault("fetch.max_retries", defaultMaxRetries)
	viper.SetDefault("fetch.max_bytes", defaultMaxBytes)
}

// loadConfig assembles the application config from viper. Flags bound to
// viper keys take precedence over env, which takes precedence over the
// config file.
func loadConfig() (types.AppConfig, error) {
	var cfg types.AppConfig

	dir := viper.GetString("output.dir")
	if dir == "" {
		def, err := convert.DefaultDataDir()
		if err != nil {
			return cfg, err
		}
		dir = def
	}
	cfg.Output.Dir = dir

	opts, err := layoutFromViper()
	if err != nil {
		return cfg, err
	}
	cfg.Layout = opts

	cfg.Convert = types.ConvertConfig{
		Workers: viper.GetInt("convert.workers"),
		Verify:  viper.GetBool("convert.verify"),
	}
	cfg.Fetch = types.FetchConfig{
		Timeout:    viper.GetDuration("fetch.timeout"),
		MaxRetries: viper.GetInt("fetch.max_retries"),
		MaxBytes:   viper.GetInt64("fetch.max_bytes"),
		UserAgent:  defaultUserAgent,
	}
	cfg.Capture = types.CaptureConfig{
		Command: viper.GetStringSlice("capture.command"),
		Dir:     viper.GetString("capture.dir"),
	}
	if cfg.Capture.Dir == "" {
		cfg.Capture.Dir = filepath.Join(dir, "captures")
	}
	cfg.Launcher = types.LauncherConfig{
		OpenCommand:  viper.GetStringSlice("launcher.open_command"),
		ShareCommand: viper.GetStringSlice("launcher.share_command"),
	}
	return cfg, nil
}

func layoutFromViper() (types.LayoutOptions, error) {
	size, err := layout.ParsePageSize(viper.GetString("layout.page_size"))
	if err != nil {
		return types.LayoutOptions{}, err
	}
	orientation, err := layout.ParseOrientation(viper.GetString("layout.orientation"))
	if err != nil {
		return types.LayoutOptions{}, err
	}
	fit, err := layout.ParseFit(viper.GetString("layout.fit"))
	if err != nil {
		return types.LayoutOptions{}, err
	}
	return types.LayoutOptions{
		PageSize:    size,
		Orientation: orientation,
		Fit:         fit,
		Margin:      layout.ParseMargin(viper.GetString("layout.margin")),
		BaseName:    viper.GetString("layout.name"),
	}, nil
}

func openStore(cfg types.AppConfig) (*store.Store, error) {
	s, err := store.Open(cfg.Output.Dir)
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	return s, nil
}
