// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package launcher hands a finished PDF to another program, either the
// platform's default viewer or a configured share helper.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pdiddy/photopdf/internal/command"
	"github.com/pdiddy/photopdf/pkg/types"
)

const pathToken = "{path}"

// ErrNoShareCommand is returned by Share when no share command is configured.
var ErrNoShareCommand = errors.New("no share command configured (set launcher.share_command)")

// Launcher opens and shares files.
type Launcher struct {
	cfg    types.LauncherConfig
	runner command.Runner
	goos   string
}

// New creates a Launcher for the current platform.
func New(cfg types.LauncherConfig) *Launcher {
	return newLauncher(cfg, command.OSRunner{}, runtime.GOOS)
}

func newLauncher(cfg types.LauncherConfig, r command.Runner, goos string) *Launcher {
	return &Launcher{cfg: cfg, runner: r, goos: goos}
}

// defaultOpener returns the platform's "open with default application"
// command, or nil if the platform has none.
func defaultOpener(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	case "linux", "freebsd", "openbsd", "netbsd":
		return []string{"xdg-open"}
	}
	return nil
}

// Open shows path in the default (or configured) viewer.
func (l *Launcher) Open(ctx context.Context, path string) error {
	abs, err := existing(path)
	if err != nil {
		return err
	}
	tmpl := l.cfg.OpenCommand
	if len(tmpl) == 0 {
		tmpl = defaultOpener(l.goos)
	}
	if len(tmpl) == 0 {
		return fmt.Errorf("no default opener on %s (set launcher.open_command)", l.goos)
	}
	if err := command.RunTemplate(ctx, l.runner, tmpl, pathToken, abs, true); err != nil {
		return fmt.Errorf("opening %s: %w", abs, err)
	}
	return nil
}

// Share passes path to the configured share command.
func (l *Launcher) Share(ctx context.Context, path string) error {
	abs, err := existing(path)
	if err != nil {
		return err
	}
	if len(l.cfg.ShareCommand) == 0 {
		return ErrNoShareCommand
	}
	if err := command.RunTemplate(ctx, l.runner, l.cfg.ShareCommand, pathToken, abs, true); err != nil {
		return fmt.Errorf("sharing %s: %w", abs, err)
	}
	return nil
}

func existing(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("cannot hand off %s: %w", abs, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("cannot hand off %s: is a directory", abs)
	}
	return abs, nil
}
