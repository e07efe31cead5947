// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gotomicro/ego/core/elog"

	"github.com/pdiddy/photopdf/internal/command"
	"github.com/pdiddy/photopdf/pkg/types"
)

const outputToken = "{output}"

// ErrNoCamera is returned when no capture command is configured.
var ErrNoCamera = errors.New("no camera configured (set capture.command)")

// Camera captures photos by running an external program.
type Camera struct {
	cfg    types.CaptureConfig
	runner command.Runner
	now    func() time.Time
}

// NewCamera creates a Camera. cfg.Dir must be set; callers default it to a
// subdirectory of the data directory.
func NewCamera(cfg types.CaptureConfig) *Camera {
	return &Camera{cfg: cfg, runner: command.OSRunner{}, now: time.Now}
}

// Capture runs the capture command and returns the new photo. A command that
// fails or leaves no (or an empty) file counts as a cancelled capture:
// ok is false and err is nil. Only configuration problems are errors.
func (c *Camera) Capture(ctx context.Context) (src types.ImageSource, ok bool, err error) {
	if len(c.cfg.Command) == 0 {
		return types.ImageSource{}, false, ErrNoCamera
	}
	if _, err := c.runner.LookPath(c.cfg.Command[0]); err != nil {
		return types.ImageSource{}, false, fmt.Errorf("camera command %s not found on PATH: %w", c.cfg.Command[0], err)
	}
	if c.cfg.Dir == "" {
		return types.ImageSource{}, false, errors.New("capture directory is not set")
	}
	if err := os.MkdirAll(c.cfg.Dir, 0o755); err != nil {
		return types.ImageSource{}, false, fmt.Errorf("creating capture directory: %w", err)
	}

	out := filepath.Join(c.cfg.Dir, "IMG_"+c.now().Format("20060102_150405.000")+".jpg")
	argv := command.Expand(c.cfg.Command, outputToken, out, false)
	if err := c.runner.Run(ctx, argv[0], argv[1:]...); err != nil {
		elog.DefaultLogger.Warn("capture cancelled", elog.FieldErr(err))
		os.Remove(out)
		return types.ImageSource{}, false, nil
	}

	info, err := os.Stat(out)
	if err != nil || info.Size() == 0 {
		os.Remove(out)
		return types.ImageSource{}, false, nil
	}
	return types.ImageSource{Path: out}, true, nil
}
