// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package command runs configured external programs (camera capture, file
// openers, share helpers) behind an interface tests can replace.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrEmpty is returned when a command template has no program.
var ErrEmpty = errors.New("command is empty")

// Runner abstracts command execution for testing.
type Runner interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args ...string) error
}

// OSRunner is the production Runner backed by os/exec.
type OSRunner struct{}

func (OSRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes the command and waits for it. Stderr output, if any, is
// included in the returned error.
func (OSRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Expand substitutes token with value in every argument of tmpl. When no
// argument contains token and appendIfMissing is set, value is appended.
// The returned slice never aliases tmpl.
func Expand(tmpl []string, token, value string, appendIfMissing bool) []string {
	out := make([]string, 0, len(tmpl)+1)
	found := false
	for _, a := range tmpl {
		if strings.Contains(a, token) {
			found = true
			a = strings.ReplaceAll(a, token, value)
		}
		out = append(out, a)
	}
	if !found && appendIfMissing {
		out = append(out, value)
	}
	return out
}

// RunTemplate expands tmpl and runs it with r after checking the program is
// on PATH.
func RunTemplate(ctx context.Context, r Runner, tmpl []string, token, value string, appendIfMissing bool) error {
	if len(tmpl) == 0 || tmpl[0] == "" {
		return ErrEmpty
	}
	argv := Expand(tmpl, token, value, appendIfMissing)
	if _, err := r.LookPath(argv[0]); err != nil {
		return fmt.Errorf("%s not found on PATH: %w", argv[0], err)
	}
	return r.Run(ctx, argv[0], argv[1:]...)
}
