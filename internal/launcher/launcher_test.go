// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package launcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/photopdf/pkg/types"
)

// mockRunner records calls and returns configured responses.
type mockRunner struct {
	availableBins map[string]bool
	runErr        error
	calls         []string
}

func (m *mockRunner) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockRunner) Run(_ context.Context, name string, args ...string) error {
	m.calls = append(m.calls, name+" "+strings.Join(args, " "))
	return m.runErr
}

func writePDF(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "trip_photos.pdf")
	require.NoError(t, os.WriteFile(p, []byte("%PDF-1.3"), 0o644))
	return p
}

func TestOpen(t *testing.T) {
	pdf := writePDF(t)

	tests := []struct {
		name     string
		cfg      types.LauncherConfig
		goos     string
		bins     map[string]bool
		wantCall string
		wantErr  string
	}{
		{
			name:     "linux default",
			goos:     "linux",
			bins:     map[string]bool{"xdg-open": true},
			wantCall: "xdg-open " + pdf,
		},
		{
			name:     "darwin default",
			goos:     "darwin",
			bins:     map[string]bool{"open": true},
			wantCall: "open " + pdf,
		},
		{
			name:     "windows default",
			goos:     "windows",
			bins:     map[string]bool{"rundll32": true},
			wantCall: "rundll32 url.dll,FileProtocolHandler " + pdf,
		},
		{
			name:     "configured opener with placeholder",
			cfg:      types.LauncherConfig{OpenCommand: []string{"evince", "--fullscreen", "{path}"}},
			goos:     "linux",
			bins:     map[string]bool{"evince": true},
			wantCall: "evince --fullscreen " + pdf,
		},
		{
			name:    "opener missing",
			goos:    "linux",
			wantErr: "not found on PATH",
		},
		{
			name:    "unknown platform",
			goos:    "plan9",
			wantErr: "no default opener",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockRunner{availableBins: tt.bins}
			l := newLauncher(tt.cfg, m, tt.goos)
			err := l.Open(context.Background(), pdf)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{tt.wantCall}, m.calls)
		})
	}
}

func TestOpenMissingFile(t *testing.T) {
	m := &mockRunner{availableBins: map[string]bool{"xdg-open": true}}
	l := newLauncher(types.LauncherConfig{}, m, "linux")

	err := l.Open(context.Background(), filepath.Join(t.TempDir(), "gone.pdf"))
	assert.Error(t, err)
	assert.Empty(t, m.calls)

	err = l.Open(context.Background(), t.TempDir())
	assert.ErrorContains(t, err, "is a directory")
}

func TestShare(t *testing.T) {
	pdf := writePDF(t)

	t.Run("not configured", func(t *testing.T) {
		l := newLauncher(types.LauncherConfig{}, &mockRunner{}, "linux")
		assert.ErrorIs(t, l.Share(context.Background(), pdf), ErrNoShareCommand)
	})

	t.Run("path appended", func(t *testing.T) {
		m := &mockRunner{availableBins: map[string]bool{"kdeconnect-cli": true}}
		cfg := types.LauncherConfig{ShareCommand: []string{"kdeconnect-cli", "--share"}}
		require.NoError(t, newLauncher(cfg, m, "linux").Share(context.Background(), pdf))
		assert.Equal(t, []string{"kdeconnect-cli --share " + pdf}, m.calls)
	})

	t.Run("command fails", func(t *testing.T) {
		m := &mockRunner{availableBins: map[string]bool{"share": true}, runErr: errors.New("exit status 2")}
		cfg := types.LauncherConfig{ShareCommand: []string{"share", "{path}"}}
		err := newLauncher(cfg, m, "linux").Share(context.Background(), pdf)
		assert.ErrorContains(t, err, "exit status 2")
	})
}
