// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func TestExpand(t *testing.T) {
	tests := []struct {
		name          string
		tmpl          []string
		appendMissing bool
		want          []string
	}{
		{name: "replaces token", tmpl: []string{"cam", "-o", "{output}"}, want: []string{"cam", "-o", "/tmp/x.jpg"}},
		{name: "replaces inside argument", tmpl: []string{"cam", "--file={output}"}, want: []string{"cam", "--file=/tmp/x.jpg"}},
		{name: "appends when missing", tmpl: []string{"share"}, appendMissing: true, want: []string{"share", "/tmp/x.jpg"}},
		{name: "no append", tmpl: []string{"share"}, want: []string{"share"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := append([]string(nil), tt.tmpl...)
			got := Expand(tmpl, "{output}", "/tmp/x.jpg", tt.appendMissing)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.tmpl, tmpl, "template is not modified")
		})
	}
}

func TestRunTemplate(t *testing.T) {
	t.Run("runs expanded command", func(t *testing.T) {
		m := &mockRunner{availableBins: map[string]bool{"fswebcam": true}}
		err := RunTemplate(context.Background(), m, []string{"fswebcam", "{output}"}, "{output}", "/c/1.jpg", false)
		require.NoError(t, err)
		assert.Equal(t, []string{"fswebcam /c/1.jpg"}, m.calls)
	})

	t.Run("empty template", func(t *testing.T) {
		err := RunTemplate(context.Background(), &mockRunner{}, nil, "{output}", "x", false)
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("program missing", func(t *testing.T) {
		m := &mockRunner{}
		err := RunTemplate(context.Background(), m, []string{"nope"}, "{output}", "x", true)
		assert.ErrorContains(t, err, "not found on PATH")
		assert.Empty(t, m.calls)
	})

	t.Run("run error propagates", func(t *testing.T) {
		m := &mockRunner{availableBins: map[string]bool{"cam": true}, runErr: errors.New("exit 1")}
		err := RunTemplate(context.Background(), m, []string{"cam"}, "{output}", "x", true)
		assert.ErrorContains(t, err, "exit 1")
	})
}
