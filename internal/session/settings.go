// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/gotomicro/ego/core/elog"

	"github.com/pdiddy/photopdf/internal/store"
	"github.com/pdiddy/photopdf/pkg/types"
)

const themeKey = "theme"

// Preferences is a persistent key/value store. *store.Store implements it.
type Preferences interface {
	Preference(ctx context.Context, key string) (string, error)
	SetPreference(ctx context.Context, key, value string) error
}

// Settings holds persisted user preferences.
type Settings struct {
	prefs Preferences
	theme types.Theme
}

// LoadSettings reads preferences from prefs. A missing or unrecognized theme
// becomes types.ThemeSystem.
func LoadSettings(ctx context.Context, prefs Preferences) (*Settings, error) {
	s := &Settings{prefs: prefs, theme: types.ThemeSystem}

	v, err := prefs.Preference(ctx, themeKey)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("loading theme: %w", err)
	}
	if t := types.Theme(v); t.Valid() {
		s.theme = t
	} else {
		elog.DefaultLogger.Warn("ignoring unknown theme", elog.String("theme", v))
	}
	return s, nil
}

// Theme returns the current theme.
func (s *Settings) Theme() types.Theme { return s.theme }

// SetTheme persists t. The in-memory value only changes once the write
// succeeds.
func (s *Settings) SetTheme(ctx context.Context, t types.Theme) error {
	if !t.Valid() {
		return fmt.Errorf("unknown theme %q: use system, light, or dark", t)
	}
	if err := s.prefs.SetPreference(ctx, themeKey, string(t)); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	s.theme = t
	return nil
}

// ToggleTheme switches dark to light and anything else to dark.
func (s *Settings) ToggleTheme(ctx context.Context) (types.Theme, error) {
	next := types.ThemeDark
	if s.theme == types.ThemeDark {
		next = types.ThemeLight
	}
	if err := s.SetTheme(ctx, next); err != nil {
		return s.theme, err
	}
	return next, nil
}
