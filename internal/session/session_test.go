// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/photopdf/internal/convert"
	"github.com/pdiddy/photopdf/internal/store"
	"github.com/pdiddy/photopdf/pkg/types"
)

func paths(l *ImageList) []string {
	var out []string
	for _, s := range l.Items() {
		out = append(out, s.Path)
	}
	return out
}

func TestImageListAdd(t *testing.T) {
	var l ImageList
	assert.Equal(t, 3, l.Add("a.jpg", "b.jpg", "c.jpg"))
	assert.Equal(t, 1, l.Add("a.jpg", "d.jpg", ""))
	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg"}, paths(&l))

	for i, src := range l.Items() {
		assert.Equal(t, i, src.Index)
	}
}

func TestImageListRemove(t *testing.T) {
	var l ImageList
	l.Add("a", "b", "c")

	require.NoError(t, l.Remove(1))
	items := l.Items()
	assert.Equal(t, []types.ImageSource{{Index: 0, Path: "a"}, {Index: 1, Path: "c"}}, items)

	assert.Error(t, l.Remove(2))
	assert.Error(t, l.Remove(-1))
	assert.Equal(t, 2, l.Len())
}

func TestImageListMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
		wantErr  bool
	}{
		{name: "first to last", from: 0, to: 3, want: []string{"b", "c", "d", "a"}},
		{name: "last to first", from: 3, to: 0, want: []string{"d", "a", "b", "c"}},
		{name: "middle forward", from: 1, to: 2, want: []string{"a", "c", "b", "d"}},
		{name: "same index", from: 2, to: 2, want: []string{"a", "b", "c", "d"}},
		{name: "from out of range", from: 4, to: 0, wantErr: true},
		{name: "to out of range", from: 0, to: 4, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l ImageList
			l.Add("a", "b", "c", "d")
			err := l.Move(tt.from, tt.to)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, []string{"a", "b", "c", "d"}, paths(&l))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, paths(&l))
		})
	}
}

func TestImageListItemsIsCopy(t *testing.T) {
	var l ImageList
	l.Add("a", "b")
	items := l.Items()
	items[0].Path = "changed"
	assert.Equal(t, "a", l.Items()[0].Path)

	l.Clear()
	assert.Zero(t, l.Len())
	assert.Empty(t, l.Items())
}

type fakeConverter struct {
	gate    chan struct{}
	entered chan struct{}
	err     error
	got     []types.ImageSource
	opts    types.LayoutOptions
}

func (f *fakeConverter) Convert(_ context.Context, images []types.ImageSource, opts types.LayoutOptions) (types.ConversionResult, error) {
	f.got, f.opts = images, opts
	if f.entered != nil {
		close(f.entered)
	}
	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil {
		return types.ConversionResult{}, f.err
	}
	return types.ConversionResult{Path: "/out/" + opts.BaseName + ".pdf", Pages: len(images), Options: opts}, nil
}

func TestSessionConvert(t *testing.T) {
	conv := &fakeConverter{}
	s := New(conv, types.DefaultLayoutOptions())
	s.Images.Add("a.jpg", "b.jpg")
	s.Options.BaseName = "trip"

	_, ok := s.Result()
	assert.False(t, ok)

	res, err := s.Convert(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, "trip", conv.opts.BaseName)
	assert.Equal(t, []types.ImageSource{{Index: 0, Path: "a.jpg"}, {Index: 1, Path: "b.jpg"}}, conv.got)

	cur, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, res, cur)
	assert.NoError(t, s.Err())
	assert.False(t, s.Busy())
}

func TestSessionFailureReplacesResult(t *testing.T) {
	conv := &fakeConverter{}
	s := New(conv, types.DefaultLayoutOptions())
	s.Images.Add("a.jpg")
	_, err := s.Convert(context.Background())
	require.NoError(t, err)

	conv.err = convert.ErrEmptyInput
	_, err = s.Convert(context.Background())
	assert.ErrorIs(t, err, convert.ErrEmptyInput)

	_, ok := s.Result()
	assert.False(t, ok)
	assert.ErrorIs(t, s.Err(), convert.ErrEmptyInput)
}

func TestSessionRejectsConcurrentConvert(t *testing.T) {
	conv := &fakeConverter{gate: make(chan struct{}), entered: make(chan struct{})}
	s := New(conv, types.DefaultLayoutOptions())
	s.Images.Add("a.jpg")

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = s.Convert(context.Background())
	}()

	<-conv.entered
	assert.True(t, s.Busy())
	_, err := s.Convert(context.Background())
	assert.ErrorIs(t, err, ErrBusy)

	close(conv.gate)
	wg.Wait()
	require.NoError(t, firstErr)
	assert.False(t, s.Busy())
}

func TestSetMargin(t *testing.T) {
	s := New(&fakeConverter{}, types.DefaultLayoutOptions())
	s.SetMargin("36")
	assert.Equal(t, 36.0, s.Options.Margin)
	s.SetMargin("-5")
	assert.Equal(t, types.DefaultMargin, s.Options.Margin)
	s.SetMargin("abc")
	assert.Equal(t, types.DefaultMargin, s.Options.Margin)
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "empty input", err: convert.ErrEmptyInput, want: "Add at least one image first."},
		{name: "busy", err: ErrBusy, want: "Please wait for the current conversion to finish."},
		{
			name: "image read",
			err:  &convert.ImageReadError{Index: 2, Path: "c.jpg", Err: errors.New("no such file")},
			want: "Image 3 could not be read: no such file",
		},
		{
			name: "directory",
			err:  &convert.DirectoryUnavailableError{Err: errors.New("read-only file system")},
			want: "No storage location is available for the PDF.",
		},
		{
			name: "validation",
			err:  &convert.ValidationError{Field: "margin", Err: errors.New("too large")},
			want: "Invalid margin: too large",
		},
		{name: "other", err: errors.New("disk full"), want: "Error: disk full"},
		{name: "too long", err: errors.New(strings.Repeat("x", 200)), want: GenericMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestUserMessageBoundary(t *testing.T) {
	msg := UserMessage(errors.New(strings.Repeat("y", MaxMessageLen-len("Error: "))))
	assert.Len(t, msg, MaxMessageLen)
	assert.Equal(t, GenericMessage, UserMessage(errors.New(strings.Repeat("y", MaxMessageLen))))
}

func TestManifestRoundTrip(t *testing.T) {
	s := New(&fakeConverter{}, types.DefaultLayoutOptions())
	s.Images.Add("one.jpg", "two.png")
	s.Options.BaseName = "Summer trip"
	s.Options.Fit = types.FitCover
	s.Options.Margin = 12.5

	path := filepath.Join(t.TempDir(), "album.yaml")
	require.NoError(t, ManifestOf(s).Save(path))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one.jpg", "two.png"}, m.Images)

	other := New(&fakeConverter{}, types.DefaultLayoutOptions())
	require.NoError(t, m.Apply(other))
	assert.Equal(t, s.Options, other.Options)
	assert.Equal(t, s.Images.Items(), other.Images.Items())
}

func TestManifestApply(t *testing.T) {
	m := &Manifest{PageSize: "letter", Orientation: "LANDSCAPE", Fit: "fit_width", Margin: "nope", Images: []string{"a", "a", "b"}}
	s := New(&fakeConverter{}, types.DefaultLayoutOptions())
	require.NoError(t, m.Apply(s))

	assert.Equal(t, types.PageLetter, s.Options.PageSize)
	assert.Equal(t, types.Landscape, s.Options.Orientation)
	assert.Equal(t, types.FitWidth, s.Options.Fit)
	assert.Equal(t, types.DefaultMargin, s.Options.Margin)
	assert.Equal(t, "photos", s.Options.BaseName)
	assert.Equal(t, 2, s.Images.Len())
}

func TestManifestApplyInvalidLeavesSession(t *testing.T) {
	m := &Manifest{PageSize: "A4", Fit: "stretch", Images: []string{"a"}}
	s := New(&fakeConverter{}, types.DefaultLayoutOptions())
	assert.Error(t, m.Apply(s))
	assert.Equal(t, types.DefaultLayoutOptions(), s.Options)
	assert.Zero(t, s.Images.Len())
}

func TestLoadManifestErrors(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

type memPrefs struct {
	values map[string]string
	err    error
}

func (m *memPrefs) Preference(_ context.Context, key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", store.ErrNotFound
	}
	return v, nil
}

func (m *memPrefs) SetPreference(_ context.Context, key, value string) error {
	if m.err != nil {
		return m.err
	}
	m.values[key] = value
	return nil
}

func TestSettingsTheme(t *testing.T) {
	ctx := context.Background()
	prefs := &memPrefs{values: map[string]string{}}

	s, err := LoadSettings(ctx, prefs)
	require.NoError(t, err)
	assert.Equal(t, types.ThemeSystem, s.Theme())

	next, err := s.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.ThemeDark, next)
	assert.Equal(t, "dark", prefs.values["theme"])

	next, err = s.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.ThemeLight, next)

	next, err = s.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.ThemeDark, next)

	reloaded, err := LoadSettings(ctx, prefs)
	require.NoError(t, err)
	assert.Equal(t, types.ThemeDark, reloaded.Theme())

	assert.Error(t, s.SetTheme(ctx, "sepia"))
	assert.Equal(t, types.ThemeDark, s.Theme())
}

func TestSettingsWriteFailureKeepsTheme(t *testing.T) {
	ctx := context.Background()
	prefs := &memPrefs{values: map[string]string{"theme": "light"}}
	s, err := LoadSettings(ctx, prefs)
	require.NoError(t, err)

	prefs.err = errors.New("database is locked")
	_, err = s.ToggleTheme(ctx)
	assert.Error(t, err)
	assert.Equal(t, types.ThemeLight, s.Theme())
}

func TestSettingsUnknownStoredTheme(t *testing.T) {
	prefs := &memPrefs{values: map[string]string{"theme": "neon"}}
	s, err := LoadSettings(context.Background(), prefs)
	require.NoError(t, err)
	assert.Equal(t, types.ThemeSystem, s.Theme())
}

func TestSettingsWithStore(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	defer st.Close()

	s, err := LoadSettings(ctx, st)
	require.NoError(t, err)
	require.NoError(t, s.SetTheme(ctx, types.ThemeLight))

	again, err := LoadSettings(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, types.ThemeLight, again.Theme())
}
