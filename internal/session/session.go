// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session holds the state behind a conversion: the ordered image
// list, the layout options, and the single current result. It also guards
// against starting a second conversion while one is running.
package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/pdiddy/photopdf/internal/layout"
	"github.com/pdiddy/photopdf/pkg/types"
)

// ErrBusy is returned when a conversion is requested while another one in
// the same session is still running.
var ErrBusy = errors.New("a conversion is already in progress")

// Converter turns images into a document. *convert.Pipeline implements it.
type Converter interface {
	Convert(ctx context.Context, images []types.ImageSource, opts types.LayoutOptions) (types.ConversionResult, error)
}

// Session owns the image list and options for one user and borrows them to
// the converter for the duration of a call.
type Session struct {
	Images  ImageList
	Options types.LayoutOptions

	conv Converter
	busy atomic.Bool

	mu      sync.Mutex
	result  *types.ConversionResult
	lastErr error
}

// New creates a session with the given starting options.
func New(conv Converter, opts types.LayoutOptions) *Session {
	return &Session{conv: conv, Options: opts}
}

// SetMargin parses text as a margin in points, falling back to the default
// when text is not a valid non-negative number.
func (s *Session) SetMargin(text string) {
	s.Options.Margin = layout.ParseMargin(text)
}

// Busy reports whether a conversion is running.
func (s *Session) Busy() bool { return s.busy.Load() }

// Convert runs one conversion of the current images with the current
// options. The outcome replaces the previous result or error.
func (s *Session) Convert(ctx context.Context) (types.ConversionResult, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return types.ConversionResult{}, ErrBusy
	}
	defer s.busy.Store(false)

	res, err := s.conv.Convert(ctx, s.Images.Items(), s.Options)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.result, s.lastErr = nil, err
		return types.ConversionResult{}, err
	}
	s.result, s.lastErr = &res, nil
	return res, nil
}

// Result returns the current result, if the last conversion succeeded.
func (s *Session) Result() (types.ConversionResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return types.ConversionResult{}, false
	}
	return *s.result, true
}

// Err returns the error of the last conversion, if it failed.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
