// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// PageSize names a base paper format.
type PageSize string

const (
	PageA4     PageSize = "A4"
	PageLetter PageSize = "Letter"
	PageA5     PageSize = "A5"
)

// Orientation selects whether the long side of the page is vertical or horizontal.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// ImageFit is the policy for mapping an image's pixel dimensions onto the
// printable area of a page.
type ImageFit string

const (
	FitContain   ImageFit = "contain"
	FitCover     ImageFit = "cover"
	FitFill      ImageFit = "fill"
	FitWidth     ImageFit = "fit-width"
	FitHeight    ImageFit = "fit-height"
	FitScaleDown ImageFit = "scale-down"
)

// Valid reports whether f is one of the known fit modes.
func (f ImageFit) Valid() bool {
	switch f {
	case FitContain, FitCover, FitFill, FitWidth, FitHeight, FitScaleDown:
		return true
	}
	return false
}

// DefaultMargin is the page margin in points applied when none is given or
// the given value is unusable.
const DefaultMargin = 20.0

// ImageSource is an ordered reference to a user-selected or captured image.
type ImageSource struct {
	// Index is the zero-based position of the image in the document.
	Index int `json:"index" yaml:"index"`

	// Path is the handle to the raw bytes: a filesystem path or an
	// http(s) URL.
	Path string `json:"path" yaml:"path"`
}

// LayoutOptions holds the page layout settings for one conversion.
type LayoutOptions struct {
	PageSize    PageSize    `json:"page_size" yaml:"page_size"`
	Orientation Orientation `json:"orientation" yaml:"orientation"`
	Fit         ImageFit    `json:"fit" yaml:"fit"`

	// Margin is applied uniformly on all four sides, in points.
	Margin float64 `json:"margin" yaml:"margin"`

	// BaseName is the output file name without extension. It is sanitized
	// before it touches the filesystem.
	BaseName string `json:"base_name" yaml:"base_name"`
}

// DefaultLayoutOptions returns A4 portrait, contain, with the default margin.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		PageSize:    PageA4,
		Orientation: Portrait,
		Fit:         FitContain,
		Margin:      DefaultMargin,
		BaseName:    "photos",
	}
}

// ConversionResult describes a PDF written by a successful conversion.
type ConversionResult struct {
	// ID identifies the conversion in the history store.
	ID string `json:"id" yaml:"id"`

	// Path is the absolute path of the written PDF.
	Path string `json:"path" yaml:"path"`

	// Pages is the number of pages in the document.
	Pages int `json:"pages" yaml:"pages"`

	// Bytes is the size of the written file.
	Bytes int64 `json:"bytes" yaml:"bytes"`

	Options   LayoutOptions `json:"options" yaml:"options"`
	CreatedAt time.Time     `json:"created_at" yaml:"created_at"`
}

// Theme is the persisted appearance preference.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	switch t {
	case ThemeSystem, ThemeLight, ThemeDark:
		return true
	}
	return false
}
