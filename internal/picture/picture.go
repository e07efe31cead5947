// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package picture sniffs raw image bytes and normalizes them into a form the
// PDF writer can embed. JPEG, PNG, and GIF pass through untouched; WebP, BMP,
// and TIFF are decoded and re-encoded as PNG.
package picture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Format names an image encoding the PDF writer accepts directly.
type Format string

const (
	JPEG Format = "jpeg"
	PNG  Format = "png"
	GIF  Format = "gif"
)

// ErrEmpty is returned for zero-length input.
var ErrEmpty = errors.New("image is empty")

// Image is an encoded image ready for embedding.
type Image struct {
	Data   []byte
	Format Format
	Width  int
	Height int
}

// Extensions lists the file extensions (lower case, with dot) of every
// decodable format.
var Extensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tif", ".tiff"}

// Supported reports whether path has a decodable image extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Decode inspects data and returns it in an embeddable encoding together with
// its pixel dimensions.
func Decode(data []byte) (Image, error) {
	if len(data) == 0 {
		return Image{}, ErrEmpty
	}

	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("reading image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Image{}, fmt.Errorf("image has invalid size %dx%d", cfg.Width, cfg.Height)
	}

	switch Format(name) {
	case JPEG, GIF:
		return Image{Data: data, Format: Format(name), Width: cfg.Width, Height: cfg.Height}, nil
	case PNG:
		if embeddablePNG(data) {
			return Image{Data: data, Format: PNG, Width: cfg.Width, Height: cfg.Height}, nil
		}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("decoding %s image: %w", name, err)
	}
	// Flatten to 8 bits per channel; the writer rejects 16-bit PNGs.
	flat := image.NewNRGBA(img.Bounds())
	draw.Draw(flat, flat.Bounds(), img, img.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, flat); err != nil {
		return Image{}, fmt.Errorf("re-encoding %s image as png: %w", name, err)
	}
	return Image{Data: buf.Bytes(), Format: PNG, Width: cfg.Width, Height: cfg.Height}, nil
}

// embeddablePNG reports whether a PNG can be embedded as is: 8-bit or less
// per channel and not interlaced. The IHDR chunk always follows the
// 8-byte signature, so bit depth is at offset 24 and interlace at 28.
func embeddablePNG(data []byte) bool {
	if len(data) < 29 {
		return false
	}
	return data[24] <= 8 && data[28] == 0
}
