// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout computes page geometry and image placement for the
// conversion pipeline. All lengths are in PDF points (1" = 72pt).
package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pdiddy/photopdf/pkg/types"
)

// PaperSize is a base page format in portrait orientation.
type PaperSize struct {
	Name   string
	Width  float64
	Height float64
}

// PaperSizes maps each supported page size to its portrait dimensions.
var PaperSizes = map[types.PageSize]PaperSize{
	types.PageA4:     {Name: "A4", Width: 595.28, Height: 841.89}, // 210mm x 297mm
	types.PageLetter: {Name: "Letter", Width: 612, Height: 792},   // 8.5" x 11"
	types.PageA5:     {Name: "A5", Width: 419.53, Height: 595.28}, // 148mm x 210mm
}

// Geometry is the width/height pair of a page after orientation is applied.
type Geometry struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Resolve combines a base page size with an orientation. Landscape always
// yields Width >= Height and portrait Width <= Height.
func Resolve(size types.PageSize, orientation types.Orientation) (Geometry, error) {
	paper, ok := PaperSizes[size]
	if !ok {
		return Geometry{}, fmt.Errorf("unknown page size %q", size)
	}
	short, long := math.Min(paper.Width, paper.Height), math.Max(paper.Width, paper.Height)
	switch orientation {
	case types.Portrait, "":
		return Geometry{Width: short, Height: long}, nil
	case types.Landscape:
		return Geometry{Width: long, Height: short}, nil
	}
	return Geometry{}, fmt.Errorf("unknown orientation %q", orientation)
}

// Printable returns the page area left after subtracting margin on all four
// sides. A negative margin, or one that leaves no area, is rejected.
func (g Geometry) Printable(margin float64) (Rect, error) {
	if margin < 0 || math.IsNaN(margin) || math.IsInf(margin, 0) {
		return Rect{}, fmt.Errorf("margin %v must be a finite non-negative number", margin)
	}
	w, h := g.Width-2*margin, g.Height-2*margin
	if w <= 0 || h <= 0 {
		return Rect{}, fmt.Errorf("margin %v leaves no printable area on a %.2fx%.2f page", margin, g.Width, g.Height)
	}
	return Rect{X: margin, Y: margin, W: w, H: h}, nil
}

// ParseMargin parses a margin in points. Anything that is not a finite
// non-negative number falls back to types.DefaultMargin.
func ParseMargin(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return types.DefaultMargin
	}
	return v
}

// ParsePageSize accepts a4, letter, or a5 in any case.
func ParsePageSize(s string) (types.PageSize, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a4":
		return types.PageA4, nil
	case "letter":
		return types.PageLetter, nil
	case "a5":
		return types.PageA5, nil
	}
	return "", fmt.Errorf("unsupported page size %q: use A4, Letter, or A5", s)
}

// ParseOrientation accepts portrait or landscape in any case.
func ParseOrientation(s string) (types.Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "portrait":
		return types.Portrait, nil
	case "landscape":
		return types.Landscape, nil
	}
	return "", fmt.Errorf("unsupported orientation %q: use portrait or landscape", s)
}

// ParseFit accepts fit mode names with optional '-' or '_' separators,
// e.g. "fitWidth", "fit-width", and "FIT_WIDTH" all name types.FitWidth.
func ParseFit(s string) (types.ImageFit, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	switch key {
	case "contain":
		return types.FitContain, nil
	case "cover":
		return types.FitCover, nil
	case "fill":
		return types.FitFill, nil
	case "fitwidth":
		return types.FitWidth, nil
	case "fitheight":
		return types.FitHeight, nil
	case "scaledown":
		return types.FitScaleDown, nil
	}
	return "", fmt.Errorf("unsupported fit mode %q: use contain, cover, fill, fit-width, fit-height, or scale-down", s)
}
