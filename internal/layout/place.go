// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"math"

	"github.com/pdiddy/photopdf/pkg/types"
)

// Placement is where an image is drawn on the page. Clip is set when the
// drawn rectangle extends beyond the printable area and must be cropped to it.
type Placement struct {
	Rect
	Clip bool
}

// Place maps an image of imgW x imgH (pixels, drawn at 1px = 1pt natively)
// into area according to fit. The result is always centered in area. An
// unknown fit is placed as types.FitContain; callers validate it first.
func Place(area Rect, imgW, imgH float64, fit types.ImageFit) Placement {
	if imgW <= 0 || imgH <= 0 {
		return Placement{Rect: Rect{X: area.X + area.W/2, Y: area.Y + area.H/2}}
	}

	var w, h float64
	switch fit {
	case types.FitCover:
		s := math.Max(area.W/imgW, area.H/imgH)
		w, h = imgW*s, imgH*s
	case types.FitFill:
		w, h = area.W, area.H
	case types.FitWidth:
		s := area.W / imgW
		w, h = area.W, imgH*s
	case types.FitHeight:
		s := area.H / imgH
		w, h = imgW*s, area.H
	case types.FitScaleDown:
		if imgW > area.W || imgH > area.H {
			s := math.Min(area.W/imgW, area.H/imgH)
			w, h = imgW*s, imgH*s
		} else {
			w, h = imgW, imgH
		}
	case types.FitContain:
		s := math.Min(area.W/imgW, area.H/imgH)
		w, h = imgW*s, imgH*s
	default:
		return Place(area, imgW, imgH, types.FitContain)
	}

	const eps = 1e-9
	return Placement{
		Rect: Rect{
			X: area.X + (area.W-w)/2,
			Y: area.Y + (area.H-h)/2,
			W: w,
			H: h,
		},
		Clip: w > area.W+eps || h > area.H+eps,
	}
}
