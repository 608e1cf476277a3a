package cards

import (
	"math"

	"github.com/mkarren/lanes/internal/model"
)

// LayoutMode selects between the grid and list card layouts.
type LayoutMode int

const (
	LayoutGrid LayoutMode = iota
	LayoutList
)

// HeightProfile holds the per-row card heights, in reference pixels.
type HeightProfile struct {
	Landscape int
	Portrait  int
	Static    int
}

// DefaultHeightProfile matches the standard browse row.
var DefaultHeightProfile = HeightProfile{Landscape: 130, Portrait: 150, Static: 150}

// List layout pins the card width per requested image type and
// re-derives height from the aspect.
const (
	listPosterWidth = 190
	listBannerWidth = 90
	listThumbWidth  = 300
)

// Degenerate widths below minCardWidth are clamped to safeCardWidth so
// the server is never asked for a zero-size image.
const (
	minCardWidth  = 5
	safeCardWidth = 115
)

// ResolveDimensions turns a presentation policy into final card pixel
// dimensions. Evaluation order: kind policy, base dims, list-mode
// override, minimum-width guard.
func ResolveDimensions(p Policy, staticHeight bool, hp HeightProfile, mode LayoutMode, imageType model.ImageType) (width, height int) {
	if p.FixedWidth > 0 && p.FixedHeight > 0 {
		return p.FixedWidth, p.FixedHeight
	}

	aspect := p.Aspect
	if aspect <= 0 {
		aspect = AspectSquare
	}

	scale := p.HeightScale
	if scale <= 0 {
		scale = 1
	}

	if staticHeight {
		height = int(float64(hp.Static) * scale)
	} else if aspect > 1 {
		height = int(float64(hp.Landscape) * scale)
	} else {
		height = int(float64(hp.Portrait) * scale)
	}
	width = int(math.Round(aspect * float64(height)))

	if mode == LayoutList {
		switch imageType {
		case model.ImageTypePoster:
			width = listPosterWidth
			height = int(math.Round(float64(width) / aspect))
		case model.ImageTypeBanner:
			width = listBannerWidth
			height = int(math.Round(float64(width) / aspect))
		case model.ImageTypeThumb:
			width = listThumbWidth
			height = int(math.Round(float64(width) / aspect))
		}
	}

	if width < minCardWidth {
		width = safeCardWidth
	}

	return width, height
}
